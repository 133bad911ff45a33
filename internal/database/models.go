// Package database 定义了数据库相关的模型和结构体
// 包含用户、笔记、标签及其关联关系的核心数据模型
package database

// 此文件保留作为数据库模型包的入口文件
// 具体的模型定义已拆分到以下文件：
// - user_models.go: 用户相关模型（User）
// - note_models.go: 笔记相关模型（Note, Tag, NoteTag）
