package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pocotu/sgf-backend-sub000/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	id, ok := v.(int)
	if !ok || id <= 0 {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	return id, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustParseID 解析路径参数中的正整数 ID，失败时写入 400 响应
func MustParseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, name+" 必须为正整数")
		return 0, false
	}
	return id, true
}

// MustAccessStudent 学生角色只能查看本人数据
func MustAccessStudent(c *gin.Context, studentID int) bool {
	role, ok := MustGetRole(c)
	if !ok {
		return false
	}
	if role != "student" {
		return true
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return false
	}
	if callerID != studentID {
		response.Forbidden(c, 10003, "无权限访问")
		return false
	}
	return true
}
