// File: internal/service/policy.go
package service

import "user-hub/internal/model"

// CanListAll 僅 admin 可列出所有使用者
func CanListAll(requesterRole model.Role) bool {
	return requesterRole == model.RoleAdmin
}

// CanAccessUser admin 或本人可讀取目標使用者
func CanAccessUser(requesterRole model.Role, requesterID, targetID string) bool {
	return requesterRole == model.RoleAdmin || requesterID == targetID
}

// CanBlockUser 封鎖規則與讀取相同：admin 或本人
func CanBlockUser(requesterRole model.Role, requesterID, targetID string) bool {
	return CanAccessUser(requesterRole, requesterID, targetID)
}
