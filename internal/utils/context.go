package utils

import (
	"context"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"
const ContextRoleKey contextKey = "role"

func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID := ctx.Value(ContextUserIDKey)
	userIDInt, ok := userID.(int)
	return userIDInt, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role := ctx.Value(ContextRoleKey)
	roleStr, ok := role.(string)
	return roleStr, ok
}
