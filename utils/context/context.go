package context

import (
	"context"

	"pos-backend/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetUserIDRef returns the user id as a nullable reference for movement rows.
// System actions (no authenticated user) yield nil.
func GetUserIDRef(ctx context.Context) *uint64 {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &id
}

func GetClientUUID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ClientUUIDKey)
	if v == nil {
		return "", false
	}
	u, ok := v.(string)
	return u, ok
}
