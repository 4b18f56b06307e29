package constant

type ContextKey string

const (
	UserIDKey     ContextKey = "user_id"
	ClientUUIDKey ContextKey = "client_uuid"
)
