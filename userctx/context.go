package userctx

import "context"

// Context key type
type contextKey string

const actorKey contextKey = "actor"
const RequestIDKey contextKey = "request_id"

// SetActor adds the acting user to request context
func SetActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the acting user from request context, "" when unset
func GetActor(ctx context.Context) string {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok {
		return ""
	}
	return actor
}

// SetRequestID adds the request ID to request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID retrieves the request ID from request context
func GetRequestID(ctx context.Context) string {
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
