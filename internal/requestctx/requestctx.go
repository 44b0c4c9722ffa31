package requestctx

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	tokenKey     ctxKey = "token_identifier"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithTokenIdentifier(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func GetTokenIdentifier(ctx context.Context) string {
	if value, ok := ctx.Value(tokenKey).(string); ok {
		return value
	}
	return ""
}
