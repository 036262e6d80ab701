package contextutil

import "context"

const accountKey contextKey = "account_id"

// WithAccountID returns a context carrying the authenticated account id.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountKey, accountID)
}

// AccountIDFromContext returns the authenticated account id, or "" when the
// request carried none.
func AccountIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(accountKey).(string); ok {
		return id
	}
	return ""
}
