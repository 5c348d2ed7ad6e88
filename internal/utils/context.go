// Package utils holds small helpers shared by the client and the development
// server: context keys, JWT handling, request hashing, idempotency key
// generation and JSON responses.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OrgIDCtxKey stores the id of the organization that authenticated the
// request.
var OrgIDCtxKey = contextKey("orgID")

// GetOrgIDFromContext returns the authenticated organization id. ok is false
// when the value is missing, is not an int64 or is not a positive id.
func GetOrgIDFromContext(ctx context.Context) (int64, bool) {
	orgID, ok := ctx.Value(OrgIDCtxKey).(int64)
	if !ok || orgID <= 0 {
		return 0, false
	}
	return orgID, true
}

// WithOrgID returns a copy of ctx carrying orgID under [OrgIDCtxKey].
func WithOrgID(ctx context.Context, orgID int64) context.Context {
	return context.WithValue(ctx, OrgIDCtxKey, orgID)
}
