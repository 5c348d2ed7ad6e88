package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token of an organization. The "sub" claim holds the
// organization id in base 10.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact form sent as a bearer token.
	SignedString string `json:"-"`
	// OrgID is the parsed subject, set once the token has been validated.
	OrgID int64 `json:"-"`
}

// GetOrgID parses the organization id out of the subject claim.
func (t *Token) GetOrgID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting org id from token: %w", err)
	}

	orgID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject %q to org id: %w", subject, err)
	}

	return orgID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
