package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set signed into every access token.
//
// The "sub" claim carries the user ID as a base-10 string, Login is
// duplicated into the token so pages can greet the user without a
// database round trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Login is the login of the token owner.
	Login string `json:"login,omitempty"`
}

// UserID parses the "sub" claim as int64.
func (c SessionClaims) UserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is a signed access token together with the values the server
// extracted from it.
//
// The same token is used as a Bearer credential on the JSON API and as the
// value of the session cookie on HTML pages.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Login is the owner login extracted from the "login" claim.
	Login string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
