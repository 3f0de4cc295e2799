package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT that authorizes catalogue writes.
//
// The "sub" claim carries the numeric id of the editor the token was issued
// to. Issuance happens outside this service; the server only validates.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form, populated when the token is minted.
	SignedString string `json:"-"`

	// EditorID is the parsed "sub" claim.
	EditorID int64 `json:"-"`
}

// GetEditorID parses the "sub" claim as a base-10 int64.
func (t *Token) GetEditorID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting editor ID from token: %w", err)
	}

	editorID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting editor ID from token to int64: %w", err)
	}

	return editorID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
