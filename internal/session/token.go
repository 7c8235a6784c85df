// Package session signs and verifies the value carried by the sid cookie.
// The cookie holds an HS256 token wrapping the server-side session id, so a
// tampered cookie never reaches the session store.
package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	jwt.RegisteredClaims
	SID string `json:"sid"`
}

// Signer is constructed once with the process secret; see config.Load.
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer { return &Signer{secret: secret} }

func (s *Signer) Mint(sid string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{SID: sid})
	return tok.SignedString(s.secret)
}

func (s *Signer) Parse(token string) (string, error) {
	cl := &claims{}
	tok, err := jwt.ParseWithClaims(token, cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid || cl.SID == "" {
		return "", ErrInvalidToken
	}
	return cl.SID, nil
}
