package security

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LmsIdentity is the signed-in user a token is minted for.
type LmsIdentity struct {
	ID        int32
	UserName  string
	Email     string
	Role      string
	CourseID  int32
	AccountID int32
}

type Identity struct {
	UserID     int32  `json:"nameid"`
	UniqueName string `json:"unique_name"`
	Email      string `json:"email"`
	SID        string `json:"sid"`
	Role       string `json:"role"`
	CourseID   int32  `json:"course"`
	AccountID  int32  `json:"account"`
}

// IdentityClaims includes Identity and standard JWT claims
type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

const issuer = "lms"

func DecodeSecret(base64Secret string) ([]byte, error) {
	if base64Secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	return base64.StdEncoding.DecodeString(base64Secret)
}

func CreateIdentityToken(identity *LmsIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := DecodeSecret(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			UserID:     identity.ID,
			UniqueName: identity.UserName,
			Email:      identity.Email,
			SID:        uuid.NewString(),
			Role:       identity.Role,
			CourseID:   identity.CourseID,
			AccountID:  identity.AccountID,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretBytes)
}

// ParseIdentityToken verifies an HS256 token and returns its claims. Expired tokens fail.
func ParseIdentityToken(tokenStr string, secret []byte) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
