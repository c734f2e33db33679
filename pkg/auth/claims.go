package auth

import "github.com/golang-jwt/jwt/v5"

// Claims represents JWT token claims. client_id selects the verifying secret.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
