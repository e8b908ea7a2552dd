package models

import "github.com/golang-jwt/jwt/v4"

// Claims carried by bearer tokens when API auth is enabled.
type Claims struct {
	Email string `json:"email"`
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
