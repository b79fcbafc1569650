package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/config"
)

const sessionCookie = "session_token"

// SessionClaims carries the logged-in student. There are no passwords
// or roles here: logging in is a plaintext MIS lookup, and the cookie
// only saves re-typing it.
type SessionClaims struct {
	MIS    string `json:"mis"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(mis, name, branch string) (string, error) {
	claims := SessionClaims{
		MIS:    mis,
		Name:   name,
		Branch: branch,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "academic-planner",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
