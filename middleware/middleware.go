package middleware

import (
	"context"
	"net/http"

	"sudrsya/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Role []string `json:"role"`
	jwt.RegisteredClaims
}

func hasAdminRole(claims *Claims) bool {
	for _, r := range claims.Role {
		if r == "admin" {
			return true
		}
	}
	return false
}

// Authenticate guards the admin surface: a valid bearer token with the admin
// role is required.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid || !hasAdminRole(claims) {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}
