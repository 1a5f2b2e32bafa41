package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"sudrsya/globals"
	"sudrsya/middleware"
	"sudrsya/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminLogin checks the panel password against the bcrypt hash from the
// environment and issues a short-lived admin token. There are no user
// accounts; the admin gate is the only authenticated surface.
func AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Password == "" {
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		log.Println("ADMIN_PASSWORD_HASH not set; admin login disabled")
		http.Error(w, "Admin login unavailable", http.StatusServiceUnavailable)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	claims := middleware.Claims{
		Role: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(adminTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		log.Println("AdminLogin token signing error:", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": tokenString})
}
