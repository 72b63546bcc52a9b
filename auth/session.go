package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"atrium/db"
	"atrium/globals"
	"atrium/middleware"
	"atrium/models"
	"atrium/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// The allow-list failure and the bad-credential failure deliberately
// share one message so callers cannot probe which emails are admins.
const invalidLoginMsg = "Invalid email or password"

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Short-circuit before any lookup: a non-admin email never reaches
	// the account collection.
	if !globals.IsAdminEmail(input.Email) {
		utils.RespondWithError(w, http.StatusUnauthorized, invalidLoginMsg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var account models.Account
	if err := db.UsersCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&account); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, invalidLoginMsg)
		return
	}

	// Invalidate any session this account already holds.
	if err := sessions.Del(account.ID); err != nil {
		log.Printf("login: stale session cleanup failed for %s: %v", account.ID, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, invalidLoginMsg)
		return
	}

	tokenString, err := generateSessionToken(account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	if err := sessions.Set(account.ID, tokenString); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store session")
		return
	}

	// Re-load the stored identity and re-check the allow-list; guards
	// against the lookup returning a different identity than requested.
	var stored models.Account
	err = db.UsersCollection.FindOne(ctx, bson.M{"id": account.ID}).Decode(&stored)
	if err != nil || !globals.IsAdminEmail(stored.Email) {
		if derr := sessions.Del(account.ID); derr != nil {
			log.Printf("login: session teardown failed for %s: %v", account.ID, derr)
		}
		utils.RespondWithError(w, http.StatusUnauthorized, invalidLoginMsg)
		return
	}

	if _, err := db.UsersCollection.UpdateOne(ctx,
		bson.M{"id": account.ID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	); err != nil {
		log.Printf("login: last_login update failed for %s: %v", account.ID, err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": stored.ID,
		"email":  stored.Email,
	}, "Login successful", nil)
}

// logoutHandler destroys the server-side session. A registry failure is
// logged but the client still transitions to unauthenticated.
func logoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := sessions.Del(claims.UserID); err != nil {
		log.Printf("logout: session removal failed for %s: %v", claims.UserID, err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

// sessionHandler recovers an existing session. Every failure path means
// "no session": bad token, missing registry entry, lookup error, or an
// email that has dropped off the allow-list.
func sessionHandler(w http.ResponseWriter, r *http.Request) {
	tokenHeader := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenHeader)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "No active session")
		return
	}

	live, err := sessions.Get(claims.UserID)
	if err != nil || live != tokenHeader[7:] {
		utils.RespondWithError(w, http.StatusUnauthorized, "No active session")
		return
	}

	if !globals.IsAdminEmail(claims.Email) {
		utils.RespondWithError(w, http.StatusUnauthorized, "No active session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var account models.Account
	if err := db.UsersCollection.FindOne(ctx, bson.M{"id": claims.UserID}).Decode(&account); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "No active session")
		return
	}

	utils.SendResponse(w, http.StatusOK, account, "Session active", nil)
}

func generateSessionToken(account models.Account) (string, error) {
	claims := &middleware.Claims{
		Username: account.Username,
		UserID:   account.ID,
		Email:    account.Email,
		Role:     []string{account.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
