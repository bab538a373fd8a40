package stubserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"thriftshop-client/internal/domain"
)

const passwordMin = 8

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func toUser(a *account) domain.User {
	return domain.User{ID: a.ID, Name: a.Name, Email: a.Email}
}

func signupHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
			return
		}
		if err := validatePassword(req.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
			return
		}

		state.mu.Lock()
		defer state.mu.Unlock()
		if _, exists := state.users[email]; exists {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}
		acc := &account{
			ID:           newID(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: string(hashed),
		}
		state.users[email] = acc
		token, err := state.issueToken(acc.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": toUser(acc)})
	}
}

func loginHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		state.mu.Lock()
		defer state.mu.Unlock()
		acc, ok := state.userByEmail(req.Email)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		token, err := state.issueToken(acc.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": toUser(acc)})
	}
}

func verifyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, toUser(currentUser(c)))
}

func updateProfileHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		acc := currentUser(c)

		state.mu.Lock()
		defer state.mu.Unlock()

		if req.NewPassword != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.CurrentPassword)); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is incorrect"})
				return
			}
			if err := validatePassword(req.NewPassword); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update profile"})
				return
			}
			acc.PasswordHash = string(hashed)
		}
		if name := strings.TrimSpace(req.Name); name != "" {
			acc.Name = name
		}
		if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != acc.Email {
			if _, exists := state.users[email]; exists {
				c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
				return
			}
			delete(state.users, acc.Email)
			acc.Email = email
			state.users[email] = acc
		}

		c.JSON(http.StatusOK, toUser(acc))
	}
}

func validatePassword(p string) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < passwordMin {
		return fmt.Errorf("password must be at least %d characters", passwordMin)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
