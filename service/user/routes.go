package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/config"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	cfg config.Config
}

func NewHandler(db *gorm.DB, cfg config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// RegisterRoutes sets up all user-related routes.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/register", h.HandleRegister).Methods("POST")
	router.HandleFunc("/login", h.HandleLogin).Methods("POST")
	router.HandleFunc("/logout", h.HandleLogout).Methods("GET", "POST")
	router.HandleFunc("/reset-password", h.HandlePasswordResetRequest).Methods("POST")
	router.HandleFunc("/reset-password/confirm", h.HandlePasswordReset).Methods("POST")
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var registerRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&registerRequest); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}
	if registerRequest.Name == "" || registerRequest.Email == "" || registerRequest.Password == "" {
		utils.WriteError(w, utils.Invalid("missing required fields"))
		return
	}

	var existingUser models.User
	result := h.db.Where("email = ?", registerRequest.Email).First(&existingUser)
	if result.Error == nil {
		utils.WriteError(w, utils.ErrEmailTaken)
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.WriteError(w, result.Error)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(registerRequest.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	user := models.User{
		Name:         registerRequest.Name,
		Email:        registerRequest.Email,
		PasswordHash: string(passwordHash),
	}
	if err := h.db.Create(&user).Error; err != nil {
		// The unique index is the backstop for concurrent registrations.
		if strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "duplicate key") {
			utils.WriteError(w, utils.ErrEmailTaken)
			return
		}
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", loginRequest.Email).First(&user).Error; err != nil {
		utils.WriteError(w, utils.ErrBadCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(loginRequest.Password)); err != nil {
		utils.WriteError(w, utils.ErrBadCredentials)
		return
	}

	token, err := h.generateJWT(user.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	// The cookie carries the same JWT the token mode returns, so either
	// identity-resolution strategy works against one login flow. The
	// cross-site attributes are required for browser frontends on another
	// origin.
	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	utils.WriteSuccess(w)
}

func (h *Handler) HandlePasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	var resetRequest struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&resetRequest); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}
	if resetRequest.Email == "" {
		utils.WriteError(w, utils.Invalid("email is required"))
		return
	}

	// The response is identical whether or not the account exists.
	vague := map[string]string{
		"message": "If an account exists, a reset link will be sent to your email",
	}

	var user models.User
	if err := h.db.Where("email = ?", resetRequest.Email).First(&user).Error; err != nil {
		utils.WriteJSON(w, http.StatusOK, vague)
		return
	}

	resetToken := uuid.NewString()

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.PasswordResetToken{
			UserID:    user.ID,
			Token:     resetToken,
			ExpiresAt: time.Now().Add(15 * time.Minute),
		}).Error
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if h.cfg.MailConfigured() {
		go func() {
			if err := h.sendResetEmail(user.Email, resetToken); err != nil {
				log.Printf("error sending reset email: %v", err)
			}
		}()
	} else {
		log.Printf("SMTP not configured; skipping reset email for user %d", user.ID)
	}

	utils.WriteJSON(w, http.StatusOK, vague)
}

func (h *Handler) HandlePasswordReset(w http.ResponseWriter, r *http.Request) {
	var resetConfirm struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&resetConfirm); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}
	if resetConfirm.Token == "" || resetConfirm.Password == "" {
		utils.WriteError(w, utils.Invalid("token and password are required"))
		return
	}

	var reset models.PasswordResetToken
	if err := h.db.Where("token = ?", resetConfirm.Token).First(&reset).Error; err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}
	if time.Now().After(reset.ExpiresAt) {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(resetConfirm.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(passwordHash))
		if result.Error != nil {
			return result.Error
		}
		return tx.Delete(&models.PasswordResetToken{}, reset.ID).Error
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w)
}

func (h *Handler) generateJWT(userID uint) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   fmt.Sprint(userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.cfg.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *Handler) sendResetEmail(email, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", h.cfg.SMTPUser)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your password reset token is: %s. Ignore this email if you did not request a reset.", token))

	d := gomail.NewDialer(h.cfg.SMTPHost, h.cfg.SMTPPort, h.cfg.SMTPUser, h.cfg.SMTPPass)
	return d.DialAndSend(m)
}
