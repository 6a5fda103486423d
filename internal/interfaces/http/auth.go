package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"solidadmin/internal/domain/admin"
	"solidadmin/internal/shared/auth"
	"solidadmin/internal/shared/middleware"
)

// FirebaseVerifier validates a Firebase ID token and returns the email it
// belongs to. Nil when Firebase credentials are not configured.
type FirebaseVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

type AuthHandler struct {
	adminRepo admin.Repository
	jwt       *auth.JWT
	firebase  FirebaseVerifier
	secure    bool
}

func NewAuthHandler(adminRepo admin.Repository, jwt *auth.JWT, firebase FirebaseVerifier, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		adminRepo: adminRepo,
		jwt:       jwt,
		firebase:  firebase,
		secure:    secureCookies,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// IDToken is a Firebase ID token, accepted instead of email/password
	// when Firebase sign-in is configured.
	IDToken string `json:"idToken,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin *admin.Admin `json:"admin"`
}

// HandleLogin issues an admin JWT for valid credentials or a verified
// Firebase ID token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding login request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var account *admin.Admin
	var err error

	switch {
	case req.IDToken != "" && h.firebase != nil:
		account, err = h.loginWithFirebase(r.Context(), req.IDToken)
	case req.Email != "" && req.Password != "":
		account, err = h.loginWithPassword(r.Context(), req.Email, req.Password)
	default:
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	if err != nil {
		if !errors.Is(err, admin.ErrInvalidCredentials) {
			log.Printf("Login error for %s: %v", req.Email, err)
		}
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.jwt.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		log.Printf("Error generating token for %s: %v", account.Email, err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, LoginResponse{Token: token, Admin: account})
}

func (h *AuthHandler) loginWithPassword(ctx context.Context, email, password string) (*admin.Admin, error) {
	account, err := h.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			// Burn a bcrypt comparison so missing and wrong-password
			// lookups take similar time.
			auth.VerifyPassword("$2a$10$invalidsaltinvalidsaltinvalidsaltinvalidsaltinvalid", password)
			return nil, admin.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(account.PasswordHash, password); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	return account, nil
}

func (h *AuthHandler) loginWithFirebase(ctx context.Context, idToken string) (*admin.Admin, error) {
	email, err := h.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	account, err := h.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, admin.ErrInvalidCredentials
		}
		return nil, err
	}

	return account, nil
}

// HandleLogout clears the access token cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the authenticated admin account.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	adminID, ok := middleware.AdminID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.adminRepo.GetByID(r.Context(), adminID)
	if err != nil {
		log.Printf("Error loading admin %s: %v", adminID, err)
		http.Error(w, "Admin not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, account)
}
