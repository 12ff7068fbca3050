package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/metrics"
	"github.com/brainbox-app/brainbox/internal/store"
)

const passwordSpecialChars = "!@#$%^&*"

// accountsHandler provides the unauthenticated signup/signin endpoints.
type accountsHandler struct {
	users    *store.UserStore
	tokens   *auth.Tokens
	validate *validator.Validate
}

// registerAccountRoutes registers signup and signin on r.
func registerAccountRoutes(r chi.Router, users *store.UserStore, tokens *auth.Tokens) {
	h := &accountsHandler{
		users:    users,
		tokens:   tokens,
		validate: newCredentialsValidator(),
	}
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
}

// newCredentialsValidator builds a validator with the password-strength rule:
// at least one upper-case letter, one lower-case letter, one digit, and one
// character from the fixed special set.
func newCredentialsValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name; safe to ignore here.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, lower, digit, special bool
		for _, r := range fl.Field().String() {
			switch {
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= '0' && r <= '9':
				digit = true
			case strings.ContainsRune(passwordSpecialChars, r):
				special = true
			}
		}
		return upper && lower && digit && special
	})
	return v
}

// decodeCredentials decodes and shape-checks a signup/signin body. On failure
// it writes the 400 validation response and returns false.
func (h *accountsHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: "Incorrect Format",
			Error:   "invalid request body",
		})
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: "Incorrect Format",
			Error:   err.Error(),
		})
		return req, false
	}
	return req, true
}

// Signup registers a new account.
// POST /api/v1/signup
//
// @Summary      Sign up
// @Description  Creates an account from an email-shaped username and a password.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      403   {object}  MessageResponse
// @Router       /signup [post]
func (h *accountsHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("hash password")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, hash); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			writeMessage(w, http.StatusForbidden, "Account already exists Please SignIn")
			return
		}
		log.Err(err).Msg("create user")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	metrics.SignupsTotal.Inc()
	writeMessage(w, http.StatusOK, "User SignedUp Successfully")
}

// Signin exchanges valid credentials for a bearer token.
// POST /api/v1/signin
//
// @Summary      Sign in
// @Description  Verifies credentials and returns a signed bearer token.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      403   {object}  MessageResponse
// @Router       /signin [post]
func (h *accountsHandler) Signin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusOK, "Account does not exist!Please Sign Up")
			return
		}
		log.Err(err).Msg("look up user")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeMessage(w, http.StatusForbidden, "Invalid Username or Password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Err(err).Msg("issue token")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	metrics.SigninsTotal.Inc()
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
