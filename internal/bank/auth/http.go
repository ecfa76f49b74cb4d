// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

/*
HTTP delivery layer for registration and login.

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Hands the session token to the client via an HttpOnly cookie.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kodbank/kodbank/internal/platform/config"
	"github.com/kodbank/kodbank/internal/platform/constants"
	requestutil "github.com/kodbank/kodbank/internal/platform/request"
	"github.com/kodbank/kodbank/internal/platform/respond"
	"github.com/kodbank/kodbank/internal/platform/sec"
	"github.com/kodbank/kodbank/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the account lifecycle entry points
// (Registration, Login).
type Handler struct {
	authService  *Service
	cookiePolicy config.CookiePolicy
}

// NewHandler constructs a new [Handler] with its service dependency and the
// startup-resolved cookie policy.
func NewHandler(service *Service, cookiePolicy config.CookiePolicy) *Handler {
	return &Handler{authService: service, cookiePolicy: cookiePolicy}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and sets the session cookie.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	return router
}

// # Request Payloads

type registerRequest struct {
	UID      string `json:"uid"`
	Username string `json:"uname"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"uname"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new customer account.

POST /api/v1/register

Description: Validates input, checks for identity conflicts, and persists
a new account with the fixed initial balance grant.

Request:
  - Body: registerRequest (UID, Username, Password, Email, Phone, Role?)

Response:
  - 201: Message: Registered successfully
  - 400: ErrInvalidJSON: Bad input, missing fields, or a role other than customer
  - 409: ErrConflict: UID or Username already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// All five credential fields are mandatory. Role is optional but, when
	// present, must be the single permitted variant. Length ceilings mirror
	// the column widths (and bcrypt's 72-byte input limit for the password)
	// so oversized input fails with a clean 400 instead of a storage error.
	validator := &validate.Validator{}
	validator.Required(FieldUID, input.UID).
		MaxLen(FieldUID, input.UID, 100).
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 100).
		Required(FieldPassword, input.Password).
		MaxLen(FieldPassword, input.Password, 72).
		Required(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, 255).
		Required(FieldPhone, input.Phone).
		MaxLen(FieldPhone, input.Phone, 50).
		Custom(FieldRole, input.Role != "" && !sec.UserRole(input.Role).IsValid(), "Only role customer is allowed")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		UID:      input.UID,
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Phone:    input.Phone,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		FieldMessage: "Registered successfully",
	})
}

/*
Login authenticates a customer and establishes a session.

POST /api/v1/login

Description: Verifies credentials, mints a signed session token, and injects
it into the response as an HttpOnly cookie. The 401 message is identical for
unknown users and wrong passwords.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: Message: Login successful (+ auth_token cookie)
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Credential carrier contract: HttpOnly always; MaxAge mirrors the
	// token TTL; Secure and SameSite come from the deployment policy
	// resolved once at startup.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(SessionTokenTTL.Seconds()),
		Expires:  session.ExpiresAt,
		Secure:   handler.cookiePolicy.Secure(),
		HttpOnly: true,
		SameSite: handler.cookiePolicy.SameSite(),
	})

	respond.OK(writer, map[string]string{
		FieldMessage: "Login successful",
	})
}
