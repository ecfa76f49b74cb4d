// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kodbank/kodbank/internal/platform/constants"
	"github.com/kodbank/kodbank/internal/platform/middleware"
	requestutil "github.com/kodbank/kodbank/internal/platform/request"
	"github.com/kodbank/kodbank/internal/platform/respond"
)

// Handler implements account-query HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with account-specific routes.
//
// The router is mounted at /balance by the composition root, so the
// handler itself binds the subrouter root.
//
// # Endpoints
//   - GET / : Returns the balance of the authenticated customer.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.balance)
	})

	return router
}

/*
Balance returns the stored balance of the authenticated customer.

GET /api/v1/balance

Description: Resolves the verified session subject to its account and
returns the immutable balance.

Response:
  - 200: Balance: {"balance": <integer>}
  - 401: ErrUnauthorized: Missing cookie or invalid/expired token
  - 404: ErrNotFound: Identity no longer resolves to an account
*/
func (handler *Handler) balance(writer http.ResponseWriter, request *http.Request) {

	// The verifier middleware ran before us; this only fails if the route
	// was mounted without it.
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	balance, err := handler.accountService.GetBalance(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{
		constants.FieldBalance: balance,
	})
}
