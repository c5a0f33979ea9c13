package api

import (
	"log/slog"
	"net/http"

	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/service"
	"github.com/usergate/usergate/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService  *service.UserService
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService *service.UserService,
	tokenService auth.TokenService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login. On success the response carries a
// bearer token with the user's roles in the authorities claim.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		env := shared.NewErrorEnvelope(http.StatusBadRequest, "Validation failed", r.URL.Path).
			WithDetails(validationDetails(err))
		shared.WriteEnvelope(w, r, env)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.tokenService.Generate(r.Context(), user.Username, user.Roles)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithEnvelopeAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
