package handlers

import (
	"net/http"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	appErrors "github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/calzatec/calzatec-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)

		if err != nil {
			logger.Error("User registration failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("User registered", "userId", user.ID.String())
		response.Success(w, http.StatusCreated, user)

	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)

		if err != nil {
			logger.Warn("Login failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)
			return
		}

		if !resp.Success {
			logger.Warn("Login rejected", "email", req.Email)
			response.WriteJson(w, http.StatusUnauthorized, resp)
			return
		}

		logger.Info("User logged in", "email", req.Email)
		response.Success(w, http.StatusOK, resp)

	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)

		if err != nil {
			logger.Warn("Profile lookup failed", "userId", claims.UserID.String(), "error", err.Error())
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)

	}
}
