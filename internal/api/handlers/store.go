package handlers

import (
	"errors"
	"net/http"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/models"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/calzatec/calzatec-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type StoreHandler struct {
	storeService service.StoreService
	validator    *validator.Validate
}

func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService, validator: validator.New()}
}

func (h *StoreHandler) CreateStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateStoreRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		store, err := h.storeService.CreateStore(r.Context(), &req)

		if err != nil {
			logger.Error("Store creation failed", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Store created", "storeId", store.ID.String())
		response.Success(w, http.StatusCreated, store)

	}
}

func (h *StoreHandler) GetStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.BadRequest(w, errors.New("invalid store id"))
			return
		}

		store, err := h.storeService.GetStoreByID(r.Context(), id)

		if err != nil {
			logger.Warn("Store lookup failed", "storeId", id.String(), "error", err.Error())
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, store)

	}
}

func (h *StoreHandler) ListStores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		stores, err := h.storeService.ListStores(r.Context())

		if err != nil {
			logger.Error("Store listing failed", "error", err.Error())
			response.Error(w, err)
			return
		}

		if stores == nil {
			stores = []*models.Store{}
		}

		response.Success(w, http.StatusOK, stores)

	}
}

func (h *StoreHandler) UpdateStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.BadRequest(w, errors.New("invalid store id"))
			return
		}

		var req models.UpdateStoreRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		store, err := h.storeService.UpdateStore(r.Context(), id, &req)

		if err != nil {
			logger.Error("Store update failed", "storeId", id.String(), "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Store updated", "storeId", id.String())
		response.Success(w, http.StatusOK, store)

	}
}

func (h *StoreHandler) DeleteStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.BadRequest(w, errors.New("invalid store id"))
			return
		}

		if err := h.storeService.DeleteStore(r.Context(), id); err != nil {
			logger.Warn("Store deletion failed", "storeId", id.String(), "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Store deleted", "storeId", id.String())
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})

	}
}
