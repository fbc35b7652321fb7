package handlers

import (
	"errors"
	"net/http"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	appErrors "github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/calzatec/calzatec-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type DeliverableHandler struct {
	deliverableService service.DeliverableService
	validator          *validator.Validate
}

func NewDeliverableHandler(deliverableService service.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{deliverableService: deliverableService, validator: validator.New()}
}

// Get serves GET /api/v1/entregables/{seccion}. Derived columns come back
// recomputed even for sheets saved by an older build.
func (h *DeliverableHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		seccion := r.PathValue("seccion")

		var (
			sheet any
			err   error
		)

		switch seccion {
		case models.SectionCoverage:
			sheet, err = h.deliverableService.GetCoverage(r.Context(), claims.UserID)
		case models.SectionRotation:
			sheet, err = h.deliverableService.GetRotation(r.Context(), claims.UserID)
		case models.SectionProposal:
			sheet, err = h.deliverableService.GetProposal(r.Context(), claims.UserID)
		case models.SectionKPIs:
			sheet, err = h.deliverableService.GetKPIs(r.Context(), claims.UserID)
		default:
			response.BadRequest(w, errors.New("sección desconocida: "+seccion))
			return
		}

		if err != nil {
			logger.Warn("Deliverable fetch failed", "seccion", seccion, "error", err.Error())
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sheet)

	}
}

// Save serves PUT /api/v1/entregables/{seccion}.
func (h *DeliverableHandler) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		seccion := r.PathValue("seccion")

		var (
			sheet any
			err   error
		)

		switch seccion {
		case models.SectionCoverage:
			var in models.CoverageSheet
			if !utils.ParseAndValidate(r, w, &in, h.validator) {
				return
			}
			sheet, err = h.deliverableService.SaveCoverage(r.Context(), claims.UserID, &in)
		case models.SectionRotation:
			var in models.RotationSheet
			if !utils.ParseAndValidate(r, w, &in, h.validator) {
				return
			}
			sheet, err = h.deliverableService.SaveRotation(r.Context(), claims.UserID, &in)
		case models.SectionProposal:
			var in models.ProposalSheet
			if !utils.ParseAndValidate(r, w, &in, h.validator) {
				return
			}
			sheet, err = h.deliverableService.SaveProposal(r.Context(), claims.UserID, &in)
		case models.SectionKPIs:
			var in models.KPISheet
			if !utils.ParseAndValidate(r, w, &in, h.validator) {
				return
			}
			sheet, err = h.deliverableService.SaveKPIs(r.Context(), claims.UserID, &in)
		default:
			response.BadRequest(w, errors.New("sección desconocida: "+seccion))
			return
		}

		if err != nil {
			logger.Error("Deliverable save failed", "seccion", seccion, "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Deliverable saved", "seccion", seccion, "userId", claims.UserID.String())
		response.Success(w, http.StatusOK, sheet)

	}
}

// Alerts serves GET /api/v1/entregables/kpis/alertas.
func (h *DeliverableHandler) Alerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		alerts, err := h.deliverableService.KPIAlerts(r.Context(), claims.UserID)

		if err != nil {
			logger.Warn("KPI alerts fetch failed", "error", err.Error())
			response.Error(w, err)
			return
		}

		if alerts == nil {
			alerts = []models.KPIAlert{}
		}

		response.Success(w, http.StatusOK, alerts)

	}
}
