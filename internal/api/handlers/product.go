package handlers

import (
	"net/http"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/models"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/calzatec/calzatec-backend/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Filter serves /api/productos/filtros for both GET (query string) and POST
// (JSON body). The endpoint keeps the wire contract of the original widget
// backend: filters are best-effort, an unparseable value is simply ignored,
// and the only failure mode is the catalog being unreachable.
func (h *ProductHandler) Filter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.FilterRequest

		if r.Method == http.MethodPost {
			// A malformed body means "no filters", not a client error.
			if err := utils.DecodeJSONBody(r, &req); err != nil {
				logger.Warn("Ignoring unreadable filter body", "error", err.Error())
				req = models.FilterRequest{}
			}
		} else {
			q := r.URL.Query()
			req = models.FilterRequest{
				Categoria: models.FlexString(q.Get("categoria")),
				Talla:     models.FlexString(q.Get("talla")),
				Color:     models.FlexString(q.Get("color")),
				PrecioMin: models.FlexString(q.Get("precio_min")),
				PrecioMax: models.FlexString(q.Get("precio_max")),
				Genero:    models.FlexString(q.Get("genero")),
				Nombre:    models.FlexString(q.Get("nombre")),
				Limite:    models.FlexString(q.Get("limite")),
			}
		}

		criteria := service.NormalizeCriteria(&req)

		products, err := h.productService.Search(r.Context(), criteria)

		if err != nil {
			logger.Error("Product filter query failed", "error", err.Error())
			response.WriteJson(w, http.StatusInternalServerError, models.FilterErrorResponse{
				Error:   "Error al obtener productos",
				Details: err.Error(),
			})
			return
		}

		if products == nil {
			products = []*models.Product{}
		}

		logger.Info("Product filter served", "total", len(products))
		response.WriteJson(w, http.StatusOK, models.FilterResponse{
			Success:   true,
			Productos: products,
			Total:     len(products),
		})

	}
}
