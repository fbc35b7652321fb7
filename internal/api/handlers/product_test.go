package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calzatec/calzatec-backend/internal/api/handlers"
	appErrors "github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/services/mocks"
	"github.com/calzatec/calzatec-backend/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleProduct(name, sku string) *models.Product {
	return &models.Product{
		ID:       uuid.New(),
		SKU:      sku,
		Name:     name,
		Category: "tenis",
		Price:    1299.90,
		Sizes:    []string{"41", "42"},
		Colors:   []string{"negro"},
	}
}

func TestFilterGet(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Query Params Applied", func(t *testing.T) {
		// Arrange
		found := []*models.Product{sampleProduct("Tenis Urbano", "TEN-001")}

		mockProductService.On("Search", mock.Anything, mock.MatchedBy(func(c *models.SearchCriteria) bool {
			return c.Category == "tenis" && c.SizeLabel == "42" && c.Limit == 5
		})).Return(found, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/productos/filtros?categoria=tenis&talla=42&limite=5", nil, nil)

		// Act
		productHandler.Filter().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.FilterResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Total)
		assert.Len(t, resp.Productos, 1)
		assert.Equal(t, "TEN-001", resp.Productos[0].SKU)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - No Matches Returns Empty Array", func(t *testing.T) {
		// Arrange
		mockProductService.On("Search", mock.Anything, mock.Anything).Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/productos/filtros?categoria=inexistente", nil, nil)

		// Act
		productHandler.Filter().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success": true, "productos": [], "total": 0}`, rr.Body.String())
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Catalog Unavailable", func(t *testing.T) {
		// Arrange
		mockProductService.On("Search", mock.Anything, mock.Anything).
			Return(nil, appErrors.CatalogUnavailableError("No se pudieron obtener los productos").WithError(errors.New("dial tcp: connection refused"))).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/productos/filtros", nil, nil)

		// Act
		productHandler.Filter().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var errResp models.FilterErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "Error al obtener productos", errResp.Error)
		assert.NotEmpty(t, errResp.Details)
		assert.NotContains(t, rr.Body.String(), `"productos"`)
		mockProductService.AssertExpectations(t)
	})
}

func TestFilterPost(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - JSON Body With Numeric Values", func(t *testing.T) {
		// The legacy widget sends numbers for price and limit fields.
		body := []byte(`{"categoria": "botas", "precio_min": 500, "precio_max": 1500.5, "limite": 3}`)

		mockProductService.On("Search", mock.Anything, mock.MatchedBy(func(c *models.SearchCriteria) bool {
			return c.Category == "botas" &&
				c.PriceMin != nil && *c.PriceMin == 500 &&
				c.PriceMax != nil && *c.PriceMax == 1500.5 &&
				c.Limit == 3
		})).Return([]*models.Product{sampleProduct("Bota Minera", "BOT-007")}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/productos/filtros", bytes.NewReader(body), nil)
		req.Header.Set("Content-Type", "application/json")

		// Act
		productHandler.Filter().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.FilterResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Total)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Unreadable Body Treated As No Filters", func(t *testing.T) {
		// Arrange
		mockProductService.On("Search", mock.Anything, mock.MatchedBy(func(c *models.SearchCriteria) bool {
			return c.Category == "" && c.PriceMin == nil && c.Limit == models.DefaultSearchLimit
		})).Return([]*models.Product{}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/productos/filtros", bytes.NewReader([]byte(`{not json`)), nil)

		// Act
		productHandler.Filter().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}
