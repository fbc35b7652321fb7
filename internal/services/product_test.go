package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/repositories/mocks"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearch(t *testing.T) {
	mockRepo := new(mocks.ProductRepository)
	productService := service.NewProductService(mockRepo)
	ctx := context.Background()

	t.Run("Success - Results Passed Through", func(t *testing.T) {
		// Arrange
		criteria := &models.SearchCriteria{Category: "tenis", Limit: 20}
		expected := []*models.Product{{SKU: "TEN-001", Name: "Tenis Urbano"}}

		mockRepo.On("SearchProducts", mock.Anything, criteria).Return(expected, nil).Once()

		// Act
		products, err := productService.Search(ctx, criteria)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Repository Error Becomes Catalog Unavailable", func(t *testing.T) {
		// Arrange
		criteria := &models.SearchCriteria{Limit: 20}
		mockRepo.On("SearchProducts", mock.Anything, criteria).
			Return(nil, errors.New("pq: connection refused")).Once()

		// Act
		products, err := productService.Search(ctx, criteria)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, products)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeCatalogUnavailable, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Gender
	}{
		{"hombre", models.GenderMale},
		{"Masculino", models.GenderMale},
		{"mujer", models.GenderFemale},
		{"FEMENINO", models.GenderFemale},
		{"unisex", models.GenderUnisex},
		{"  hombre  ", models.GenderMale},
		{"niños", models.GenderNone},
		{"", models.GenderNone},
		{"42", models.GenderNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, service.ParseGender(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeCriteria(t *testing.T) {
	t.Run("All Fields Present", func(t *testing.T) {
		req := &models.FilterRequest{
			Categoria: "tenis",
			Talla:     "42",
			Color:     "negro",
			PrecioMin: "500",
			PrecioMax: "1500.50",
			Genero:    "mujer",
			Nombre:    "runner",
			Limite:    "5",
		}

		criteria := service.NormalizeCriteria(req)

		assert.Equal(t, "tenis", criteria.Category)
		assert.Equal(t, "42", criteria.SizeLabel)
		assert.Equal(t, "negro", criteria.ColorLabel)
		assert.Equal(t, "runner", criteria.NameQuery)
		assert.Equal(t, models.GenderFemale, criteria.Gender)
		assert.Equal(t, 5, criteria.Limit)
		if assert.NotNil(t, criteria.PriceMin) {
			assert.Equal(t, 500.0, *criteria.PriceMin)
		}
		if assert.NotNil(t, criteria.PriceMax) {
			assert.Equal(t, 1500.50, *criteria.PriceMax)
		}
	})

	t.Run("Malformed Values Degrade To No Constraint", func(t *testing.T) {
		req := &models.FilterRequest{
			PrecioMin: "abc",
			PrecioMax: "-10",
			Genero:    "whatever",
			Limite:    "muchos",
		}

		criteria := service.NormalizeCriteria(req)

		assert.Nil(t, criteria.PriceMin)
		assert.Nil(t, criteria.PriceMax)
		assert.Equal(t, models.GenderNone, criteria.Gender)
		assert.Equal(t, models.DefaultSearchLimit, criteria.Limit)
	})

	t.Run("Limit Is Clamped", func(t *testing.T) {
		req := &models.FilterRequest{Limite: "5000"}
		criteria := service.NormalizeCriteria(req)
		assert.Equal(t, models.MaxSearchLimit, criteria.Limit)

		req = &models.FilterRequest{Limite: "0"}
		criteria = service.NormalizeCriteria(req)
		assert.Equal(t, models.DefaultSearchLimit, criteria.Limit)
	})
}
