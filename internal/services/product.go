package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	repository "github.com/calzatec/calzatec-backend/internal/repositories"
)

type ProductService interface {
	Search(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// Search runs the one catalog query for the normalized criteria. The only
// failure it surfaces is the catalog being unreachable; empty results and
// unrecognized filter values are normal outcomes, not errors.
func (s *productService) Search(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Product, error) {

	products, err := s.repo.SearchProducts(ctx, criteria)
	if err != nil {
		return nil, errors.CatalogUnavailableError("No se pudieron obtener los productos").WithError(err)
	}

	return products, nil
}

// ParseGender maps the fixed Spanish synonym list onto a gender constraint.
// Anything unrecognized applies no constraint.
func ParseGender(raw string) models.Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hombre", "masculino", "male":
		return models.GenderMale
	case "mujer", "femenino", "female":
		return models.GenderFemale
	case "unisex":
		return models.GenderUnisex
	default:
		return models.GenderNone
	}
}

// NormalizeCriteria turns the loosely-typed filter request into search
// criteria. Malformed values degrade to "no constraint"; nothing here can
// reject a request.
func NormalizeCriteria(req *models.FilterRequest) *models.SearchCriteria {

	criteria := &models.SearchCriteria{
		Category:   strings.TrimSpace(req.Categoria.String()),
		NameQuery:  strings.TrimSpace(req.Nombre.String()),
		SizeLabel:  strings.TrimSpace(req.Talla.String()),
		ColorLabel: strings.TrimSpace(req.Color.String()),
		Gender:     ParseGender(req.Genero.String()),
		PriceMin:   parsePrice(req.PrecioMin.String()),
		PriceMax:   parsePrice(req.PrecioMax.String()),
		Limit:      parseLimit(req.Limite.String()),
	}

	return criteria
}

func parsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}

	return &value
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return models.DefaultSearchLimit
	}

	if limit > models.MaxSearchLimit {
		return models.MaxSearchLimit
	}

	return limit
}
