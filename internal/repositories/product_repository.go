package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	SearchProducts(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// genderSynonyms is the fixed matching table: a gender constraint is an OR
// across categoria-contains and nombre-contains for each synonym.
var genderSynonyms = map[models.Gender][]string{
	models.GenderMale:   {"hombre", "masculino"},
	models.GenderFemale: {"mujer", "femenino"},
	models.GenderUnisex: {"unisex"},
}

const productColumns = `id, sku, nombre, categoria, descripcion, marca, precio, tallas, colores, imagen_url, activo, created_at, updated_at`

// buildSearchQuery translates criteria into one parameterized SELECT.
// Active filters are AND-ed; the name match and the gender synonyms are
// OR-groups internally. Results are ordered by nombre in byte order
// (COLLATE "C") and truncated to the limit.
func buildSearchQuery(criteria *models.SearchCriteria) (string, []any) {

	conds := []string{"activo = true"}
	args := []any{}

	if criteria.Category != "" {
		args = append(args, "%"+criteria.Category+"%")
		conds = append(conds, fmt.Sprintf("categoria ILIKE $%d", len(args)))
	}

	if criteria.NameQuery != "" {
		args = append(args, "%"+criteria.NameQuery+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(nombre ILIKE $%d OR sku ILIKE $%d OR descripcion ILIKE $%d)", n, n, n))
	}

	if criteria.PriceMin != nil {
		args = append(args, *criteria.PriceMin)
		conds = append(conds, fmt.Sprintf("precio >= $%d", len(args)))
	}

	if criteria.PriceMax != nil {
		args = append(args, *criteria.PriceMax)
		conds = append(conds, fmt.Sprintf("precio <= $%d", len(args)))
	}

	if criteria.SizeLabel != "" {
		args = append(args, criteria.SizeLabel)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tallas)", len(args)))
	}

	if criteria.ColorLabel != "" {
		args = append(args, criteria.ColorLabel)
		conds = append(conds, fmt.Sprintf("$%d = ANY(colores)", len(args)))
	}

	if synonyms := genderSynonyms[criteria.Gender]; len(synonyms) > 0 {
		parts := make([]string, 0, len(synonyms)*2)
		for _, synonym := range synonyms {
			args = append(args, "%"+synonym+"%")
			n := len(args)
			parts = append(parts, fmt.Sprintf("categoria ILIKE $%d", n), fmt.Sprintf("nombre ILIKE $%d", n))
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	args = append(args, limit)

	query := fmt.Sprintf(`SELECT %s FROM productos WHERE %s ORDER BY nombre COLLATE "C" ASC LIMIT $%d`,
		productColumns, strings.Join(conds, " AND "), len(args))

	return query, args
}

// SearchProducts issues the one read-only catalog query per call. There is
// no caching and no retry; any failure is surfaced whole to the caller.
func (r *productRepository) SearchProducts(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithCatalogTimeout(ctx)
	defer cancel()

	query, args := buildSearchQuery(criteria)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}

	return products, nil
}

// scanProduct maps a raw catalog row to the normalized record: missing
// arrays become empty sets, missing optional strings become empty.
func scanProduct(rows *sql.Rows) (*models.Product, error) {
	product := &models.Product{}

	var description, brand, imageURL sql.NullString

	err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.Category,
		&description, &brand, &product.Price,
		pq.Array(&product.Sizes), pq.Array(&product.Colors),
		&imageURL, &product.Active, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Brand = brand.String
	product.ImageURL = imageURL.String

	if product.Sizes == nil {
		product.Sizes = []string{}
	}
	if product.Colors == nil {
		product.Colors = []string{}
	}

	return product, nil
}
