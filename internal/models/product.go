package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Gender is a search constraint derived from free-text synonyms.
type Gender string

const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// Search limits. A missing or malformed limite falls back to the default.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchCriteria is the normalized input of the product search. Every field
// is optional; the zero value matches every active product, bounded by Limit.
type SearchCriteria struct {
	Category   string
	NameQuery  string
	SizeLabel  string
	ColorLabel string
	PriceMin   *float64
	PriceMax   *float64
	Gender     Gender
	Limit      int
}

// Product is the normalized catalog record returned by the search. The JSON
// tags keep the storefront's Spanish wire contract.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"nombre"`
	Category    string    `json:"categoria"`
	Description string    `json:"descripcion,omitempty"`
	Brand       string    `json:"marca,omitempty"`
	Price       float64   `json:"precio"`
	Sizes       []string  `json:"tallas"`
	Colors      []string  `json:"colores"`
	ImageURL    string    `json:"imagen_url,omitempty"`
	Active      bool      `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// FlexString accepts a JSON string, a bare number, or null. Filter inputs
// must never be rejected as malformed, so decoding cannot fail: anything
// unrecognized collapses to the empty string ("no constraint").
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	*f = ""

	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FilterRequest mirrors the query-string / JSON body fields of
// /api/productos/filtros.
type FilterRequest struct {
	Categoria FlexString `json:"categoria"`
	Talla     FlexString `json:"talla"`
	Color     FlexString `json:"color"`
	PrecioMin FlexString `json:"precio_min"`
	PrecioMax FlexString `json:"precio_max"`
	Genero    FlexString `json:"genero"`
	Nombre    FlexString `json:"nombre"`
	Limite    FlexString `json:"limite"`
}

// FilterResponse is the legacy success envelope of /api/productos/filtros.
type FilterResponse struct {
	Success   bool       `json:"success"`
	Productos []*Product `json:"productos"`
	Total     int        `json:"total"`
}

// FilterErrorResponse is the legacy failure envelope. Details carries the
// underlying error text: safe to log, not guaranteed safe to display.
type FilterErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
