package models

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical branch of the retail chain.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nombre"`
	City      string    `json:"ciudad"`
	Address   string    `json:"direccion"`
	Manager   string    `json:"gerente"`
	Phone     string    `json:"telefono"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name    string `json:"nombre" validate:"required,min=2,max=150"`
	City    string `json:"ciudad" validate:"required"`
	Address string `json:"direccion" validate:"required"`
	Manager string `json:"gerente,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}

type UpdateStoreRequest struct {
	Name    *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=150"`
	City    *string `json:"ciudad,omitempty"`
	Address *string `json:"direccion,omitempty"`
	Manager *string `json:"gerente,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Active  *bool   `json:"activo,omitempty"`
}
