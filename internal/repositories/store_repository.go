package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/google/uuid"
)

type StoreRepository interface {
	CreateStore(ctx context.Context, store *models.Store) error
	GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	ListStores(ctx context.Context) ([]*models.Store, error)
	UpdateStore(ctx context.Context, store *models.Store) error
	DeleteStore(ctx context.Context, id uuid.UUID) error
}

type storeRepository struct {
	DB *sql.DB
}

func NewStoreRepo(db *sql.DB) StoreRepository {
	return &storeRepository{DB: db}
}

func (r *storeRepository) CreateStore(ctx context.Context, store *models.Store) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO tiendas (nombre, ciudad, direccion, gerente, telefono, activo)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, store.Name, store.City, store.Address, store.Manager, store.Phone, store.Active).
		Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	store := &models.Store{}

	query := `SELECT id, nombre, ciudad, direccion, gerente, telefono, activo, created_at, updated_at
			  FROM tiendas
			  WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&store.ID, &store.Name, &store.City,
		&store.Address, &store.Manager, &store.Phone, &store.Active, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying store: %w", err)
	}

	return store, nil
}

func (r *storeRepository) ListStores(ctx context.Context) ([]*models.Store, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre, ciudad, direccion, gerente, telefono, activo, created_at, updated_at
			  FROM tiendas
			  ORDER BY nombre`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}

	defer rows.Close()

	stores := []*models.Store{}

	for rows.Next() {
		store := &models.Store{}

		err := rows.Scan(&store.ID, &store.Name, &store.City, &store.Address,
			&store.Manager, &store.Phone, &store.Active, &store.CreatedAt, &store.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning store row: %w", err)
		}

		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading store rows: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) UpdateStore(ctx context.Context, store *models.Store) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE tiendas SET nombre = $1, ciudad = $2, direccion = $3, gerente = $4, telefono = $5, activo = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, store.Name, store.City, store.Address,
		store.Manager, store.Phone, store.Active, store.ID).Scan(&store.UpdatedAt)
}

func (r *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM tiendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
