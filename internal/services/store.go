package service

import (
	"context"

	"github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	repository "github.com/calzatec/calzatec-backend/internal/repositories"
	"github.com/google/uuid"
)

type StoreService interface {
	CreateStore(ctx context.Context, req *models.CreateStoreRequest) (*models.Store, error)
	GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	ListStores(ctx context.Context) ([]*models.Store, error)
	UpdateStore(ctx context.Context, id uuid.UUID, req *models.UpdateStoreRequest) (*models.Store, error)
	DeleteStore(ctx context.Context, id uuid.UUID) error
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) CreateStore(ctx context.Context, req *models.CreateStoreRequest) (*models.Store, error) {

	store := &models.Store{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Manager: req.Manager,
		Phone:   req.Phone,
		Active:  true,
	}

	err := s.repo.CreateStore(ctx, store)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create store").WithError(err)
	}

	return store, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {

	store, err := s.repo.GetStoreByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Store not found").WithError(err)
	}

	return store, nil
}

func (s *storeService) ListStores(ctx context.Context) ([]*models.Store, error) {

	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch stores").WithError(err)
	}

	return stores, nil
}

func (s *storeService) UpdateStore(ctx context.Context, id uuid.UUID, req *models.UpdateStoreRequest) (*models.Store, error) {

	store, err := s.repo.GetStoreByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Store not found").WithError(err)
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.City != nil {
		store.City = *req.City
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Manager != nil {
		store.Manager = *req.Manager
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Active != nil {
		store.Active = *req.Active
	}

	err = s.repo.UpdateStore(ctx, store)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update store").WithError(err)
	}

	return store, nil
}

func (s *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {

	err := s.repo.DeleteStore(ctx, id)
	if err != nil {
		return errors.NotFoundError("Store not found").WithError(err)
	}

	return nil
}
