package service

import (
	"context"
	"errors"

	"catalog/internal/model"
	"catalog/internal/repository"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned by Create when the target category does
// not exist, so handlers can distinguish it from a product lookup failure.
var ErrCategoryNotFound = errors.New("category not found")

// --- DTOs ---

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

// PatchProductRequest carries partial updates; nil fields are left untouched
type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

// ProductService defines the business logic for Product resources.
// Products are only ever created under an existing category; update and
// patch never reassign the category.
type ProductService interface {
	List(ctx context.Context, offset, limit int) ([]model.Product, int64, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, categoryID uint, req ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uint, req ProductRequest) (*model.Product, error)
	Patch(ctx context.Context, id uint, req PatchProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uint) (*model.Product, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	events       EventPublisher
}

func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	events EventPublisher,
) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, events: events}
}

func (s *productService) publish(event string, data interface{}) {
	if s.events != nil {
		s.events.Publish(event, data)
	}
}

func (s *productService) List(ctx context.Context, offset, limit int) ([]model.Product, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, categoryID uint, req ProductRequest) (*model.Product, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  &category.ID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Category = category

	s.publish("product.created", product)
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, req ProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Full replace; id and category always stay the existing ones
	product := &model.Product{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  existing.CategoryID,
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	product.Category = existing.Category

	s.publish("product.updated", product)
	return product, nil
}

func (s *productService) Patch(ctx context.Context, id uint, req PatchProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Price != nil {
		existing.Price = req.Price
	}
	if req.Stock != nil {
		existing.Stock = req.Stock
	}

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.publish("product.updated", existing)
	return existing, nil
}

func (s *productService) Delete(ctx context.Context, id uint) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.publish("product.deleted", existing)
	return existing, nil
}
