package service

import (
	"context"

	"catalog/internal/model"
	"catalog/internal/repository"
)

// EventPublisher broadcasts catalog change events to connected subscribers.
// *websocket.Hub is the production implementation.
type EventPublisher interface {
	Publish(event string, data interface{})
}

// --- DTOs ---

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PatchCategoryRequest carries partial updates; nil fields are left untouched
type PatchCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryService defines the business logic for Category resources.
// Missing rows surface as gorm.ErrRecordNotFound from the repository.
type CategoryService interface {
	List(ctx context.Context, offset, limit int) ([]model.Category, int64, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, req CategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id uint, req CategoryRequest) (*model.Category, error)
	Patch(ctx context.Context, id uint, req PatchCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uint) (*model.Category, error)
}

type categoryService struct {
	repo   repository.CategoryRepository
	events EventPublisher
}

func NewCategoryService(repo repository.CategoryRepository, events EventPublisher) CategoryService {
	return &categoryService{repo: repo, events: events}
}

func (s *categoryService) publish(event string, data interface{}) {
	if s.events != nil {
		s.events.Publish(event, data)
	}
}

func (s *categoryService) List(ctx context.Context, offset, limit int) ([]model.Category, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req CategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.publish("category.created", category)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req CategoryRequest) (*model.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Full replace, but the id always stays the existing one
	category := &model.Category{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publish("category.updated", category)
	return category, nil
}

func (s *categoryService) Patch(ctx context.Context, id uint, req PatchCategoryRequest) (*model.Category, error) {
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

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.publish("category.updated", existing)
	return existing, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) (*model.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.publish("category.deleted", existing)
	return existing, nil
}
