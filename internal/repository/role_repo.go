package repository

import (
	"context"
	"errors"

	"catalog/internal/model"

	"gorm.io/gorm"
)

// RoleRepository defines data access for Role entities
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindOrCreate(ctx context.Context, name, description string) (*model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return GetDB(ctx, r.db).Create(role).Error
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := GetDB(ctx, r.db).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindOrCreate returns the role with the given name, creating it with the
// supplied description when absent. The description of an existing role is
// left untouched.
func (r *roleRepository) FindOrCreate(ctx context.Context, name, description string) (*model.Role, error) {
	role, err := r.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = &model.Role{Name: name, Description: description}
	if err := r.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}
