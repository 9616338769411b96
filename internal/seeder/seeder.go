package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"catalog/internal/model"
	"catalog/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default account credentials ensured at startup
const (
	SuperAdminEmail    = "super.admin@gmail.com"
	superAdminPassword = "superadmin123"
	DefaultUserEmail   = "user@gmail.com"
	defaultUserPass    = "user1234"
)

// Seeder ensures the baseline roles and accounts exist. Running it again is
// a no-op: existing accounts are never modified.
type Seeder struct {
	users repository.UserRepository
	roles repository.RoleRepository
	tx    repository.TransactionManager
}

func New(users repository.UserRepository, roles repository.RoleRepository, tx repository.TransactionManager) *Seeder {
	return &Seeder{users: users, roles: roles, tx: tx}
}

// Run seeds the super administrator and the default user account
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedSuperAdmin(ctx); err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}
	if err := s.seedDefaultUser(ctx); err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}
	return nil
}

func (s *Seeder) seedSuperAdmin(ctx context.Context) error {
	exists, err := s.accountExists(ctx, SuperAdminEmail)
	if err != nil || exists {
		return err
	}

	return s.createAccount(ctx, model.User{
		Name:     "Super",
		Lastname: "Admin",
		Email:    SuperAdminEmail,
	}, superAdminPassword, model.RoleSuperAdmin, "Super Administrator role")
}

func (s *Seeder) seedDefaultUser(ctx context.Context) error {
	exists, err := s.accountExists(ctx, DefaultUserEmail)
	if err != nil {
		return err
	}
	if exists {
		log.Println("Seeder: default user already exists, skipping")
		return nil
	}

	err = s.createAccount(ctx, model.User{
		Name:     "Default",
		Lastname: "User",
		Email:    DefaultUserEmail,
	}, defaultUserPass, model.RoleUser, "Default user role")
	if err == nil {
		log.Println("Seeder: default user created")
	}
	return err
}

func (s *Seeder) accountExists(ctx context.Context, email string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// createAccount hashes the password, resolves the role (creating it when
// absent) and inserts the user, all inside one transaction.
func (s *Seeder) createAccount(ctx context.Context, user model.User, password, roleName, roleDescription string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.roles.FindOrCreate(txCtx, roleName, roleDescription)
		if err != nil {
			return err
		}

		user.RoleID = role.ID
		return s.users.Create(txCtx, &user)
	})
}
