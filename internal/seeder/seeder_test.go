package seeder

import (
	"context"
	"testing"

	"catalog/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mocks ---

type mockUserRepo struct {
	users map[string]model.User // keyed by email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]model.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = uuid.New()
	m.users[user.Email] = *user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID.String() == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type mockRoleRepo struct {
	roles   map[string]model.Role
	creates int
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: map[string]model.Role{}}
}

func (m *mockRoleRepo) Create(_ context.Context, role *model.Role) error {
	role.ID = uuid.New()
	m.creates++
	m.roles[role.Name] = *role
	return nil
}

func (m *mockRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	r, ok := m.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *mockRoleRepo) FindOrCreate(ctx context.Context, name, description string) (*model.Role, error) {
	if r, err := m.FindByName(ctx, name); err == nil {
		return r, nil
	}
	role := &model.Role{Name: name, Description: description}
	if err := m.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// passthroughTx runs the unit of work without a real transaction
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// --- Tests ---

func TestSeederCreatesBaselineAccounts(t *testing.T) {
	users := newMockUserRepo()
	roles := newMockRoleRepo()

	err := New(users, roles, passthroughTx{}).Run(context.Background())
	assert.NoError(t, err)

	admin, err := users.GetByEmail(context.Background(), SuperAdminEmail)
	assert.NoError(t, err)
	assert.Equal(t, "Super", admin.Name)
	assert.Equal(t, "Admin", admin.Lastname)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("superadmin123")))

	defaultUser, err := users.GetByEmail(context.Background(), DefaultUserEmail)
	assert.NoError(t, err)
	assert.Equal(t, "Default", defaultUser.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(defaultUser.Password), []byte("user1234")))

	adminRole, err := roles.FindByName(context.Background(), model.RoleSuperAdmin)
	assert.NoError(t, err)
	assert.Equal(t, adminRole.ID, admin.RoleID)

	userRole, err := roles.FindByName(context.Background(), model.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, userRole.ID, defaultUser.RoleID)
}

func TestSeederIsIdempotent(t *testing.T) {
	users := newMockUserRepo()
	roles := newMockRoleRepo()
	s := New(users, roles, passthroughTx{})

	assert.NoError(t, s.Run(context.Background()))
	first, _ := users.GetByEmail(context.Background(), SuperAdminEmail)

	assert.NoError(t, s.Run(context.Background()))

	assert.Len(t, users.users, 2)
	assert.Equal(t, 2, roles.creates)

	// Existing accounts are never modified
	second, _ := users.GetByEmail(context.Background(), SuperAdminEmail)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Password, second.Password)
}

func TestSeederReusesExistingRole(t *testing.T) {
	users := newMockUserRepo()
	roles := newMockRoleRepo()
	existing := &model.Role{Name: model.RoleSuperAdmin, Description: "Super Administrator role"}
	assert.NoError(t, roles.Create(context.Background(), existing))

	err := New(users, roles, passthroughTx{}).Run(context.Background())
	assert.NoError(t, err)

	// Only the USER role was created during seeding
	assert.Equal(t, 2, roles.creates)
	admin, _ := users.GetByEmail(context.Background(), SuperAdminEmail)
	assert.Equal(t, existing.ID, admin.RoleID)
}
