package service

import (
	"context"
	"testing"

	"catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock Repository ---

type mockProductRepo struct {
	products map[uint]model.Product
	nextID   uint
	creates  int
}

func newMockProductRepo(seed ...model.Product) *mockProductRepo {
	m := &mockProductRepo{products: map[uint]model.Product{}, nextID: 1}
	for _, p := range seed {
		m.products[p.ID] = p
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
	}
	return m
}

func (m *mockProductRepo) Create(_ context.Context, product *model.Product) error {
	product.ID = m.nextID
	m.nextID++
	m.creates++
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepo) Save(_ context.Context, product *model.Product) error {
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uint) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (m *mockProductRepo) List(_ context.Context, offset, limit int) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, int64(len(m.products)), nil
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int64) *int64       { return &i }
func uintPtr(u uint) *uint        { return &u }

// --- Tests ---

func TestProductCreate(t *testing.T) {
	t.Run("associates the category", func(t *testing.T) {
		categories := newMockCategoryRepo(model.Category{ID: 2, Name: "Books"})
		products := newMockProductRepo()
		svc := NewProductService(products, categories, nil)

		created, err := svc.Create(context.Background(), 2, ProductRequest{
			Name:  "Novel",
			Price: floatPtr(9.99),
			Stock: intPtr(3),
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.NotNil(t, created.CategoryID)
		assert.Equal(t, uint(2), *created.CategoryID)
		assert.Equal(t, "Books", created.Category.Name)
	})

	t.Run("missing category yields no product", func(t *testing.T) {
		categories := newMockCategoryRepo()
		products := newMockProductRepo()
		svc := NewProductService(products, categories, nil)

		_, err := svc.Create(context.Background(), 77, ProductRequest{Name: "Novel"})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
		assert.Zero(t, products.creates)
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("preserves id and category", func(t *testing.T) {
		products := newMockProductRepo(model.Product{
			ID:         4,
			Name:       "Old",
			Price:      floatPtr(1),
			CategoryID: uintPtr(2),
			Category:   &model.Category{ID: 2, Name: "Books"},
		})
		svc := NewProductService(products, newMockCategoryRepo(), nil)

		updated, err := svc.Update(context.Background(), 4, ProductRequest{
			Name:  "New",
			Price: floatPtr(12.5),
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(4), updated.ID)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, 12.5, *updated.Price)
		assert.Nil(t, updated.Stock)
		// Category survives a full replace
		assert.Equal(t, uint(2), *updated.CategoryID)
		assert.Equal(t, "Books", updated.Category.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewProductService(newMockProductRepo(), newMockCategoryRepo(), nil)

		_, err := svc.Update(context.Background(), 99, ProductRequest{Name: "x"})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProductPatch(t *testing.T) {
	seed := func() *mockProductRepo {
		return newMockProductRepo(model.Product{
			ID:          8,
			Name:        "Lamp",
			Description: "desk lamp",
			Price:       floatPtr(20),
			Stock:       intPtr(5),
			CategoryID:  uintPtr(1),
		})
	}

	t.Run("partial body overwrites only supplied fields", func(t *testing.T) {
		svc := NewProductService(seed(), newMockCategoryRepo(), nil)

		patched, err := svc.Patch(context.Background(), 8, PatchProductRequest{
			Price: floatPtr(25),
			Stock: intPtr(0),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Lamp", patched.Name)
		assert.Equal(t, "desk lamp", patched.Description)
		assert.Equal(t, 25.0, *patched.Price)
		assert.Equal(t, int64(0), *patched.Stock)
		assert.Equal(t, uint(1), *patched.CategoryID)
	})

	t.Run("empty body leaves everything unchanged", func(t *testing.T) {
		svc := NewProductService(seed(), newMockCategoryRepo(), nil)

		patched, err := svc.Patch(context.Background(), 8, PatchProductRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "Lamp", patched.Name)
		assert.Equal(t, "desk lamp", patched.Description)
		assert.Equal(t, 20.0, *patched.Price)
		assert.Equal(t, int64(5), *patched.Stock)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewProductService(newMockProductRepo(), newMockCategoryRepo(), nil)

		_, err := svc.Patch(context.Background(), 123, PatchProductRequest{})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProductEvents(t *testing.T) {
	t.Run("successful mutations publish", func(t *testing.T) {
		categories := newMockCategoryRepo(model.Category{ID: 1, Name: "Books"})
		products := newMockProductRepo()
		pub := &recordingPublisher{}
		svc := NewProductService(products, categories, pub)

		created, err := svc.Create(context.Background(), 1, ProductRequest{Name: "Novel"})
		assert.NoError(t, err)
		_, err = svc.Update(context.Background(), created.ID, ProductRequest{Name: "Hardcover"})
		assert.NoError(t, err)
		_, err = svc.Patch(context.Background(), created.ID, PatchProductRequest{Stock: intPtr(9)})
		assert.NoError(t, err)
		_, err = svc.Delete(context.Background(), created.ID)
		assert.NoError(t, err)

		assert.Equal(t, []string{
			"product.created",
			"product.updated",
			"product.updated",
			"product.deleted",
		}, pub.events)
	})

	t.Run("failed mutations publish nothing", func(t *testing.T) {
		products := newMockProductRepo()
		pub := &recordingPublisher{}
		svc := NewProductService(products, newMockCategoryRepo(), pub)

		_, err := svc.Create(context.Background(), 77, ProductRequest{Name: "Novel"})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		_, err = svc.Update(context.Background(), 99, ProductRequest{Name: "x"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		_, err = svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		assert.Empty(t, pub.events)
	})
}

func TestProductDelete(t *testing.T) {
	products := newMockProductRepo(model.Product{ID: 6, Name: "Doomed"})
	svc := NewProductService(products, newMockCategoryRepo(), nil)

	deleted, err := svc.Delete(context.Background(), 6)

	assert.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Name)

	_, err = svc.Get(context.Background(), 6)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
