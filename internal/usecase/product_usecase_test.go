package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIPhone(t *testing.T) *domain.Product {
	t.Helper()

	value, err := domain.ParseMoney("5500.00")
	require.NoError(t, err)

	return &domain.Product{
		Code:        "IPH16",
		Name:        "Apple IPhone 16",
		Description: "iPhone 16",
		Value:       value,
	}
}

func TestProductRegister(t *testing.T) {
	tests := []struct {
		name     string
		insertFn func(ctx context.Context, product *domain.Product) (*domain.Product, error)
		wantErr  error
	}{
		{
			name: "assigns id",
			insertFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				stored := *product
				stored.ID = "507f1f77bcf86cd799439011"
				return &stored, nil
			},
		},
		{
			name: "duplicate code",
			insertFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return nil, e.ErrDuplicateKey
			},
			wantErr: e.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inserted *domain.Product
			repo := &mockProductRepo{
				insertFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
					inserted = product
					return tt.insertFn(ctx, product)
				},
			}

			input := newIPhone(t)
			input.ID = "from-request"

			created, err := NewProductRegistration(repo, logger.Nop()).Register(context.Background(), input)
			require.NotNil(t, inserted)
			assert.Empty(t, inserted.ID)
			assert.NotSame(t, input, inserted)
			assert.Equal(t, "from-request", input.ID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "507f1f77bcf86cd799439011", created.ID)
			assert.Equal(t, "IPH16", created.Code)
		})
	}
}

func TestProductUpdateMergesByCode(t *testing.T) {
	existing := newIPhone(t)
	existing.ID = "507f1f77bcf86cd799439011"

	var saved *domain.Product
	repo := &mockProductRepo{
		findByCodeFn: func(ctx context.Context, code string) (*domain.Product, error) {
			assert.Equal(t, "IPH16", code)
			return existing, nil
		},
		saveFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			saved = product
			return product, nil
		},
	}

	change := newIPhone(t)
	change.ID = "ignored"
	change.Name = "Apple IPhone 16 Pro"
	change.Description = "Pro"
	change.Value, _ = domain.ParseMoney("7999.90")

	updated, err := NewProductRegistration(repo, logger.Nop()).Update(context.Background(), change)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "507f1f77bcf86cd799439011", updated.ID)
	assert.Equal(t, "IPH16", updated.Code)
	assert.Equal(t, "Apple IPhone 16 Pro", updated.Name)
	assert.Equal(t, "Pro", updated.Description)
	assert.Equal(t, "7999.90", updated.Value.StringFixed(2))
}

func TestProductUpdateNotFound(t *testing.T) {
	repo := &mockProductRepo{
		findByCodeFn: func(ctx context.Context, code string) (*domain.Product, error) {
			return nil, e.ErrNotFound
		},
	}

	_, err := NewProductRegistration(repo, logger.Nop()).Update(context.Background(), newIPhone(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrNotFound))
	assert.EqualError(t, err, "Product was not found for parameters {code=IPH16}")
}

func TestProductUpdatePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("socket closed")
	repo := &mockProductRepo{
		findByCodeFn: func(ctx context.Context, code string) (*domain.Product, error) {
			return nil, storeErr
		},
	}

	_, err := NewProductRegistration(repo, logger.Nop()).Update(context.Background(), newIPhone(t))
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, e.ErrNotFound))
}

func TestProductSearchByID(t *testing.T) {
	repo := &mockProductRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			if id == "known" {
				p := newIPhone(t)
				p.ID = id
				return p, nil
			}
			return nil, e.ErrNotFound
		},
	}
	search := NewProductSearch(repo, logger.Nop())

	found, err := search.SearchByID(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", found.ID)

	_, err = search.SearchByID(context.Background(), "unknown")
	var notFound *e.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "id", notFound.Field)
	assert.Equal(t, "unknown", notFound.Value)

	assert.True(t, search.IsRegistered(context.Background(), "known"))
	assert.False(t, search.IsRegistered(context.Background(), "unknown"))
}

func TestProductSearchPassesNormalizedRequest(t *testing.T) {
	var got PageRequest
	repo := &mockProductRepo{
		findAllFn: func(ctx context.Context, req PageRequest) (*Page[domain.Product], error) {
			got = req
			return NewPage[domain.Product](nil, req, 0), nil
		},
	}

	page, err := NewProductSearch(repo, logger.Nop()).Search(context.Background(), NewPageRequest(2, 5000, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, MaxPageSize, got.Size)
	assert.True(t, page.Empty)
	assert.NotNil(t, page.Content)
}

func TestProductDeleteIgnoresMissing(t *testing.T) {
	repo := &mockProductRepo{
		deleteByIDFn: func(ctx context.Context, id string) error { return nil },
	}

	assert.NoError(t, NewProductRegistration(repo, logger.Nop()).Delete(context.Background(), "missing"))
}
