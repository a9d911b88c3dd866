package pgdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(db Querier) *ProductRepo {
	return NewProductRepo(db, converter.NewProductConverterImpl())
}

func newIPhone(t *testing.T) *domain.Product {
	t.Helper()

	value, err := domain.ParseMoney("5500.00")
	require.NoError(t, err)

	return &domain.Product{Code: "IPH16", Name: "Apple IPhone 16", Value: value}
}

func TestProductRepoInsert(t *testing.T) {
	tests := []struct {
		name            string
		description     string
		row             pgx.Row
		wantDescription *string
		wantErr         error
	}{
		{name: "without description", row: rowOf(time.Now())},
		{name: "with description", description: "128GB", row: rowOf(time.Now()), wantDescription: ptr("128GB")},
		{
			name:    "duplicate code",
			row:     rowErr(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "products_code_key"}),
			wantErr: e.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []any
			db := &mockQuerier{
				queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
					assert.Contains(t, sql, "INSERT INTO products")
					gotArgs = args
					return tt.row
				},
			}

			product := newIPhone(t)
			product.Description = tt.description

			created, err := newProductRepo(db).Insert(context.Background(), product)
			require.Len(t, gotArgs, 5)
			assert.NotEqual(t, uuid.Nil, gotArgs[0])
			assert.Equal(t, "IPH16", gotArgs[1])
			assert.Equal(t, tt.wantDescription, gotArgs[3])
			assert.True(t, decimal.RequireFromString("5500").Equal(gotArgs[4].(decimal.Decimal)))

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, gotArgs[0].(uuid.UUID).String(), created.ID)
			assert.Equal(t, tt.description, created.Description)
		})
	}
}

func TestProductRepoFindByCode(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		row     pgx.Row
		wantErr error
	}{
		{
			name: "found",
			row:  rowOf(id, "IPH16", "Apple IPhone 16", nil, decimal.RequireFromString("5500.00"), time.Now()),
		},
		{name: "missing", row: rowErr(pgx.ErrNoRows), wantErr: e.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &mockQuerier{
				queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
					assert.Contains(t, sql, "WHERE code = $1")
					assert.Equal(t, []any{"IPH16"}, args)
					return tt.row
				},
			}

			product, err := newProductRepo(db).FindByCode(context.Background(), "IPH16")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id.String(), product.ID)
			assert.Empty(t, product.Description)
			assert.Equal(t, "5500.00", product.Value.StringFixed(2))
		})
	}
}

func TestProductRepoFindAllRejectsUnknownSort(t *testing.T) {
	db := &mockQuerier{}

	req := usecase.NewPageRequest(0, 20, []usecase.SortOrder{{Field: "value; DROP TABLE products"}})
	_, err := newProductRepo(db).FindAll(context.Background(), req)
	assert.True(t, errors.Is(err, e.ErrInvalidPageRequest))
}

func TestProductRepoFindAllEmpty(t *testing.T) {
	db := &mockQuerier{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return rowOf(int64(0))
		},
		queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			assert.Contains(t, sql, "ORDER BY id ASC LIMIT $1 OFFSET $2")
			return &fakeRows{}, nil
		},
	}

	page, err := newProductRepo(db).FindAll(context.Background(), usecase.NewPageRequest(0, 20, nil))
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.True(t, page.Empty)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestProductRepoSaveStoreFailure(t *testing.T) {
	db := &mockQuerier{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return rowErr(errors.New("connection reset"))
		},
	}

	product := newIPhone(t)
	product.ID = uuid.NewString()

	_, err := newProductRepo(db).Save(context.Background(), product)
	assert.ErrorContains(t, err, "connection reset")
}

func ptr[T any](v T) *T {
	return &v
}
