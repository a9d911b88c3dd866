package pgdb

import (
	"context"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

const productSelect = `
	SELECT id, code, name, description, value, created_at
	FROM products
`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	db   Querier
	conv converter.ProductConverter
}

func NewProductRepo(db Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		db:   db,
		conv: conv,
	}
}

func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model, err := p.conv.ToModel(product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	model.ID = uuid.New()

	query := `
		INSERT INTO products (id, code, name, description, value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err = p.db.QueryRow(ctx, query, model.ID, model.Code, model.Name, model.Description, model.Value).
		Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(model), nil
}

// Save обновляет товар по id или создаёт его, если записи нет.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model, err := p.conv.ToModel(product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}

	query := `
		INSERT INTO products (id, code, name, description, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			value = EXCLUDED.value
		RETURNING created_at
	`

	err = p.db.QueryRow(ctx, query, model.ID, model.Code, model.Name, model.Description, model.Value).
		Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	parsed, err := converter.ParseID(id)
	if err != nil || parsed == uuid.Nil {
		return nil, e.ErrNotFound
	}

	return p.findOne(ctx, productSelect+" WHERE id = $1", parsed)
}

func (p *ProductRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	return p.findOne(ctx, productSelect+" WHERE code = $1", code)
}

func (p *ProductRepo) FindAll(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Product], error) {
	order, err := orderBy(req.Sort, productColumns)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var total int64
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rows, err := p.db.Query(ctx, productSelect+order+" LIMIT $1 OFFSET $2", req.Size, req.Offset())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, req.Size)
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		products = append(products, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewPage(products, req, total), nil
}

func (p *ProductRepo) DeleteByID(ctx context.Context, id string) error {
	parsed, err := converter.ParseID(id)
	if err != nil || parsed == uuid.Nil {
		return nil
	}

	if _, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, parsed); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) findOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var model converter.ProductModel
	if err := scanProduct(p.db.QueryRow(ctx, query, arg), &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(&model), nil
}

func scanProduct(row scanner, model *converter.ProductModel) error {
	return row.Scan(&model.ID, &model.Code, &model.Name, &model.Description, &model.Value, &model.CreatedAt)
}
