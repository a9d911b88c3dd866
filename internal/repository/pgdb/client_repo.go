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

const clientSelect = `
	SELECT id, name, cpf, tel, email, address, address_number, city, estate, created_at
	FROM clients
`

// ClientRepo реализует репозиторий клиентов поверх PostgreSQL.
type ClientRepo struct {
	db   Querier
	conv converter.ClientConverter
}

func NewClientRepo(db Querier, conv converter.ClientConverter) *ClientRepo {
	return &ClientRepo{
		db:   db,
		conv: conv,
	}
}

// Insert создаёт клиента с новым UUID.
func (c *ClientRepo) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	model, err := c.conv.ToModel(client)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	model.ID = uuid.New()

	query := `
		INSERT INTO clients (id, name, cpf, tel, email, address, address_number, city, estate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err = c.db.QueryRow(ctx, query,
		model.ID, model.Name, model.CPF, model.Tel, model.Email,
		model.Address, model.AddressNumber, model.City, model.Estate,
	).Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(model), nil
}

// Save обновляет клиента по id или создаёт его, если записи нет.
func (c *ClientRepo) Save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	model, err := c.conv.ToModel(client)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}

	query := `
		INSERT INTO clients (id, name, cpf, tel, email, address, address_number, city, estate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			cpf = EXCLUDED.cpf,
			tel = EXCLUDED.tel,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			address_number = EXCLUDED.address_number,
			city = EXCLUDED.city,
			estate = EXCLUDED.estate
		RETURNING created_at
	`

	err = c.db.QueryRow(ctx, query,
		model.ID, model.Name, model.CPF, model.Tel, model.Email,
		model.Address, model.AddressNumber, model.City, model.Estate,
	).Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(model), nil
}

func (c *ClientRepo) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	parsed, err := converter.ParseID(id)
	if err != nil || parsed == uuid.Nil {
		return nil, e.ErrNotFound
	}

	return c.findOne(ctx, clientSelect+" WHERE id = $1", parsed)
}

func (c *ClientRepo) FindByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	return c.findOne(ctx, clientSelect+" WHERE cpf = $1", cpf)
}

// FindAll возвращает страницу клиентов в порядке, заданном запросом.
func (c *ClientRepo) FindAll(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Client], error) {
	order, err := orderBy(req.Sort, clientColumns)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var total int64
	if err := c.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rows, err := c.db.Query(ctx, clientSelect+order+" LIMIT $1 OFFSET $2", req.Size, req.Offset())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0, req.Size)
	for rows.Next() {
		var model converter.ClientModel
		if err := scanClient(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		clients = append(clients, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewPage(clients, req, total), nil
}

// DeleteByID удаляет клиента. Отсутствие записи не считается ошибкой.
func (c *ClientRepo) DeleteByID(ctx context.Context, id string) error {
	parsed, err := converter.ParseID(id)
	if err != nil || parsed == uuid.Nil {
		return nil
	}

	if _, err := c.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, parsed); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ClientRepo) findOne(ctx context.Context, query string, arg any) (*domain.Client, error) {
	var model converter.ClientModel
	if err := scanClient(c.db.QueryRow(ctx, query, arg), &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(&model), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner, model *converter.ClientModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.CPF, &model.Tel, &model.Email,
		&model.Address, &model.AddressNumber, &model.City, &model.Estate, &model.CreatedAt,
	)
}
