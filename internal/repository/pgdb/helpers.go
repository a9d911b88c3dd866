package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// Querier — часть *pgxpool.Pool, которой пользуются репозитории.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	clientColumns = map[string]string{
		"id":            "id",
		"name":          "name",
		"cpf":           "cpf",
		"tel":           "tel",
		"email":         "email",
		"address":       "address",
		"addressNumber": "address_number",
		"city":          "city",
		"estate":        "estate",
	}

	productColumns = map[string]string{
		"id":          "id",
		"code":        "code",
		"name":        "name",
		"description": "description",
		"value":       "value",
	}
)

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return e.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return e.Wrap(pgErr.ConstraintName, e.ErrDuplicateKey)
	}

	return err
}

// orderBy собирает ORDER BY только из колонок белого списка; id добавляется для стабильного порядка.
func orderBy(orders []usecase.SortOrder, columns map[string]string) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	hasID := false

	for _, order := range orders {
		column, ok := columns[order.Field]
		if !ok {
			return "", e.Wrap(fmt.Sprintf("sort field %q", order.Field), e.ErrInvalidPageRequest)
		}
		if column == "id" {
			hasID = true
		}

		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}

	if !hasID {
		parts = append(parts, "id ASC")
	}

	return "ORDER BY " + strings.Join(parts, ", "), nil
}
