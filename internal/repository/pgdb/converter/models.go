package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientModel представляет запись таблицы clients в PostgreSQL.
type ClientModel struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	CPF           string    `db:"cpf"`
	Tel           *int64    `db:"tel"`
	Email         string    `db:"email"`
	Address       string    `db:"address"`
	AddressNumber *int32    `db:"address_number"`
	City          string    `db:"city"`
	Estate        string    `db:"estate"`
	CreatedAt     time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          uuid.UUID       `db:"id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Value       decimal.Decimal `db:"value"`
	CreatedAt   time.Time       `db:"created_at"`
}
