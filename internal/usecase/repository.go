package usecase

import (
	"context"

	"github.com/DRSN-tech/online-sales/internal/domain"
)

// ClientRepository — контракт хранилища клиентов.
// Insert возвращает e.ErrDuplicateKey при нарушении уникальности,
// FindBy* возвращают e.ErrNotFound, DeleteByID не считает отсутствие записи ошибкой.
type ClientRepository interface {
	Insert(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Save(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[domain.Client], error)
	DeleteByID(ctx context.Context, id string) error
}

// ProductRepository — контракт хранилища товаров, аналогичный ClientRepository.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[domain.Product], error)
	DeleteByID(ctx context.Context, id string) error
}
