package usecase

import (
	"context"

	"github.com/DRSN-tech/online-sales/internal/domain"
)

type ClientRegistrationUC interface {
	Register(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientSearchUC interface {
	Search(ctx context.Context, req PageRequest) (*Page[domain.Client], error)
	SearchByID(ctx context.Context, id string) (*domain.Client, error)
	SearchByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	IsRegistered(ctx context.Context, id string) bool
}

type ProductRegistrationUC interface {
	Register(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductSearchUC interface {
	Search(ctx context.Context, req PageRequest) (*Page[domain.Product], error)
	SearchByID(ctx context.Context, id string) (*domain.Product, error)
	SearchByCode(ctx context.Context, code string) (*domain.Product, error)
	IsRegistered(ctx context.Context, id string) bool
}
