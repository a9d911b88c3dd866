package http

import (
	"context"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/usecase"
)

type mockClientRegistration struct {
	registerFn func(ctx context.Context, client *domain.Client) (*domain.Client, error)
	updateFn   func(ctx context.Context, client *domain.Client) (*domain.Client, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockClientRegistration) Register(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return m.registerFn(ctx, client)
}

func (m *mockClientRegistration) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return m.updateFn(ctx, client)
}

func (m *mockClientRegistration) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockClientSearch struct {
	searchFn       func(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Client], error)
	searchByIDFn   func(ctx context.Context, id string) (*domain.Client, error)
	searchByCPFFn  func(ctx context.Context, cpf string) (*domain.Client, error)
	isRegisteredFn func(ctx context.Context, id string) bool
}

func (m *mockClientSearch) Search(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Client], error) {
	return m.searchFn(ctx, req)
}

func (m *mockClientSearch) SearchByID(ctx context.Context, id string) (*domain.Client, error) {
	return m.searchByIDFn(ctx, id)
}

func (m *mockClientSearch) SearchByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	return m.searchByCPFFn(ctx, cpf)
}

func (m *mockClientSearch) IsRegistered(ctx context.Context, id string) bool {
	return m.isRegisteredFn(ctx, id)
}

type mockProductRegistration struct {
	registerFn func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	updateFn   func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockProductRegistration) Register(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.registerFn(ctx, product)
}

func (m *mockProductRegistration) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.updateFn(ctx, product)
}

func (m *mockProductRegistration) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockProductSearch struct {
	searchFn       func(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Product], error)
	searchByIDFn   func(ctx context.Context, id string) (*domain.Product, error)
	searchByCodeFn func(ctx context.Context, code string) (*domain.Product, error)
	isRegisteredFn func(ctx context.Context, id string) bool
}

func (m *mockProductSearch) Search(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Product], error) {
	return m.searchFn(ctx, req)
}

func (m *mockProductSearch) SearchByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.searchByIDFn(ctx, id)
}

func (m *mockProductSearch) SearchByCode(ctx context.Context, code string) (*domain.Product, error) {
	return m.searchByCodeFn(ctx, code)
}

func (m *mockProductSearch) IsRegistered(ctx context.Context, id string) bool {
	return m.isRegisteredFn(ctx, id)
}
