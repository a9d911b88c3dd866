package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
)

// memClientRepo — хранилище клиентов в памяти с уникальностью cpf и email.
type memClientRepo struct {
	mu      sync.Mutex
	seq     int
	clients map[string]domain.Client

	// findErr подменяет ответ FindByID/FindByCPF, если задан
	findErr error
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[string]domain.Client)}
}

func (m *memClientRepo) conflicts(c *domain.Client) bool {
	for id, existing := range m.clients {
		if id == c.ID {
			continue
		}
		if existing.CPF == c.CPF || existing.Email == c.Email {
			return true
		}
	}
	return false
}

func (m *memClientRepo) Insert(_ context.Context, client *domain.Client) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conflicts(client) {
		return nil, e.ErrDuplicateKey
	}

	m.seq++
	stored := *client
	stored.ID = fmt.Sprintf("id-%d", m.seq)
	m.clients[stored.ID] = stored
	return &stored, nil
}

func (m *memClientRepo) Save(_ context.Context, client *domain.Client) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conflicts(client) {
		return nil, e.ErrDuplicateKey
	}

	stored := *client
	m.clients[stored.ID] = stored
	return &stored, nil
}

func (m *memClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	client, ok := m.clients[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &client, nil
}

func (m *memClientRepo) FindByCPF(_ context.Context, cpf string) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, client := range m.clients {
		if client.CPF == cpf {
			c := client
			return &c, nil
		}
	}
	return nil, e.ErrNotFound
}

func (m *memClientRepo) FindAll(_ context.Context, req PageRequest) (*Page[domain.Client], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content := make([]domain.Client, 0, len(m.clients))
	for _, client := range m.clients {
		content = append(content, client)
	}
	return NewPage(content, req, int64(len(m.clients))), nil
}

func (m *memClientRepo) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.clients, id)
	return nil
}

// mockProductRepo — мок с функциональными полями для точечных сценариев.
type mockProductRepo struct {
	insertFn     func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	saveFn       func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Product, error)
	findByCodeFn func(ctx context.Context, code string) (*domain.Product, error)
	findAllFn    func(ctx context.Context, req PageRequest) (*Page[domain.Product], error)
	deleteByIDFn func(ctx context.Context, id string) error
}

func (m *mockProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.insertFn(ctx, product)
}

func (m *mockProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.saveFn(ctx, product)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockProductRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	return m.findByCodeFn(ctx, code)
}

func (m *mockProductRepo) FindAll(ctx context.Context, req PageRequest) (*Page[domain.Product], error) {
	return m.findAllFn(ctx, req)
}

func (m *mockProductRepo) DeleteByID(ctx context.Context, id string) error {
	return m.deleteByIDFn(ctx, id)
}
