package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
)

// ClientSearch реализует поиск клиентов.
type ClientSearch struct {
	clientRepo ClientRepository
	logger     logger.Logger
}

func NewClientSearch(clientRepo ClientRepository, logger logger.Logger) *ClientSearch {
	return &ClientSearch{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Search возвращает страницу клиентов.
func (c *ClientSearch) Search(ctx context.Context, req PageRequest) (*Page[domain.Client], error) {
	const op = "ClientSearch.Search"

	req = req.Normalize()
	if err := req.CheckOffset(); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := req.CheckSort(domain.ClientSortFields); err != nil {
		return nil, e.Wrap(op, err)
	}

	page, err := c.clientRepo.FindAll(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return page, nil
}

func (c *ClientSearch) SearchByID(ctx context.Context, id string) (*domain.Client, error) {
	const op = "ClientSearch.SearchByID"

	client, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ClientEntity, "id", id)
		}
		return nil, e.Wrap(op, err)
	}

	return client, nil
}

func (c *ClientSearch) SearchByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	const op = "ClientSearch.SearchByCPF"

	client, err := c.clientRepo.FindByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ClientEntity, domain.ClientKeyName, cpf)
		}
		return nil, e.Wrap(op, err)
	}

	return client, nil
}

// IsRegistered никогда не возвращает ошибку: сбой хранилища логируется и трактуется как false.
func (c *ClientSearch) IsRegistered(ctx context.Context, id string) bool {
	const op = "ClientSearch.IsRegistered"

	_, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			c.logger.Warnf("failed to check client registration: %v", e.Wrap(op, err))
		}
		return false
	}

	return true
}
