package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
)

// ClientRegistration реализует регистрацию, обновление и удаление клиентов.
type ClientRegistration struct {
	clientRepo ClientRepository
	logger     logger.Logger
}

func NewClientRegistration(clientRepo ClientRepository, logger logger.Logger) *ClientRegistration {
	return &ClientRegistration{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Register сохраняет нового клиента. Уникальность cpf и email проверяет хранилище.
func (c *ClientRegistration) Register(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	const op = "ClientRegistration.Register"

	// id назначает хранилище, запись вызывающего не меняем
	input := *client
	input.ID = ""
	created, err := c.clientRepo.Insert(ctx, &input)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("client registered: id=%s", created.ID)
	return created, nil
}

// Update ищет клиента по cpf (не по id) и переносит в него изменяемые поля.
func (c *ClientRegistration) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	const op = "ClientRegistration.Update"

	existing, err := c.clientRepo.FindByCPF(ctx, client.CPF)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ClientEntity, domain.ClientKeyName, client.CPF)
		}
		return nil, e.Wrap(op, err)
	}

	existing.ApplyChanges(client)

	updated, err := c.clientRepo.Save(ctx, existing)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет клиента по id. Отсутствие клиента ошибкой не считается.
func (c *ClientRegistration) Delete(ctx context.Context, id string) error {
	const op = "ClientRegistration.Delete"

	if err := c.clientRepo.DeleteByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
