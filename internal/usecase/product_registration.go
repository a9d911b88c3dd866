package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
)

// ProductRegistration реализует регистрацию, обновление и удаление товаров.
type ProductRegistration struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewProductRegistration(productRepo ProductRepository, logger logger.Logger) *ProductRegistration {
	return &ProductRegistration{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Register сохраняет новый товар. Уникальность code проверяет хранилище.
func (p *ProductRegistration) Register(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const op = "ProductRegistration.Register"

	// id назначает хранилище, запись вызывающего не меняем
	input := *product
	input.ID = ""
	created, err := p.productRepo.Insert(ctx, &input)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Debugf("product registered: id=%s", created.ID)
	return created, nil
}

// Update ищет товар по code (не по id) и переносит в него изменяемые поля.
func (p *ProductRegistration) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const op = "ProductRegistration.Update"

	existing, err := p.productRepo.FindByCode(ctx, product.Code)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ProductEntity, domain.ProductKeyName, product.Code)
		}
		return nil, e.Wrap(op, err)
	}

	existing.ApplyChanges(product)

	updated, err := p.productRepo.Save(ctx, existing)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет товар по id. Отсутствие товара ошибкой не считается.
func (p *ProductRegistration) Delete(ctx context.Context, id string) error {
	const op = "ProductRegistration.Delete"

	if err := p.productRepo.DeleteByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
