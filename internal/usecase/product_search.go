package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
)

// ProductSearch реализует поиск товаров.
type ProductSearch struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewProductSearch(productRepo ProductRepository, logger logger.Logger) *ProductSearch {
	return &ProductSearch{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Search возвращает страницу товаров.
func (p *ProductSearch) Search(ctx context.Context, req PageRequest) (*Page[domain.Product], error) {
	const op = "ProductSearch.Search"

	req = req.Normalize()
	if err := req.CheckOffset(); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := req.CheckSort(domain.ProductSortFields); err != nil {
		return nil, e.Wrap(op, err)
	}

	page, err := p.productRepo.FindAll(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return page, nil
}

func (p *ProductSearch) SearchByID(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductSearch.SearchByID"

	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ProductEntity, "id", id)
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (p *ProductSearch) SearchByCode(ctx context.Context, code string) (*domain.Product, error) {
	const op = "ProductSearch.SearchByCode"

	product, err := p.productRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NewNotFoundError(domain.ProductEntity, domain.ProductKeyName, code)
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// IsRegistered никогда не возвращает ошибку: сбой хранилища логируется и трактуется как false.
func (p *ProductSearch) IsRegistered(ctx context.Context, id string) bool {
	const op = "ProductSearch.IsRegistered"

	_, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			p.logger.Warnf("failed to check product registration: %v", e.Wrap(op, err))
		}
		return false
	}

	return true
}
