package converter

import (
	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/google/uuid"
)

type ClientConverter interface {
	ToModel(entity *domain.Client) (*ClientModel, error)
	ToEntity(model *ClientModel) *domain.Client
}

type ProductConverter interface {
	ToModel(entity *domain.Product) (*ProductModel, error)
	ToEntity(model *ProductModel) *domain.Product
}

type ClientConverterImpl struct{}

func NewClientConverterImpl() *ClientConverterImpl {
	return &ClientConverterImpl{}
}

func (c *ClientConverterImpl) ToModel(entity *domain.Client) (*ClientModel, error) {
	id, err := ParseID(entity.ID)
	if err != nil {
		return nil, err
	}

	return &ClientModel{
		ID:            id,
		Name:          entity.Name,
		CPF:           entity.CPF,
		Tel:           entity.Tel,
		Email:         entity.Email,
		Address:       entity.Address,
		AddressNumber: entity.AddressNumber,
		City:          entity.City,
		Estate:        entity.Estate,
	}, nil
}

func (c *ClientConverterImpl) ToEntity(model *ClientModel) *domain.Client {
	return &domain.Client{
		ID:            model.ID.String(),
		Name:          model.Name,
		CPF:           model.CPF,
		Tel:           model.Tel,
		Email:         model.Email,
		Address:       model.Address,
		AddressNumber: model.AddressNumber,
		City:          model.City,
		Estate:        model.Estate,
	}
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (p *ProductConverterImpl) ToModel(entity *domain.Product) (*ProductModel, error) {
	id, err := ParseID(entity.ID)
	if err != nil {
		return nil, err
	}

	var description *string
	if entity.Description != "" {
		description = &entity.Description
	}

	return &ProductModel{
		ID:          id,
		Code:        entity.Code,
		Name:        entity.Name,
		Description: description,
		Value:       entity.Value.Round(2),
	}, nil
}

func (p *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	product := &domain.Product{
		ID:    model.ID.String(),
		Code:  model.Code,
		Name:  model.Name,
		Value: domain.NewMoney(model.Value),
	}
	if model.Description != nil {
		product.Description = *model.Description
	}

	return product
}

// ParseID разбирает UUID. Пустая строка даёт uuid.Nil, некорректная строка трактуется как отсутствующая запись.
func ParseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, nil
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, e.Wrap(id, e.ErrNotFound)
	}

	return parsed, nil
}
