package converter

import (
	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientConverter преобразует Client между domain и документом MongoDB.
type ClientConverter interface {
	ToDocument(entity *domain.Client) (*ClientDocument, error)
	ToEntity(doc *ClientDocument) *domain.Client
}

// ProductConverter преобразует Product между domain и документом MongoDB.
type ProductConverter interface {
	ToDocument(entity *domain.Product) (*ProductDocument, error)
	ToEntity(doc *ProductDocument) (*domain.Product, error)
}

type ClientConverterImpl struct{}

func NewClientConverterImpl() *ClientConverterImpl {
	return &ClientConverterImpl{}
}

func (c *ClientConverterImpl) ToDocument(entity *domain.Client) (*ClientDocument, error) {
	id, err := ConvertID(entity.ID)
	if err != nil {
		return nil, err
	}

	return &ClientDocument{
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

func (c *ClientConverterImpl) ToEntity(doc *ClientDocument) *domain.Client {
	return &domain.Client{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		CPF:           doc.CPF,
		Tel:           doc.Tel,
		Email:         doc.Email,
		Address:       doc.Address,
		AddressNumber: doc.AddressNumber,
		City:          doc.City,
		Estate:        doc.Estate,
	}
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (p *ProductConverterImpl) ToDocument(entity *domain.Product) (*ProductDocument, error) {
	id, err := ConvertID(entity.ID)
	if err != nil {
		return nil, err
	}

	value, err := ConvertMoney(entity.Value)
	if err != nil {
		return nil, err
	}

	return &ProductDocument{
		ID:          id,
		Code:        entity.Code,
		Name:        entity.Name,
		Description: entity.Description,
		Value:       value,
	}, nil
}

func (p *ProductConverterImpl) ToEntity(doc *ProductDocument) (*domain.Product, error) {
	value, err := decimal.NewFromString(doc.Value.String())
	if err != nil {
		return nil, e.Wrap("ProductConverter.ToEntity", err)
	}

	return &domain.Product{
		ID:          doc.ID.Hex(),
		Code:        doc.Code,
		Name:        doc.Name,
		Description: doc.Description,
		Value:       domain.NewMoney(value),
	}, nil
}

// ConvertID переводит строковый идентификатор в ObjectID. Пустая строка даёт NilObjectID.
func ConvertID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, e.Wrap(id, e.ErrNotFound)
	}

	return oid, nil
}

// ConvertMoney хранит деньги в Decimal128 ровно с двумя знаками после запятой.
func ConvertMoney(m domain.Money) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(m.StringFixed(2))
	if err != nil {
		return primitive.Decimal128{}, e.Wrap("ConvertMoney", err)
	}

	return d, nil
}
