package mongodb

import (
	"context"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepo реализует репозиторий товаров поверх коллекции MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
	conv converter.ProductConverter
}

func NewProductRepo(coll *mongo.Collection, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		coll: coll,
		conv: conv,
	}
}

// EnsureIndexes создаёт уникальный индекс по code.
func (p *ProductRepo) EnsureIndexes(ctx context.Context) error {
	if _, err := p.coll.Indexes().CreateOne(ctx, uniqueIndex("code")); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Insert добавляет новый товар с новым ObjectID.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc, err := p.conv.ToDocument(product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	doc.ID = primitive.NewObjectID()

	if _, err := p.coll.InsertOne(ctx, doc); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(doc)
}

// Save заменяет документ с тем же _id или создаёт его.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc, err := p.conv.ToDocument(product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	_, err = p.coll.ReplaceOne(ctx, bson.M{idField: doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(doc)
}

func (p *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := converter.ConvertID(id)
	if err != nil || oid.IsZero() {
		return nil, e.ErrNotFound
	}

	return p.findOne(ctx, bson.M{idField: oid})
}

func (p *ProductRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	return p.findOne(ctx, bson.M{"code": code})
}

// FindAll возвращает страницу товаров и общее количество документов.
func (p *ProductRepo) FindAll(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Product], error) {
	total, err := p.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cursor, err := p.coll.Find(ctx, bson.D{}, findPageOptions(req))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var docs []converter.ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(docs))
	for i := range docs {
		product, err := p.conv.ToEntity(&docs[i])
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		products = append(products, *product)
	}

	return usecase.NewPage(products, req, total), nil
}

// DeleteByID удаляет товар. Некорректный или несуществующий id — не ошибка.
func (p *ProductRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := converter.ConvertID(id)
	if err != nil || oid.IsZero() {
		return nil
	}

	if _, err := p.coll.DeleteOne(ctx, bson.M{idField: oid}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	var doc converter.ProductDocument
	if err := p.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return p.conv.ToEntity(&doc)
}
