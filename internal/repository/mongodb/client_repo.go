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

// ClientRepo реализует репозиторий клиентов поверх коллекции MongoDB.
type ClientRepo struct {
	coll *mongo.Collection
	conv converter.ClientConverter
}

func NewClientRepo(coll *mongo.Collection, conv converter.ClientConverter) *ClientRepo {
	return &ClientRepo{
		coll: coll,
		conv: conv,
	}
}

// EnsureIndexes создаёт уникальные индексы по cpf и email.
func (c *ClientRepo) EnsureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueIndex("cpf"),
		uniqueIndex("email"),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Insert добавляет нового клиента с новым ObjectID.
func (c *ClientRepo) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	doc, err := c.conv.ToDocument(client)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	doc.ID = primitive.NewObjectID()

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(doc), nil
}

// Save заменяет документ с тем же _id или создаёт его.
func (c *ClientRepo) Save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	doc, err := c.conv.ToDocument(client)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	_, err = c.coll.ReplaceOne(ctx, bson.M{idField: doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(doc), nil
}

func (c *ClientRepo) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := converter.ConvertID(id)
	if err != nil || oid.IsZero() {
		return nil, e.ErrNotFound
	}

	return c.findOne(ctx, bson.M{idField: oid})
}

func (c *ClientRepo) FindByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	return c.findOne(ctx, bson.M{"cpf": cpf})
}

// FindAll возвращает страницу клиентов и общее количество документов.
func (c *ClientRepo) FindAll(ctx context.Context, req usecase.PageRequest) (*usecase.Page[domain.Client], error) {
	total, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cursor, err := c.coll.Find(ctx, bson.D{}, findPageOptions(req))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	var docs []converter.ClientDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	clients := make([]domain.Client, 0, len(docs))
	for i := range docs {
		clients = append(clients, *c.conv.ToEntity(&docs[i]))
	}

	return usecase.NewPage(clients, req, total), nil
}

// DeleteByID удаляет клиента. Некорректный или несуществующий id — не ошибка.
func (c *ClientRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := converter.ConvertID(id)
	if err != nil || oid.IsZero() {
		return nil
	}

	if _, err := c.coll.DeleteOne(ctx, bson.M{idField: oid}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ClientRepo) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	var doc converter.ClientDocument
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapError(err))
	}

	return c.conv.ToEntity(&doc), nil
}
