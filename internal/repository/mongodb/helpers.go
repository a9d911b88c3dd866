package mongodb

import (
	"errors"

	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ClientCollection  = "client"
	ProductCollection = "product"

	idField = "_id"
)

// mapError переводит ошибки драйвера в ошибки контракта репозитория.
func mapError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return e.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return e.Wrap(err.Error(), e.ErrDuplicateKey)
	default:
		return err
	}
}

// sortDocument строит документ сортировки. Поле "id" хранится как "_id";
// _id всегда добавляется последним, чтобы порядок страниц был стабильным.
func sortDocument(orders []usecase.SortOrder) bson.D {
	sort := make(bson.D, 0, len(orders)+1)
	hasID := false

	for _, order := range orders {
		field := order.Field
		if field == "id" {
			field = idField
			hasID = true
		}

		direction := 1
		if order.Desc {
			direction = -1
		}
		sort = append(sort, bson.E{Key: field, Value: direction})
	}

	if !hasID {
		sort = append(sort, bson.E{Key: idField, Value: 1})
	}

	return sort
}

func findPageOptions(req usecase.PageRequest) *options.FindOptions {
	return options.Find().
		SetSkip(req.Offset()).
		SetLimit(int64(req.Size)).
		SetSort(sortDocument(req.Sort))
}

func uniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(field + "_unique"),
	}
}
