package converter

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClientDocument представляет документ коллекции client в MongoDB.
type ClientDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	CPF           string             `bson:"cpf"`
	Tel           *int64             `bson:"tel"`
	Email         string             `bson:"email"`
	Address       string             `bson:"address"`
	AddressNumber *int32             `bson:"addressNumber"`
	City          string             `bson:"city"`
	Estate        string             `bson:"estate"`
}

// ProductDocument представляет документ коллекции product в MongoDB.
type ProductDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Code        string               `bson:"code"`
	Name        string               `bson:"name"`
	Description string               `bson:"description,omitempty"`
	Value       primitive.Decimal128 `bson:"value"`
}
