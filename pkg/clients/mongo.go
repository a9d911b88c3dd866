package clients

import (
	"context"
	"time"

	"github.com/DRSN-tech/online-sales/internal/cfg"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/jitter"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoClient подключается к MongoDB и ждёт ответа primary, повторяя Ping по политике retry.
func NewMongoClient(ctx context.Context, cfg *cfg.MongoCfg, retry jitter.Policy, log logger.Logger) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	m := &MongoClient{
		Client:   client,
		Database: client.Database(cfg.Database),
	}

	err = jitter.Retry(ctx, retry, m.Ping, func(attempt int, wait time.Duration, err error) {
		log.Warnf("mongodb is not reachable, retrying in %v (attempt %d): %v", wait, attempt, err)
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m, nil
}

func (m *MongoClient) Ping(ctx context.Context) error {
	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (m *MongoClient) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
