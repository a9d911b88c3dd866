package app

import (
	"context"
	"time"

	config "github.com/DRSN-tech/online-sales/internal/cfg"
	v1Grpc "github.com/DRSN-tech/online-sales/internal/delivery/v1/grpc"
	"github.com/DRSN-tech/online-sales/internal/repository/mongodb"
	mongoConv "github.com/DRSN-tech/online-sales/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/online-sales/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/online-sales/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/clients"
	"github.com/DRSN-tech/online-sales/pkg/closer"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/jitter"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/DRSN-tech/online-sales/pkg/postgres"
	"github.com/jimlawless/whereami"
)

// storage — репозитории выбранного драйвера и проверка его доступности.
type storage struct {
	pinger   v1Grpc.Pinger
	clients  usecase.ClientRepository
	products usecase.ProductRepository

	// prepare создаёт индексы или применяет миграции для сервиса
	prepare func(ctx context.Context, service string) error
}

func retryPolicy(cfg *config.StorageCfg) jitter.Policy {
	return jitter.Policy{
		Attempts: cfg.ConnectRetries,
		Base:     500 * time.Millisecond,
		Max:      5 * time.Second,
	}
}

func initStorage(ctx context.Context, cfg *config.Config, log logger.Logger, c *closer.Closer) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		return initMongo(ctx, cfg, log, c)
	case config.StoragePostgres:
		return initPGDB(ctx, cfg, log, c)
	default:
		return nil, e.Wrap(cfg.Storage.Driver, e.ErrUnknownStorageDriver)
	}
}

func initMongo(ctx context.Context, cfg *config.Config, log logger.Logger, c *closer.Closer) (*storage, error) {
	client, err := clients.NewMongoClient(ctx, cfg.Mongo, retryPolicy(cfg.Storage), log)
	if err != nil {
		log.Errorf(err, "failed to connect to mongodb")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add("mongodb", client.Close)
	log.Infof("connected to mongodb, database %s", cfg.Mongo.Database)

	clientRepo := mongodb.NewClientRepo(
		client.Database.Collection(mongodb.ClientCollection),
		mongoConv.NewClientConverterImpl(),
	)
	productRepo := mongodb.NewProductRepo(
		client.Database.Collection(mongodb.ProductCollection),
		mongoConv.NewProductConverterImpl(),
	)

	return &storage{
		pinger:   client,
		clients:  clientRepo,
		products: productRepo,
		prepare: func(ctx context.Context, service string) error {
			if service == ClientService {
				return clientRepo.EnsureIndexes(ctx)
			}
			return productRepo.EnsureIndexes(ctx)
		},
	}, nil
}

func initPGDB(ctx context.Context, cfg *config.Config, log logger.Logger, c *closer.Closer) (*storage, error) {
	db, err := postgres.Connect(ctx, cfg.Db, retryPolicy(cfg.Storage), log)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add("postgres", db.Close)
	log.Infof("connected to postgres %s:%s/%s", cfg.Db.Host, cfg.Db.Port, cfg.Db.DBName)

	return &storage{
		pinger:   db,
		clients:  pgdb.NewClientRepo(db.Pool, pgdbConv.NewClientConverterImpl()),
		products: pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverterImpl()),
		prepare: func(ctx context.Context, _ string) error {
			if err := db.RunMigrations(log); err != nil {
				log.Errorf(err, "failed to run migrations")
				return err
			}
			return nil
		},
	}, nil
}
