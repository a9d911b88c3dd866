package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/online-sales/docs"
	config "github.com/DRSN-tech/online-sales/internal/cfg"
	v1Grpc "github.com/DRSN-tech/online-sales/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/online-sales/internal/delivery/v1/http"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/closer"
	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	ClientService  = "client-service"
	ProductService = "product-service"

	startupTimeout  = time.Minute
	shutdownTimeout = 10 * time.Second
)

var ErrUnknownService = errors.New("unknown service")

// App собирает один из двух сервисов: клиентов или товаров.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	service string

	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	health  *v1Grpc.HealthChecker
}

// NewApp подключает хранилище и собирает HTTP и gRPC серверы для service.
func NewApp(cfg *config.Config, log logger.Logger, service string) (*App, error) {
	if service != ClientService && service != ProductService {
		return nil, e.Wrap(service, ErrUnknownService)
	}

	a := &App{
		cfg:     cfg,
		logger:  log,
		service: service,
		closer:  closer.NewCloser(0),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := initStorage(ctx, cfg, log, a.closer)
	if err != nil {
		a.closeOnFailure()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := store.prepare(ctx, service); err != nil {
		a.closeOnFailure()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)

	switch service {
	case ClientService:
		docs.SwaggerInfoclient.Version = cfg.App.Version
		router.Init(docs.SwaggerInfoclient.InstanceName())
		router.InitClientRoutes(
			usecase.NewClientRegistration(store.clients, log),
			usecase.NewClientSearch(store.clients, log),
		)
	case ProductService:
		docs.SwaggerInfoproduct.Version = cfg.App.Version
		router.Init(docs.SwaggerInfoproduct.InstanceName())
		router.InitProductRoutes(
			usecase.NewProductRegistration(store.products, log),
			usecase.NewProductSearch(store.products, log),
		)
	}

	a.httpSrv = v1Http.NewServer(router.Handler(), cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.grpcSrv.RegisterServices()
	a.health = v1Grpc.NewHealthChecker(a.grpcSrv.Health(), store.pinger, service, cfg.Grpc.HealthCheckInterval, log)

	return a, nil
}

// Run запускает серверы и блокируется до сигнала остановки или падения одного из серверов.
func (a *App) Run() error {
	healthCtx, stopHealth := context.WithCancel(context.Background())
	go a.health.Run(healthCtx)
	a.closer.Add("health checker", func(ctx context.Context) error {
		stopHealth()
		return nil
	})

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	httpErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("%s HTTP server started on port %s", a.service, a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("received %s, stopping gracefully", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("application shutdown complete")
	return appErr
}

func (a *App) closeOnFailure() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "failed to release resources")
	}
}
