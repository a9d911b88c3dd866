package cfg

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/spf13/viper"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type Config struct {
	App     *AppCfg
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Storage *StorageCfg
	Mongo   *MongoCfg
	Db      *PGDBCfg
}

type AppCfg struct {
	Name     string // Имя сервиса: client-service или product-service
	Env      string
	Version  string
	LogLevel string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type GRPCConfig struct {
	Port                string
	NetworkMode         string
	HealthCheckInterval time.Duration
}

type StorageCfg struct {
	Driver         string // mongo | postgres
	ConnectRetries int    // Количество попыток подключения к хранилищу при старте
}

type MongoCfg struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type PGDBCfg struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsURL string // Источник миграций golang-migrate
}

// Load безопасно загружает конфигурацию из переменных окружения и возвращает ошибку в случае неудачи.
func Load(log logger.Logger, service string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	app := loadAppCfg(v, service)

	http, err := loadHTTPConfig(v, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpc, err := loadGRPCConfig(v, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage, err := loadStorageCfg(v, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		App:     app,
		Http:    http,
		Grpc:    grpc,
		Storage: storage,
	}

	switch storage.Driver {
	case StorageMongo:
		cfg.Mongo, err = loadMongoCfg(v, log)
	case StoragePostgres:
		cfg.Db, err = loadPGDBCfg(v, log)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cfg, nil
}

func loadAppCfg(v *viper.Viper, service string) *AppCfg {
	const (
		defaultEnv      = "dev"
		defaultVersion  = "1.0.0"
		defaultLogLevel = "info"
	)

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("APP_VERSION", defaultVersion)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	return &AppCfg{
		Name:     service,
		Env:      v.GetString("APP_ENV"),
		Version:  v.GetString("APP_VERSION"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}

func loadHTTPConfig(v *viper.Viper, log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	v.SetDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDuration(v, "HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDuration(v, "HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDuration(v, "KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         v.GetString("HTTP_PORT"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGRPCConfig(v *viper.Viper, log logger.Logger) (*GRPCConfig, error) {
	const (
		defaultPort                = "8091"
		defaultNetworkMode         = "tcp"
		defaultHealthCheckInterval = 15 * time.Second
	)

	v.SetDefault("GRPC_PORT", defaultPort)
	v.SetDefault("GRPC_NETWORK_MODE", defaultNetworkMode)

	interval, err := parseDuration(v, "HEALTH_CHECK_INTERVAL", defaultHealthCheckInterval)
	if err != nil {
		log.Errorf(err, "invalid HEALTH_CHECK_INTERVAL")
		return nil, err
	}
	// Интервал используется для тикера и таймаута проверки, оба требуют > 0
	if interval <= 0 {
		err := e.Wrap("HEALTH_CHECK_INTERVAL must be positive", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid HEALTH_CHECK_INTERVAL")
		return nil, err
	}

	return &GRPCConfig{
		Port:                v.GetString("GRPC_PORT"),
		NetworkMode:         v.GetString("GRPC_NETWORK_MODE"),
		HealthCheckInterval: interval,
	}, nil
}

func loadStorageCfg(v *viper.Viper, log logger.Logger) (*StorageCfg, error) {
	const (
		defaultDriver         = StorageMongo
		defaultConnectRetries = 5
	)

	v.SetDefault("STORAGE_DRIVER", defaultDriver)

	driver := strings.ToLower(v.GetString("STORAGE_DRIVER"))
	if driver != StorageMongo && driver != StoragePostgres {
		err := e.Wrap(driver, e.ErrUnknownStorageDriver)
		log.Errorf(err, "invalid STORAGE_DRIVER")
		return nil, err
	}

	retries, err := parseInt(v, "STORAGE_CONNECT_RETRIES", defaultConnectRetries)
	if err != nil {
		log.Errorf(err, "invalid STORAGE_CONNECT_RETRIES")
		return nil, err
	}

	return &StorageCfg{
		Driver:         driver,
		ConnectRetries: retries,
	}, nil
}

func loadMongoCfg(v *viper.Viper, log logger.Logger) (*MongoCfg, error) {
	const (
		defaultURI            = "mongodb://localhost:27017"
		defaultDatabase       = "online-sales"
		defaultConnectTimeout = 10 * time.Second
	)

	v.SetDefault("MONGO_URI", defaultURI)
	v.SetDefault("MONGO_DATABASE", defaultDatabase)

	connectTimeout, err := parseDuration(v, "MONGO_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid MONGO_CONNECT_TIMEOUT")
		return nil, err
	}

	return &MongoCfg{
		URI:            v.GetString("MONGO_URI"),
		Database:       v.GetString("MONGO_DATABASE"),
		ConnectTimeout: connectTimeout,
	}, nil
}

func loadPGDBCfg(v *viper.Viper, log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
		defaultMigrate = "file://db/migrations"
	)

	v.SetDefault("POSTGRES_HOST", defaultHost)
	v.SetDefault("POSTGRES_PORT", defaultPort)
	v.SetDefault("SSL_MODE", defaultSSLMode)
	v.SetDefault("POSTGRES_MIGRATIONS_URL", defaultMigrate)

	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
		if v.GetString(key) == "" {
			err := fmt.Errorf("%s is required", key)
			log.Errorf(err, "missing %s", key)
			return nil, err
		}
	}

	return &PGDBCfg{
		Host:          v.GetString("POSTGRES_HOST"),
		Port:          v.GetString("POSTGRES_PORT"),
		User:          v.GetString("POSTGRES_USER"),
		Password:      v.GetString("POSTGRES_PASSWORD"),
		DBName:        v.GetString("POSTGRES_DB"),
		SSLMode:       v.GetString("SSL_MODE"),
		MigrationsURL: v.GetString("POSTGRES_MIGRATIONS_URL"),
	}, nil
}

// parseDuration считывает длительность или возвращает значение по умолчанию.
func parseDuration(v *viper.Viper, key string, defaultValue time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return d, nil
}

func parseInt(v *viper.Viper, key string, defaultValue int) (int, error) {
	raw := v.GetString(key)
	if raw == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return n, nil
}
