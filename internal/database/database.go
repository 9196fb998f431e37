package database

import (
	"context"
	"fmt"
	"time"

	"hospital-records-service/internal/config"
	"hospital-records-service/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the record store selected by STORE_DRIVER and verifies it is reachable.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return connectMongo(ctx, cfg, log)
	case config.DriverMySQL, config.DriverPostgres:
		return connectSQL(ctx, cfg, log)
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory record store, records are lost on restart")
		return repository.NewMemoryStore().Store(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func connectMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetTimeout(cfg.Store.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("Successfully connected to MongoDB")

	return repository.NewMongoStore(client, client.Database(cfg.Mongo.Database)), nil
}

func connectSQL(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.Store, error) {
	dialector, err := sqlDialector(cfg)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Store.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Store.Driver, err)
	}

	log.Info().Str("driver", cfg.Store.Driver).Str("database", cfg.Database.Database).Msg("Successfully connected to database")

	return repository.NewGormStore(db), nil
}

func sqlDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Store.Driver {
	case config.DriverMySQL:
		return mysql.Open(MySQLDSN(cfg)), nil
	case config.DriverPostgres:
		return postgres.Open(PostgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("%q is not a SQL driver", cfg.Store.Driver)
	}
}

func MySQLDSN(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)
}

func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.SSLMode,
	)
}
