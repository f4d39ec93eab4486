package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seasfinance/internal/repositories"
)

// OpenDataSource picks the persistence backend once at startup.
//
// "mysql" and "mongo" fail hard when the store is unreachable. "auto" tries
// MySQL, then Mongo, for whichever has a connection string, and falls back
// to the in-memory demo store with a warning.
func OpenDataSource(ctx context.Context, env Env, logger *zap.Logger) (repositories.DataSource, error) {
	switch env.DataSource {
	case DataSourceFixture:
		return repositories.NewDemoStore(), nil
	case DataSourceMySQL:
		return openMySQL(ctx, env.MySQLDSN)
	case DataSourceMongo:
		return openMongo(ctx, env.MongoURI, env.MongoDatabase)
	case DataSourceAuto, "":
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", env.DataSource)
	}

	if env.MySQLDSN != "" {
		ds, err := openMySQL(ctx, env.MySQLDSN)
		if err == nil {
			return ds, nil
		}
		logger.Warn("mysql unavailable", zap.Error(err))
	}
	if env.MongoURI != "" {
		ds, err := openMongo(ctx, env.MongoURI, env.MongoDatabase)
		if err == nil {
			return ds, nil
		}
		logger.Warn("mongo unavailable", zap.Error(err))
	}
	logger.Warn("no database reachable, serving in-memory demo data")
	return repositories.NewDemoStore(), nil
}

func openMySQL(ctx context.Context, dsn string) (repositories.DataSource, error) {
	if dsn == "" {
		return nil, fmt.Errorf("MYSQL_DSN is empty")
	}
	db, err := ConnectMySQL(ctx, dsn)
	if err != nil {
		return nil, err
	}
	store := repositories.NewMySQLStore(db)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate mysql: %w", err)
	}
	return store, nil
}

func openMongo(ctx context.Context, uri, database string) (repositories.DataSource, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is empty")
	}
	client, err := ConnectMongo(ctx, uri)
	if err != nil {
		return nil, err
	}
	store := repositories.NewMongoStore(client, client.Database(database))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return store, nil
}
