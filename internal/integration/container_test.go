package integration_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type MongoContainer struct {
	Container        *mongodb.MongoDBContainer
	ConnectionString string
}

type RedisContainer struct {
	Container        *tcredis.RedisContainer
	ConnectionString string
}

func getDbContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, dbImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start DB container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	dbContainer := &MongoContainer{
		Container:        container,
		ConnectionString: connStr,
	}

	return dbContainer, nil
}

func getCacheContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start cache container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf("%s:%s", host, port.Port())

	cacheContainer := &RedisContainer{
		Container:        container,
		ConnectionString: connStr,
	}

	return cacheContainer, nil
}
