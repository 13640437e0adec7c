// Package testinfra starts throwaway database servers for integration tests.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	PostgresImage    = "postgres:16-alpine"
	PostgresUser     = "msgetl"
	PostgresPassword = "msgetl"
	PostgresDB       = "msgetl"

	// ConnEnvVar names an existing server to use instead of a container.
	ConnEnvVar = "MSGETL_TEST_CONN"
)

type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnString string
}

// StartPostgres runs a disposable PostgreSQL container and returns once it
// accepts connections.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	ctr, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &PostgresContainer{PostgresContainer: ctr, ConnString: connStr}, nil
}

// PostgresConnString returns the server named by MSGETL_TEST_CONN, or starts
// a container when the variable is unset. The returned stop func is never nil.
func PostgresConnString(ctx context.Context) (string, func(), error) {
	if conn := os.Getenv(ConnEnvVar); conn != "" {
		return conn, func() {}, nil
	}

	ctr, err := StartPostgres(ctx)
	if err != nil {
		return "", func() {}, err
	}
	return ctr.ConnString, func() { ctr.Terminate(context.Background()) }, nil //nolint:errcheck
}
