package tests

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	SkipInfrastructureEnv = "SKIP_INFRASTRUCTURE"

	postgresImage    = "postgres:15-alpine"
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDatabase = "sales_data"
)

var postgresPort = nat.Port("5432/tcp")

// PostgresFixture runs a throwaway postgres container for integration tests.
// With SKIP_INFRASTRUCTURE=true the fixture uses the database behind the
// DATABASE_URL environment variable instead.
type PostgresFixture struct {
	container   testcontainers.Container
	databaseURL string
}

func NewPostgresFixture() *PostgresFixture {
	return &PostgresFixture{}
}

func (f *PostgresFixture) Start(ctx context.Context) error {
	if skip := os.Getenv(SkipInfrastructureEnv); skip == "true" {
		f.databaseURL = os.Getenv("DATABASE_URL")
		if f.databaseURL == "" {
			return fmt.Errorf("%s is set but DATABASE_URL is empty", SkipInfrastructureEnv)
		}
		return nil
	}

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDatabase,
		},
		WaitingFor: wait.ForSQL(postgresPort, "postgres", func(port nat.Port) string {
			return connectionString("localhost", port)
		}),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return err
	}
	f.container = container

	host, err := container.Host(ctx)
	if err != nil {
		return err
	}

	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return err
	}

	f.databaseURL = connectionString(host, port)
	return nil
}

func (f *PostgresFixture) Stop(ctx context.Context) error {
	if f.container == nil {
		return nil
	}

	return f.container.Terminate(ctx)
}

func (f *PostgresFixture) DatabaseURL() string {
	return f.databaseURL
}

func connectionString(host string, port nat.Port) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(postgresUser, postgresPassword),
		Host:     fmt.Sprintf("%s:%s", host, port.Port()),
		Path:     postgresDatabase,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
