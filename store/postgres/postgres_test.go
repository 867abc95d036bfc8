package postgres_test

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pkg/errors"

	"github.com/meridianhq/meridian/store/postgres"
)

const (
	pgHost     = "localhost"
	pgUser     = "test_user"
	pgPassword = "test_pass"
	pgName     = "test_db"
)

// newTestClient boots a throwaway postgres container, connects to it
// and applies migrations. Callers own the returned pool and resource
// and purge them through purgeDocker when done.
func newTestClient() (*postgres.Client, *dockertest.Pool, *dockertest.Resource, error) {
	opts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgName,
		},
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not create dockertest pool")
	}

	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not start resource")
	}

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not parse external port of container")
	}

	// Tell docker to hard kill the container in 120 seconds
	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	// exponential backoff-retry, because the application in the container
	// might not be ready to accept connections yet
	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", fmt.Sprintf(
			"dbname=%s user=%s password='%s' host=%s port=%d sslmode=disable",
			pgName, pgUser, pgPassword, pgHost, port,
		))
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Ping()
	}); err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not connect to docker")
	}

	cfg := postgres.Config{
		Host:     pgHost,
		Port:     port,
		Name:     pgName,
		User:     pgUser,
		Password: pgPassword,
		SSLMode:  "disable",
	}
	client, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := client.Migrate(cfg); err != nil {
		return nil, nil, nil, err
	}

	return client, pool, resource, nil
}

func purgeDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return errors.Wrap(err, "could not purge resource")
	}
	return nil
}
