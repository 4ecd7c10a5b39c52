package testutils

import (
	"errors"
	"fmt"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint: revive // Required for migrations
)

const (
	dbName     = "wallet_test"
	dbUsername = "walletuser"
	dbPassword = "walletpass"
)

func RunAndMigratePostgresql(pool *dockertest.Pool, port, migrationTable, migrationsPath string) (*dockertest.Resource, string, error) {
	resource, dbInfo, err := RunPostgresql(pool, port)
	if err != nil {
		return nil, "", fmt.Errorf("failed to run postgresql: %v", err)
	}

	err = MigrateUp(migrationTable, migrationsPath, dbInfo)
	if err != nil {
		pErr := pool.Purge(resource)
		if pErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to purge pool: %v", pErr))
		}
		return nil, "", fmt.Errorf("failed to run migration: %v", err)
	}

	return resource, dbInfo, nil
}

func RunPostgresql(pool *dockertest.Pool, port string) (*dockertest.Resource, string, error) {
	opts := containerOptions("postgres", "15.4", "5432", port)
	opts.Env = []string{
		fmt.Sprintf("POSTGRES_PASSWORD=%s", dbPassword),
		fmt.Sprintf("POSTGRES_USER=%s", dbUsername),
		fmt.Sprintf("POSTGRES_DB=%s", dbName),
	}

	resource, err := run(pool, opts, map[string]string{"/var/lib/postgresql/data": ""})
	if err != nil {
		return nil, "", err
	}

	dbInfo := fmt.Sprintf("host=localhost port=%s user=%s password=%s dbname=%s sslmode=disable", resource.GetPort("5432/tcp"), dbUsername, dbPassword, dbName)
	return resource, dbInfo, nil
}

// RunNats starts a nats server and returns its client url.
func RunNats(pool *dockertest.Pool, port, name string, cmds ...string) (*dockertest.Resource, string, error) {
	opts := containerOptions("nats", "2.10.10", "4222", port)
	opts.Name = name
	opts.Cmd = cmds

	resource, err := run(pool, opts, nil)
	if err != nil {
		return nil, "", err
	}

	return resource, fmt.Sprintf("nats://localhost:%s", resource.GetPort("4222/tcp")), nil
}

func containerOptions(repository, tag, containerPort, hostPort string) *dockertest.RunOptions {
	return &dockertest.RunOptions{
		Repository:   repository,
		Tag:          tag,
		ExposedPorts: []string{containerPort},
		PortBindings: map[docker.Port][]docker.PortBinding{
			docker.Port(containerPort): {{HostIP: "0.0.0.0", HostPort: hostPort}},
		},
	}
}

func run(pool *dockertest.Pool, opts *dockertest.RunOptions, tmpfs map[string]string) (*dockertest.Resource, error) {
	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		// removed by docker once stopped
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		config.Tmpfs = tmpfs
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s container: %v", opts.Repository, err)
	}

	return resource, nil
}
