package storage_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/internal/gymstats/workouts"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Docker backed store tests run only with WORKOUTS_DOCKER_TESTS=true.
func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()
	if os.Getenv("WORKOUTS_DOCKER_TESTS") != "true" {
		t.Skip("WORKOUTS_DOCKER_TESTS not set, skipping docker backed test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())
	pool.MaxWait = time.Minute
	return pool
}

func runContainer(t *testing.T, pool *dockertest.Pool, opts *dockertest.RunOptions) *dockertest.Resource {
	t.Helper()
	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	return resource
}

func TestPostgresStore(t *testing.T) {
	pool := newDockerPool(t)
	resource := runContainer(t, pool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=workouts",
		},
	})

	ctx := context.Background()
	var store *storage.PostgresStore
	require.NoError(t, pool.Retry(func() error {
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     "localhost",
			DBPort:     resource.GetPort("5432/tcp"),
			DBUser:     "postgres",
			DBPassword: "postgres",
			DBName:     "workouts",
		})
		if err != nil {
			return err
		}
		if err := dbPool.Ping(ctx); err != nil {
			dbPool.Close()
			return err
		}
		store = storage.NewPostgresStore(dbPool)
		return nil
	}))
	defer store.Close()

	require.NoError(t, store.EnsureSchema(ctx))
	// idempotent
	require.NoError(t, store.EnsureSchema(ctx))

	testStoreContract(t, store)
	testRepoOverStore(t, store)
}

func TestMongoStore(t *testing.T) {
	pool := newDockerPool(t)
	resource := runContainer(t, pool, &dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	})

	ctx := context.Background()
	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	var store *storage.MongoStore
	require.NoError(t, pool.Retry(func() error {
		var err error
		store, err = storage.NewMongoStore(ctx, uri, "workouts_test")
		return err
	}))
	defer store.Close()

	testStoreContract(t, store)
	testRepoOverStore(t, store)
}

func testRepoOverStore(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()
	repo := storage.NewRepo(store)

	exercises, err := repo.GetExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, exercises, 21)

	require.NoError(t, repo.SaveWorkouts(ctx, testWorkouts()))
	got, err := repo.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, testWorkouts(), got)

	records := workouts.SortedRecords(workouts.PersonalRecords(got))
	require.NoError(t, repo.SaveRecords(ctx, records))
	gotRecords, err := repo.GetRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, gotRecords)
}
