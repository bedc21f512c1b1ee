package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/internal/gymstats/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkouts() []workouts.Workout {
	bench := workouts.Exercise{ID: "1", Name: "Bench Press", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Barbell"}
	return []workouts.Workout{
		{
			ID:       "w1",
			Date:     "2024-01-07",
			Name:     "Push Day",
			Duration: 60,
			Notes:    "felt strong",
			Exercises: []workouts.WorkoutExercise{
				{
					ID:         "we1",
					ExerciseID: "1",
					Exercise:   bench,
					Notes:      "paused reps",
					Sets: []workouts.Set{
						{ID: "s1", Reps: 10, Weight: 60, RestTime: 90},
						{ID: "s2", Reps: 8, Weight: 62.5},
					},
				},
			},
		},
	}
}

func TestRepo_RoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepo(storage.NewMemoryStore())

	list := testWorkouts()
	require.NoError(t, repo.SaveWorkouts(ctx, list))
	gotWorkouts, err := repo.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, gotWorkouts)

	exercises := []workouts.Exercise{{ID: "x", Name: "Farmer Walk", MuscleGroup: workouts.MuscleGroupCore, Instructions: "walk"}}
	require.NoError(t, repo.SaveExercises(ctx, exercises))
	gotExercises, err := repo.GetExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, exercises, gotExercises)

	goals := []workouts.WeeklyGoal{{ID: "g1", Week: "2024-02", TargetWorkouts: 3, TargetVolume: 5000, CompletedWorkouts: 1, CompletedVolume: 1100}}
	require.NoError(t, repo.SaveGoals(ctx, goals))
	gotGoals, err := repo.GetGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, goals, gotGoals)

	records := []workouts.PersonalRecord{{ExerciseID: "1", ExerciseName: "Bench Press", Weight: 62.5, Reps: 8, Date: "2024-01-07"}}
	require.NoError(t, repo.SaveRecords(ctx, records))
	gotRecords, err := repo.GetRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, gotRecords)
}

func TestRepo_MissingCollections(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepo(storage.NewMemoryStore())

	gotWorkouts, err := repo.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, gotWorkouts)
	assert.Empty(t, gotWorkouts)

	gotGoals, err := repo.GetGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotGoals)

	gotRecords, err := repo.GetRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotRecords)
}

func TestRepo_ExercisesSeed(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepo(storage.NewMemoryStore())

	exercises, err := repo.GetExercises(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 21)
	assert.Equal(t, workouts.Exercise{ID: "1", Name: "Bench Press", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Barbell"}, exercises[0])
	assert.Equal(t, "Russian Twists", exercises[20].Name)

	ids := make(map[string]bool)
	for _, e := range exercises {
		assert.True(t, e.MuscleGroup.Valid(), e.Name)
		assert.False(t, ids[e.ID], "duplicate id %s", e.ID)
		ids[e.ID] = true
	}

	// callers cannot corrupt the seed
	exercises[0].Name = "changed"
	again, err := repo.GetExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", again[0].Name)
}

func TestRepo_EmptyLibraryIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepo(storage.NewMemoryStore())

	require.NoError(t, repo.SaveExercises(ctx, nil))
	exercises, err := repo.GetExercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestRepo_CorruptState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := storage.NewRepo(store)

	for _, key := range storage.AllKeys {
		require.NoError(t, store.Set(ctx, key, []byte(`{not json`)))
	}

	_, err := repo.GetWorkouts(ctx)
	assert.ErrorIs(t, err, storage.ErrCorruptState)
	_, err = repo.GetExercises(ctx)
	assert.ErrorIs(t, err, storage.ErrCorruptState)
	_, err = repo.GetGoals(ctx)
	assert.ErrorIs(t, err, storage.ErrCorruptState)
	_, err = repo.GetRecords(ctx)
	assert.ErrorIs(t, err, storage.ErrCorruptState)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func (failingStore) Close() error { return nil }

func TestRepo_StoreErrors(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepo(failingStore{})

	_, err := repo.GetWorkouts(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrCorruptState))
	assert.Contains(t, err.Error(), "connection refused")

	assert.Error(t, repo.SaveGoals(ctx, nil))
}

func TestRepo_OverDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := storage.NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, storage.NewRepo(store).SaveWorkouts(ctx, testWorkouts()))

	// a fresh store over the same dir sees the persisted state
	reopened, err := storage.NewDiskStore(dir)
	require.NoError(t, err)
	got, err := storage.NewRepo(reopened).GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, testWorkouts(), got)
}
