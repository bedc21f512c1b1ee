package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	KeyWorkouts  = "workoutTracker_workouts"
	KeyExercises = "workoutTracker_exercises"
	KeyGoals     = "workoutTracker_goals"
	KeyRecords   = "workoutTracker_records"
)

var AllKeys = []string{KeyWorkouts, KeyExercises, KeyGoals, KeyRecords}

// Repo persists the four tracker collections, each as a single JSON
// document. Missing collections read as empty, except the exercise library
// which falls back to the built-in seed.
type Repo struct {
	store Store
}

func NewRepo(store Store) *Repo {
	return &Repo{
		store: store,
	}
}

func (r *Repo) GetWorkouts(ctx context.Context) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, _, err := load[workouts.Workout](ctx, r.store, KeyWorkouts)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("workouts.count", len(list)))
	return list, nil
}

func (r *Repo) SaveWorkouts(ctx context.Context, list []workouts.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workouts.count", len(list)))

	return save(ctx, r.store, KeyWorkouts, list)
}

func (r *Repo) GetExercises(ctx context.Context) (_ []workouts.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, found, err := load[workouts.Exercise](ctx, r.store, KeyExercises)
	if err != nil {
		return nil, err
	}
	if !found {
		span.SetAttributes(attribute.Bool("exercises.seed", true))
		return DefaultExercises(), nil
	}
	return list, nil
}

func (r *Repo) SaveExercises(ctx context.Context, list []workouts.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(list)))

	return save(ctx, r.store, KeyExercises, list)
}

func (r *Repo) GetGoals(ctx context.Context) (_ []workouts.WeeklyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, _, err := load[workouts.WeeklyGoal](ctx, r.store, KeyGoals)
	return list, err
}

func (r *Repo) SaveGoals(ctx context.Context, list []workouts.WeeklyGoal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return save(ctx, r.store, KeyGoals, list)
}

func (r *Repo) GetRecords(ctx context.Context) (_ []workouts.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, _, err := load[workouts.PersonalRecord](ctx, r.store, KeyRecords)
	return list, err
}

func (r *Repo) SaveRecords(ctx context.Context, list []workouts.PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return save(ctx, r.store, KeyRecords, list)
}

// load reports found=false and an empty list when the key was never written.
func load[T any](ctx context.Context, store Store, key string) ([]T, bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, false, nil
		}
		return nil, false, fmt.Errorf("get [%s]: %w", key, err)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, true, fmt.Errorf("%w [%s]: %w", ErrCorruptState, key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, true, nil
}

func save[T any](ctx context.Context, store Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set [%s]: %w", key, err)
	}
	return nil
}
