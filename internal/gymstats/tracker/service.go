package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrMissingID        = errors.New("id not set")
)

const (
	DefaultTargetWorkouts = 3
	DefaultTargetVolume   = 5000
	dashboardTopRecords   = 3
	dashboardRecent       = 5
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type collectionsRepo interface {
	GetWorkouts(ctx context.Context) ([]workouts.Workout, error)
	SaveWorkouts(ctx context.Context, list []workouts.Workout) error
	GetExercises(ctx context.Context) ([]workouts.Exercise, error)
	SaveExercises(ctx context.Context, list []workouts.Exercise) error
	GetGoals(ctx context.Context) ([]workouts.WeeklyGoal, error)
	SaveGoals(ctx context.Context, list []workouts.WeeklyGoal) error
	GetRecords(ctx context.Context) ([]workouts.PersonalRecord, error)
	SaveRecords(ctx context.Context, list []workouts.PersonalRecord) error
}

// Service runs the tracker use cases on top of the persisted collections.
// Every mutation is a read-modify-write of a whole collection, serialized
// by a single mutex.
type Service struct {
	repo           collectionsRepo
	metricsManager *metrics.Manager
	mutex          sync.Mutex

	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewService(repo collectionsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
		NewIDFunc:      uuid.NewString,
	}
}

func (s *Service) today() string {
	return s.NowFunc().Format(workouts.DateLayout)
}

func (s *Service) Workouts(ctx context.Context) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetWorkouts(ctx)
}

func (s *Service) Workout(ctx context.Context, id string) (_ *workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrWorkoutNotFound
}

// SaveWorkout inserts the workout, or replaces the stored one with the same
// id. Missing ids and the date are filled in, exercise snapshots missing a
// name are copied from the library. Personal records are recomputed.
func (s *Service) SaveWorkout(ctx context.Context, workout workouts.Workout) (_ *workouts.Workout, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	saved, created, err := s.saveWorkout(ctx, workout, false)
	if err != nil {
		return nil, false, err
	}
	span.SetAttributes(
		attribute.String("workout.id", saved.ID),
		attribute.Bool("workout.created", created),
	)
	return saved, created, nil
}

// UpdateWorkout replaces an existing workout, ErrWorkoutNotFound otherwise.
func (s *Service) UpdateWorkout(ctx context.Context, workout workouts.Workout) (_ *workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	if workout.ID == "" {
		return nil, ErrMissingID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	saved, _, err := s.saveWorkout(ctx, workout, true)
	return saved, err
}

func (s *Service) saveWorkout(ctx context.Context, workout workouts.Workout, mustExist bool) (*workouts.Workout, bool, error) {
	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := -1
	if workout.ID != "" {
		idx = indexOf(list, func(w workouts.Workout) bool { return w.ID == workout.ID })
	}
	if idx < 0 && mustExist {
		return nil, false, ErrWorkoutNotFound
	}

	if err := s.prepareWorkout(ctx, &workout); err != nil {
		return nil, false, err
	}

	created := idx < 0
	if created {
		list = append(list, workout)
	} else {
		list[idx] = workout
	}

	if err := s.repo.SaveWorkouts(ctx, list); err != nil {
		return nil, false, err
	}
	if err := s.rebuildRecords(ctx, list); err != nil {
		return nil, false, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsSaved.Inc()
	}
	log.Debugf("workout [%s] saved, created: %t", workout.ID, created)

	return &workout, created, nil
}

func (s *Service) prepareWorkout(ctx context.Context, workout *workouts.Workout) error {
	if workout.ID == "" {
		workout.ID = s.NewIDFunc()
	}
	if workout.Date == "" {
		workout.Date = s.today()
	}

	var library []workouts.Exercise
	for i := range workout.Exercises {
		ex := &workout.Exercises[i]
		if ex.ID == "" {
			ex.ID = s.NewIDFunc()
		}
		if ex.ExerciseID == "" {
			ex.ExerciseID = ex.Exercise.ID
		}
		if ex.ExerciseID == "" {
			return fmt.Errorf("%w: exercise id not set", ErrExerciseNotFound)
		}

		if ex.Exercise.Name == "" {
			if library == nil {
				var err error
				if library, err = s.repo.GetExercises(ctx); err != nil {
					return err
				}
			}
			libIdx := indexOf(library, func(e workouts.Exercise) bool { return e.ID == ex.ExerciseID })
			if libIdx < 0 {
				return fmt.Errorf("%w: %s", ErrExerciseNotFound, ex.ExerciseID)
			}
			ex.Exercise = library[libIdx]
		}
		ex.Exercise.ID = ex.ExerciseID

		for j := range ex.Sets {
			if ex.Sets[j].ID == "" {
				ex.Sets[j].ID = s.NewIDFunc()
			}
		}
	}
	return nil
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(list, func(w workouts.Workout) bool { return w.ID == id })
	if idx < 0 {
		return ErrWorkoutNotFound
	}
	list = append(list[:idx], list[idx+1:]...)

	if err := s.repo.SaveWorkouts(ctx, list); err != nil {
		return err
	}
	if err := s.rebuildRecords(ctx, list); err != nil {
		return err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsDeleted.Inc()
	}
	return nil
}

// RebuildRecords recomputes the personal records cache from all workouts.
func (s *Service) RebuildRecords(ctx context.Context) (_ []workouts.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.rebuild")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.rebuildRecords(ctx, list); err != nil {
		return nil, err
	}
	return s.repo.GetRecords(ctx)
}

func (s *Service) rebuildRecords(ctx context.Context, list []workouts.Workout) error {
	records := workouts.SortedRecords(workouts.PersonalRecords(list))
	if err := s.repo.SaveRecords(ctx, records); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRecordsRebuilds.Inc()
		s.metricsManager.GaugePersonalRecords.Set(float64(len(records)))
		s.metricsManager.HistogramRecordsRebuildLength.Observe(float64(len(list)))
	}
	return nil
}

// Records returns the cached personal records, newest first.
func (s *Service) Records(ctx context.Context) (_ []workouts.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.GetRecords(ctx)
	if err != nil {
		return nil, err
	}
	workouts.SortRecords(records)
	return records, nil
}

func (s *Service) WorkoutsInWeek(ctx context.Context, week string) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week", week))

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	return workouts.WorkoutsInWeek(list, week), nil
}

func (s *Service) WeekVolume(ctx context.Context, week string) (float64, error) {
	list, err := s.WorkoutsInWeek(ctx, week)
	if err != nil {
		return 0, err
	}
	return workouts.TotalVolume(list), nil
}

func (s *Service) History(ctx context.Context, params workouts.HistoryParams) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	return workouts.History(list, params), nil
}

func indexOf[T any](list []T, match func(T) bool) int {
	for i := range list {
		if match(list[i]) {
			return i
		}
	}
	return -1
}
