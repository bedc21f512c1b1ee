package tracker

import (
	"context"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Library lists the exercise catalog, filtered and sorted by name.
func (s *Service) Library(ctx context.Context, params workouts.LibraryParams) (_ []workouts.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.repo.GetExercises(ctx)
	if err != nil {
		return nil, err
	}
	return workouts.Library(exercises, params), nil
}

// SaveExercise upserts a library exercise. Workouts keep their own
// snapshots, so a library edit never rewrites history.
func (s *Service) SaveExercise(ctx context.Context, exercise workouts.Exercise) (_ *workouts.Exercise, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.saveExercise(ctx, exercise, false)
}

func (s *Service) UpdateExercise(ctx context.Context, exercise workouts.Exercise) (_ *workouts.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		return nil, ErrMissingID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	saved, _, err := s.saveExercise(ctx, exercise, true)
	return saved, err
}

func (s *Service) saveExercise(ctx context.Context, exercise workouts.Exercise, mustExist bool) (*workouts.Exercise, bool, error) {
	library, err := s.repo.GetExercises(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := -1
	if exercise.ID != "" {
		idx = indexOf(library, func(e workouts.Exercise) bool { return e.ID == exercise.ID })
	}
	if idx < 0 && mustExist {
		return nil, false, ErrExerciseNotFound
	}

	created := idx < 0
	if created {
		if exercise.ID == "" {
			exercise.ID = s.NewIDFunc()
		}
		library = append(library, exercise)
	} else {
		library[idx] = exercise
	}

	if err := s.repo.SaveExercises(ctx, library); err != nil {
		return nil, false, err
	}
	return &exercise, created, nil
}

func (s *Service) DeleteExercise(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	library, err := s.repo.GetExercises(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(library, func(e workouts.Exercise) bool { return e.ID == id })
	if idx < 0 {
		return ErrExerciseNotFound
	}
	return s.repo.SaveExercises(ctx, append(library[:idx], library[idx+1:]...))
}
