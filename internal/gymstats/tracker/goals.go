package tracker

import (
	"context"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// GoalsProgress returns every goal with its live progress, latest week first.
func (s *Service) GoalsProgress(ctx context.Context) (_ []workouts.GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	workouts.SortGoalsByWeekDesc(goals)
	progress := make([]workouts.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, workouts.Progress(g, list))
	}
	return progress, nil
}

// SaveGoal upserts a weekly goal. The completed values are snapshotted from
// the workouts of the goal week at save time.
func (s *Service) SaveGoal(ctx context.Context, goal workouts.WeeklyGoal) (_ *workouts.WeeklyGoal, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.week", goal.Week))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.saveGoal(ctx, goal, false)
}

func (s *Service) UpdateGoal(ctx context.Context, goal workouts.WeeklyGoal) (_ *workouts.WeeklyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if goal.ID == "" {
		return nil, ErrMissingID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	saved, _, err := s.saveGoal(ctx, goal, true)
	return saved, err
}

func (s *Service) saveGoal(ctx context.Context, goal workouts.WeeklyGoal, mustExist bool) (*workouts.WeeklyGoal, bool, error) {
	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := -1
	if goal.ID != "" {
		idx = indexOf(goals, func(g workouts.WeeklyGoal) bool { return g.ID == goal.ID })
	}
	if idx < 0 && mustExist {
		return nil, false, ErrGoalNotFound
	}

	if goal.Week == "" {
		goal.Week = workouts.WeekKey(s.NowFunc())
	}
	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, false, err
	}
	inWeek := workouts.WorkoutsInWeek(list, goal.Week)
	goal.CompletedWorkouts = len(inWeek)
	goal.CompletedVolume = workouts.TotalVolume(inWeek)

	created := idx < 0
	if created {
		if goal.ID == "" {
			goal.ID = s.NewIDFunc()
		}
		goals = append(goals, goal)
	} else {
		goals[idx] = goal
	}

	if err := s.repo.SaveGoals(ctx, goals); err != nil {
		return nil, false, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterGoalsSaved.Inc()
	}
	return &goal, created, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(goals, func(g workouts.WeeklyGoal) bool { return g.ID == id })
	if idx < 0 {
		return ErrGoalNotFound
	}
	return s.repo.SaveGoals(ctx, append(goals[:idx], goals[idx+1:]...))
}

// NewGoalTemplate is a goal for the current week with the default targets.
func (s *Service) NewGoalTemplate() workouts.WeeklyGoal {
	return workouts.WeeklyGoal{
		Week:           workouts.WeekKey(s.NowFunc()),
		TargetWorkouts: DefaultTargetWorkouts,
		TargetVolume:   DefaultTargetVolume,
	}
}

func (s *Service) WeekOptions() []string {
	return workouts.WeekOptions(s.NowFunc())
}
