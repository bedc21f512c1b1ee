package tracker

import (
	"context"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Dashboard struct {
	Today          *workouts.Workout         `json:"today,omitempty"`
	CurrentWeek    string                    `json:"currentWeek"`
	WeekWorkouts   int                       `json:"weekWorkouts"`
	WeekVolume     float64                   `json:"weekVolume"`
	CurrentGoal    *workouts.GoalProgress    `json:"currentGoal,omitempty"`
	TopRecords     []workouts.PersonalRecord `json:"topRecords"`
	RecentWorkouts []workouts.Workout        `json:"recentWorkouts"`
	TotalWorkouts  int                       `json:"totalWorkouts"`
}

// Dashboard summarizes the current day and week.
func (s *Service) Dashboard(ctx context.Context) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := s.repo.GetWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.GetRecords(ctx)
	if err != nil {
		return nil, err
	}

	now := s.NowFunc()
	today := now.Format(workouts.DateLayout)
	week := workouts.WeekKey(now)
	span.SetAttributes(attribute.String("week", week))

	dashboard := &Dashboard{
		CurrentWeek:    week,
		RecentWorkouts: workouts.Recent(list, dashboardRecent),
		TotalWorkouts:  len(list),
	}

	for i := range list {
		if list[i].Date == today {
			dashboard.Today = &list[i]
			break
		}
	}

	inWeek := workouts.WorkoutsInWeek(list, week)
	dashboard.WeekWorkouts = len(inWeek)
	dashboard.WeekVolume = workouts.TotalVolume(inWeek)

	for _, g := range goals {
		if g.Week == week {
			progress := workouts.Progress(g, list)
			dashboard.CurrentGoal = &progress
			break
		}
	}

	workouts.SortRecords(records)
	if len(records) > dashboardTopRecords {
		records = records[:dashboardTopRecords]
	}
	dashboard.TopRecords = records

	return dashboard, nil
}
