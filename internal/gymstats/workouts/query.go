package workouts

import (
	"sort"
	"strings"
	"time"
)

type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByName   SortBy = "name"
	SortByVolume SortBy = "volume"
)

func ParseSortBy(s string) (SortBy, bool) {
	switch SortBy(strings.ToLower(s)) {
	case "", SortByDate:
		return SortByDate, true
	case SortByName:
		return SortByName, true
	case SortByVolume:
		return SortByVolume, true
	default:
		return "", false
	}
}

type HistoryParams struct {
	// Search matches the workout name, case-insensitive.
	Search string
	// MuscleGroup keeps workouts having at least one exercise of the group.
	MuscleGroup MuscleGroup
	SortBy      SortBy
}

// History filters and sorts workouts for browsing. The input is not modified.
func History(workouts []Workout, params HistoryParams) []Workout {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if search != "" && !strings.Contains(strings.ToLower(w.Name), search) {
			continue
		}
		if params.MuscleGroup != "" && !w.HasMuscleGroup(params.MuscleGroup) {
			continue
		}
		filtered = append(filtered, w)
	}

	switch params.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByVolume:
		sort.SliceStable(filtered, func(i, j int) bool {
			return Volume(filtered[i]) > Volume(filtered[j])
		})
	default:
		SortByDateDesc(filtered)
	}

	return filtered
}

// SortByDateDesc sorts in place, newest first. Dates are YYYY-MM-DD so the
// lexical order is the chronological one.
func SortByDateDesc(workouts []Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
}

// Recent returns up to n workouts, newest first.
func Recent(workouts []Workout, n int) []Workout {
	recent := make([]Workout, len(workouts))
	copy(recent, workouts)
	SortByDateDesc(recent)
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

type LibraryParams struct {
	Search      string
	MuscleGroup MuscleGroup
}

// Library filters the exercise catalog and sorts it by name.
func Library(exercises []Exercise, params LibraryParams) []Exercise {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if params.MuscleGroup != "" && e.MuscleGroup != params.MuscleGroup {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})
	return filtered
}

type GoalProgress struct {
	WeeklyGoal
	// WorkoutProgress and VolumeProgress are percentages, not capped at 100.
	WorkoutProgress float64 `json:"workoutProgress"`
	VolumeProgress  float64 `json:"volumeProgress"`
}

// Progress evaluates the goal against the live workouts of its week.
// A zero target yields zero progress.
func Progress(goal WeeklyGoal, workouts []Workout) GoalProgress {
	inWeek := WorkoutsInWeek(workouts, goal.Week)
	goal.CompletedWorkouts = len(inWeek)
	goal.CompletedVolume = TotalVolume(inWeek)

	progress := GoalProgress{WeeklyGoal: goal}
	if goal.TargetWorkouts > 0 {
		progress.WorkoutProgress = float64(goal.CompletedWorkouts) / float64(goal.TargetWorkouts) * 100
	}
	if goal.TargetVolume > 0 {
		progress.VolumeProgress = goal.CompletedVolume / goal.TargetVolume * 100
	}
	return progress
}

func SortGoalsByWeekDesc(goals []WeeklyGoal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Week > goals[j].Week
	})
}

const (
	weekOptionsBefore = 4
	weekOptionsAfter  = 12
)

// WeekOptions lists the week keys a goal can be set for: four weeks back up
// to twelve weeks ahead of now.
func WeekOptions(now time.Time) []string {
	seen := make(map[string]bool)
	options := make([]string, 0, weekOptionsBefore+weekOptionsAfter+1)
	for i := -weekOptionsBefore; i <= weekOptionsAfter; i++ {
		key := WeekKey(now.AddDate(0, 0, 7*i))
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, key)
	}
	return options
}
