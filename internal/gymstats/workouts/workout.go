package workouts

import (
	"strings"
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupArms      MuscleGroup = "arms"
	MuscleGroupCore      MuscleGroup = "core"
	MuscleGroupCardio    MuscleGroup = "cardio"
)

var AllMuscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupLegs,
	MuscleGroupShoulders,
	MuscleGroupArms,
	MuscleGroupCore,
	MuscleGroupCardio,
}

func (mg MuscleGroup) Valid() bool {
	for _, g := range AllMuscleGroups {
		if g == mg {
			return true
		}
	}
	return false
}

func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	mg := MuscleGroup(strings.ToLower(strings.TrimSpace(s)))
	return mg, mg.Valid()
}

// Exercise is a catalog entry of the exercise library.
type Exercise struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" validate:"required"`
	MuscleGroup  MuscleGroup `json:"muscleGroup" validate:"required,oneof=chest back legs shoulders arms core cardio"`
	Equipment    string      `json:"equipment,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
}

type Set struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps" validate:"gt=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
	// RestTime is the rest after the set, in seconds.
	RestTime int `json:"restTime,omitempty" validate:"gte=0"`
}

// Volume returns the load moved by a single set.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutExercise is one exercise performed within a workout. Exercise is a
// snapshot copied from the library at the time it was added, later library
// edits do not propagate into it.
type WorkoutExercise struct {
	ID         string   `json:"id"`
	ExerciseID string   `json:"exerciseId"`
	Exercise   Exercise `json:"exercise" validate:"-"`
	Sets       []Set    `json:"sets" validate:"min=1,dive"`
	Notes      string   `json:"notes,omitempty"`
}

type Workout struct {
	ID string `json:"id"`
	// Date is a calendar date in the YYYY-MM-DD form.
	Date      string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Name      string            `json:"name" validate:"required"`
	Exercises []WorkoutExercise `json:"exercises" validate:"min=1,dive"`
	// Duration in minutes.
	Duration int    `json:"duration,omitempty" validate:"gte=0"`
	Notes    string `json:"notes,omitempty"`
}

func (w Workout) HasMuscleGroup(mg MuscleGroup) bool {
	for _, ex := range w.Exercises {
		if ex.Exercise.MuscleGroup == mg {
			return true
		}
	}
	return false
}

func (w Workout) SetsCount() int {
	count := 0
	for _, ex := range w.Exercises {
		count += len(ex.Sets)
	}
	return count
}

// WeeklyGoal holds targets for a single week. The completed values are a
// snapshot taken when the goal was saved; live progress is computed on read.
type WeeklyGoal struct {
	ID                string  `json:"id"`
	Week              string  `json:"week" validate:"omitempty,weekkey"`
	TargetWorkouts    int     `json:"targetWorkouts" validate:"gt=0"`
	TargetVolume      float64 `json:"targetVolume" validate:"gte=0"`
	CompletedWorkouts int     `json:"completedWorkouts"`
	CompletedVolume   float64 `json:"completedVolume"`
}

// PersonalRecord is the best single set observed for one exercise.
type PersonalRecord struct {
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Date         string  `json:"date"`
}
