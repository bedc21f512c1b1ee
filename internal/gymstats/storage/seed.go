package storage

import (
	"github.com/2beens/workouttracker/internal/gymstats/workouts"
)

var defaultExercises = []workouts.Exercise{
	{ID: "1", Name: "Bench Press", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Barbell"},
	{ID: "2", Name: "Incline Dumbbell Press", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Dumbbells"},
	{ID: "3", Name: "Push-ups", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Bodyweight"},
	{ID: "4", Name: "Dumbbell Flyes", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Dumbbells"},

	{ID: "5", Name: "Deadlift", MuscleGroup: workouts.MuscleGroupBack, Equipment: "Barbell"},
	{ID: "6", Name: "Pull-ups", MuscleGroup: workouts.MuscleGroupBack, Equipment: "Bodyweight"},
	{ID: "7", Name: "Barbell Rows", MuscleGroup: workouts.MuscleGroupBack, Equipment: "Barbell"},
	{ID: "8", Name: "Lat Pulldowns", MuscleGroup: workouts.MuscleGroupBack, Equipment: "Cable"},

	{ID: "9", Name: "Squats", MuscleGroup: workouts.MuscleGroupLegs, Equipment: "Barbell"},
	{ID: "10", Name: "Leg Press", MuscleGroup: workouts.MuscleGroupLegs, Equipment: "Machine"},
	{ID: "11", Name: "Lunges", MuscleGroup: workouts.MuscleGroupLegs, Equipment: "Dumbbells"},
	{ID: "12", Name: "Leg Curls", MuscleGroup: workouts.MuscleGroupLegs, Equipment: "Machine"},

	{ID: "13", Name: "Overhead Press", MuscleGroup: workouts.MuscleGroupShoulders, Equipment: "Barbell"},
	{ID: "14", Name: "Lateral Raises", MuscleGroup: workouts.MuscleGroupShoulders, Equipment: "Dumbbells"},
	{ID: "15", Name: "Rear Delt Flyes", MuscleGroup: workouts.MuscleGroupShoulders, Equipment: "Dumbbells"},

	{ID: "16", Name: "Bicep Curls", MuscleGroup: workouts.MuscleGroupArms, Equipment: "Dumbbells"},
	{ID: "17", Name: "Tricep Dips", MuscleGroup: workouts.MuscleGroupArms, Equipment: "Bodyweight"},
	{ID: "18", Name: "Hammer Curls", MuscleGroup: workouts.MuscleGroupArms, Equipment: "Dumbbells"},

	{ID: "19", Name: "Plank", MuscleGroup: workouts.MuscleGroupCore, Equipment: "Bodyweight"},
	{ID: "20", Name: "Crunches", MuscleGroup: workouts.MuscleGroupCore, Equipment: "Bodyweight"},
	{ID: "21", Name: "Russian Twists", MuscleGroup: workouts.MuscleGroupCore, Equipment: "Bodyweight"},
}

// DefaultExercises returns a fresh copy of the built-in exercise library.
func DefaultExercises() []workouts.Exercise {
	exercises := make([]workouts.Exercise, len(defaultExercises))
	copy(exercises, defaultExercises)
	return exercises
}
