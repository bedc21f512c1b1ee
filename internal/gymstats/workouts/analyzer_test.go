package workouts_test

import (
	"testing"
	"time"

	"github.com/2beens/workouttracker/internal/gymstats/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func benchPress() workouts.Exercise {
	return workouts.Exercise{ID: "1", Name: "Bench Press", MuscleGroup: workouts.MuscleGroupChest, Equipment: "Barbell"}
}

func squats() workouts.Exercise {
	return workouts.Exercise{ID: "9", Name: "Squats", MuscleGroup: workouts.MuscleGroupLegs, Equipment: "Barbell"}
}

func workoutWith(id, date string, exercise workouts.Exercise, sets ...workouts.Set) workouts.Workout {
	return workouts.Workout{
		ID:   id,
		Date: date,
		Name: "Workout " + id,
		Exercises: []workouts.WorkoutExercise{
			{
				ID:         id + "-we",
				ExerciseID: exercise.ID,
				Exercise:   exercise,
				Sets:       sets,
			},
		},
	}
}

func TestWeekKey(t *testing.T) {
	testCases := []struct {
		date     time.Time
		expected string
	}{
		// 2024-01-01 is a Monday
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01"},
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), "2024-01"},
		// first Sunday starts week 02
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), "2024-02"},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2024-53"},
		// 2023-01-01 is a Sunday
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2023-01"},
		{time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC), "2023-01"},
		{time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC), "2023-02"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "2023-53"},
		// 2022-01-01 is a Saturday, a one day long week 01
		{time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), "2022-01"},
		{time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC), "2022-02"},
		// 2000 is a leap year starting on Saturday
		{time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), "2000-54"},
	}

	for _, tc := range testCases {
		t.Run(tc.date.Format(workouts.DateLayout), func(t *testing.T) {
			assert.Equal(t, tc.expected, workouts.WeekKey(tc.date))
		})
	}
}

func TestWeekKey_IgnoresTimeOfDayAndLocation(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	losAngeles := time.FixedZone("UTC-8", -8*60*60)

	assert.Equal(t, "2024-02", workouts.WeekKey(time.Date(2024, 1, 7, 0, 0, 0, 0, tokyo)))
	assert.Equal(t, "2024-02", workouts.WeekKey(time.Date(2024, 1, 7, 23, 59, 59, 0, losAngeles)))
	assert.Equal(t, "2024-01", workouts.WeekKey(time.Date(2024, 1, 6, 23, 59, 59, 0, tokyo)))
}

func TestWeekKey_ConsecutiveDaysNeverGoBack(t *testing.T) {
	day := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	prevKey := workouts.WeekKey(day)
	for i := 0; i < 120; i++ {
		day = day.AddDate(0, 0, 1)
		key := workouts.WeekKey(day)
		if day.Month() == time.January && day.Day() == 1 {
			assert.Equal(t, "01", key[5:], "new year must start week 01")
		} else {
			assert.GreaterOrEqual(t, key, prevKey)
			if day.Weekday() != time.Sunday {
				assert.Equal(t, prevKey, key, "week must only change on Sunday: %s", day)
			}
		}
		prevKey = key
	}
}

func TestWeekKeyOf(t *testing.T) {
	key, err := workouts.WeekKeyOf("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", key)

	_, err = workouts.WeekKeyOf("07/01/2024")
	assert.Error(t, err)
	_, err = workouts.WeekKeyOf("")
	assert.Error(t, err)
}

func TestVolume(t *testing.T) {
	w := workoutWith("w1", "2024-01-01", benchPress(),
		workouts.Set{ID: "s1", Reps: 10, Weight: 20},
		workouts.Set{ID: "s2", Reps: 5, Weight: 30},
	)
	assert.Equal(t, float64(350), workouts.Volume(w))

	assert.Equal(t, float64(0), workouts.Volume(workouts.Workout{}))
	assert.Equal(t, float64(0), workouts.Volume(workoutWith("w2", "2024-01-01", benchPress())))

	bodyweight := workoutWith("w3", "2024-01-01", benchPress(), workouts.Set{Reps: 20, Weight: 0})
	assert.Equal(t, float64(0), workouts.Volume(bodyweight))
}

func TestVolume_OrderIndependent(t *testing.T) {
	faker := gofakeit.New(42)

	var sets []workouts.Set
	for i := 0; i < 40; i++ {
		sets = append(sets, workouts.Set{
			ID:     faker.UUID(),
			Reps:   faker.IntRange(0, 20),
			Weight: float64(faker.IntRange(0, 400)) / 2,
		})
	}

	w := workoutWith("w1", "2024-01-01", benchPress(), sets...)
	expected := workouts.Volume(w)

	for i := 0; i < 10; i++ {
		shuffled := make([]workouts.Set, len(sets))
		copy(shuffled, sets)
		faker.ShuffleAnySlice(shuffled)
		assert.Equal(t, expected, workouts.Volume(workoutWith("w1", "2024-01-01", benchPress(), shuffled...)))
	}
}

func TestPersonalRecords_Empty(t *testing.T) {
	assert.Empty(t, workouts.PersonalRecords(nil))
	assert.Empty(t, workouts.PersonalRecords([]workouts.Workout{
		workoutWith("w1", "2024-01-01", benchPress()),
	}))
}

func TestPersonalRecords(t *testing.T) {
	list := []workouts.Workout{
		workoutWith("w1", "2024-01-01", benchPress(),
			workouts.Set{Reps: 10, Weight: 60},
			workouts.Set{Reps: 5, Weight: 80},
		),
		workoutWith("w2", "2024-01-08", benchPress(),
			workouts.Set{Reps: 3, Weight: 80},
			workouts.Set{Reps: 8, Weight: 80},
		),
		workoutWith("w3", "2024-01-10", squats(),
			workouts.Set{Reps: 5, Weight: 100},
		),
	}

	records := workouts.PersonalRecords(list)
	require.Len(t, records, 2)

	assert.Equal(t, workouts.PersonalRecord{
		ExerciseID:   "1",
		ExerciseName: "Bench Press",
		Weight:       80,
		Reps:         8,
		Date:         "2024-01-08",
	}, records["1"])
	assert.Equal(t, workouts.PersonalRecord{
		ExerciseID:   "9",
		ExerciseName: "Squats",
		Weight:       100,
		Reps:         5,
		Date:         "2024-01-10",
	}, records["9"])
}

func TestPersonalRecords_HeavierBeatsMoreReps(t *testing.T) {
	list := []workouts.Workout{
		workoutWith("w1", "2024-01-01", benchPress(), workouts.Set{Reps: 20, Weight: 60}),
		workoutWith("w2", "2024-01-02", benchPress(), workouts.Set{Reps: 1, Weight: 60.5}),
	}

	record := workouts.PersonalRecords(list)["1"]
	assert.Equal(t, 60.5, record.Weight)
	assert.Equal(t, 1, record.Reps)
	assert.Equal(t, "2024-01-02", record.Date)
}

func TestPersonalRecords_FullTieKeepsFirst(t *testing.T) {
	list := []workouts.Workout{
		workoutWith("w1", "2024-01-01", benchPress(), workouts.Set{Reps: 5, Weight: 80}),
		workoutWith("w2", "2024-02-01", benchPress(), workouts.Set{Reps: 5, Weight: 80}),
	}

	assert.Equal(t, "2024-01-01", workouts.PersonalRecords(list)["1"].Date)
}

func TestPersonalRecords_NameFromWinningSnapshot(t *testing.T) {
	renamed := benchPress()
	renamed.Name = "Flat Bench Press"
	list := []workouts.Workout{
		workoutWith("w1", "2024-01-01", benchPress(), workouts.Set{Reps: 5, Weight: 80}),
		workoutWith("w2", "2024-02-01", renamed, workouts.Set{Reps: 5, Weight: 90}),
	}

	assert.Equal(t, "Flat Bench Press", workouts.PersonalRecords(list)["1"].ExerciseName)
}

func TestPersonalRecords_OrderIndependentValues(t *testing.T) {
	faker := gofakeit.New(7)

	var list []workouts.Workout
	for i := 0; i < 30; i++ {
		exercise := benchPress()
		if i%2 == 0 {
			exercise = squats()
		}
		// distinct weights avoid full ties whose winner depends on order
		list = append(list, workoutWith(
			faker.UUID(),
			faker.Date().Format(workouts.DateLayout),
			exercise,
			workouts.Set{Reps: faker.IntRange(1, 12), Weight: float64(i*5 + 20)},
		))
	}

	expected := workouts.PersonalRecords(list)
	for i := 0; i < 10; i++ {
		shuffled := make([]workouts.Workout, len(list))
		copy(shuffled, list)
		faker.ShuffleAnySlice(shuffled)
		assert.Equal(t, expected, workouts.PersonalRecords(shuffled))
	}
}

func TestSortedRecords(t *testing.T) {
	records := map[string]workouts.PersonalRecord{
		"1": {ExerciseID: "1", ExerciseName: "Bench Press", Date: "2024-01-01"},
		"9": {ExerciseID: "9", ExerciseName: "Squats", Date: "2024-03-01"},
		"5": {ExerciseID: "5", ExerciseName: "Deadlift", Date: "2024-01-01"},
	}

	sorted := workouts.SortedRecords(records)
	require.Len(t, sorted, 3)
	assert.Equal(t, "9", sorted[0].ExerciseID)
	assert.Equal(t, "1", sorted[1].ExerciseID)
	assert.Equal(t, "5", sorted[2].ExerciseID)

	assert.Empty(t, workouts.SortedRecords(nil))
	assert.NotNil(t, workouts.SortedRecords(nil))
}

func TestWorkoutsInWeek(t *testing.T) {
	list := []workouts.Workout{
		workoutWith("w1", "2024-01-07", benchPress()),
		workoutWith("w2", "2024-01-06", benchPress()),
		workoutWith("w3", "2024-01-13", benchPress()),
		workoutWith("w4", "not-a-date", benchPress()),
		workoutWith("w5", "2024-01-08", benchPress()),
	}

	inWeek := workouts.WorkoutsInWeek(list, "2024-02")
	require.Len(t, inWeek, 3)
	assert.Equal(t, "w1", inWeek[0].ID)
	assert.Equal(t, "w3", inWeek[1].ID)
	assert.Equal(t, "w5", inWeek[2].ID)

	// idempotent
	assert.Equal(t, inWeek, workouts.WorkoutsInWeek(inWeek, "2024-02"))

	assert.Empty(t, workouts.WorkoutsInWeek(list, "2024-40"))
	assert.Empty(t, workouts.WorkoutsInWeek(nil, "2024-02"))
}
