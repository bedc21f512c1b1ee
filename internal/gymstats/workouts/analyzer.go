package workouts

import (
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// WeekKey returns the "YYYY-WW" week identifier of the calendar date.
// Weeks start on Sunday; week 01 is the (possibly partial) week holding
// January 1st, so a year may end with week 53 (or 54 in a leap year
// starting on Saturday). The key is computed from the date's own calendar
// fields, the time of day and the location offset are irrelevant.
func WeekKey(date time.Time) string {
	year := date.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceJan1 := date.YearDay() - 1
	// ceil((days + jan1Weekday + 1) / 7)
	week := (daysSinceJan1 + int(jan1.Weekday()) + 1 + 6) / 7
	return fmt.Sprintf("%d-%02d", year, week)
}

// ParseDate parses a workout date in the YYYY-MM-DD form.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s]: %w", date, err)
	}
	return t, nil
}

func WeekKeyOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return WeekKey(t), nil
}

// Volume is the sum of weight*reps over every set of every exercise.
func Volume(w Workout) float64 {
	var volume float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			volume += set.Volume()
		}
	}
	return volume
}

func TotalVolume(workouts []Workout) float64 {
	var volume float64
	for _, w := range workouts {
		volume += Volume(w)
	}
	return volume
}

// PersonalRecords finds the best set per exercise id across all workouts.
// A set beats the current record if it is strictly heavier, or equally heavy
// with strictly more reps. On a full tie the first one seen is kept.
func PersonalRecords(workouts []Workout) map[string]PersonalRecord {
	records := make(map[string]PersonalRecord)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				current, found := records[ex.ExerciseID]
				if found && !beats(set, current) {
					continue
				}
				records[ex.ExerciseID] = PersonalRecord{
					ExerciseID:   ex.ExerciseID,
					ExerciseName: ex.Exercise.Name,
					Weight:       set.Weight,
					Reps:         set.Reps,
					Date:         w.Date,
				}
			}
		}
	}
	return records
}

func beats(set Set, record PersonalRecord) bool {
	if set.Weight != record.Weight {
		return set.Weight > record.Weight
	}
	return set.Reps > record.Reps
}

// SortedRecords flattens the records map into a list, newest first, then by
// exercise name and id so the order is stable.
func SortedRecords(records map[string]PersonalRecord) []PersonalRecord {
	list := make([]PersonalRecord, 0, len(records))
	for _, r := range records {
		list = append(list, r)
	}
	SortRecords(list)
	return list
}

func SortRecords(records []PersonalRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.ExerciseName != b.ExerciseName {
			return a.ExerciseName < b.ExerciseName
		}
		return a.ExerciseID < b.ExerciseID
	})
}

// WorkoutsInWeek returns the workouts whose date falls into the given week,
// preserving input order. Workouts with an unparsable date never match.
func WorkoutsInWeek(workouts []Workout, week string) []Workout {
	inWeek := make([]Workout, 0)
	for _, w := range workouts {
		key, err := WeekKeyOf(w.Date)
		if err != nil {
			continue
		}
		if key == week {
			inWeek = append(inWeek, w)
		}
	}
	return inWeek
}
