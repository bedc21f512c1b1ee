package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/internal/gymstats/tracker"
	"github.com/2beens/workouttracker/internal/gymstats/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any, expectedStatus int, dst any) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))

	if dst != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, dst))
	}
}

func (s *IntegrationTestSuite) storedDocument(ctx context.Context, key string) string {
	var value string
	err := s.dbPool.QueryRow(ctx, "SELECT value::text FROM kv_store WHERE key = $1", key).Scan(&value)
	require.NoError(s.T(), err)
	return value
}

func (s *IntegrationTestSuite) TestWorkoutsFlow() {
	ctx := context.Background()
	t := s.T()
	faker := gofakeit.New(42)

	var library []workouts.Exercise
	s.doJSON(ctx, "GET", "/exercises", nil, http.StatusOK, &library)
	require.Len(t, library, 21)

	var saved []workouts.Workout
	for i := 0; i < 5; i++ {
		workout := workouts.Workout{
			Name: faker.AppName(),
			Date: fmt.Sprintf("2024-01-%02d", 7+i),
			Exercises: []workouts.WorkoutExercise{
				{
					ExerciseID: library[faker.Number(0, len(library)-1)].ID,
					Sets: []workouts.Set{
						{Reps: faker.Number(1, 12), Weight: float64(faker.Number(10, 150))},
						{Reps: faker.Number(1, 12), Weight: float64(faker.Number(10, 150))},
					},
				},
			},
		}
		var w workouts.Workout
		s.doJSON(ctx, "POST", "/workouts", workout, http.StatusCreated, &w)
		assert.NotEmpty(t, w.ID)
		assert.NotEmpty(t, w.Exercises[0].Exercise.Name)
		saved = append(saved, w)
	}

	var list []workouts.Workout
	s.doJSON(ctx, "GET", "/workouts", nil, http.StatusOK, &list)
	require.Len(t, list, 5)
	assert.Equal(t, "2024-01-11", list[0].Date)

	var week tracker.WeekWorkoutsResponse
	s.doJSON(ctx, "GET", "/workouts/week/2024-02", nil, http.StatusOK, &week)
	assert.Len(t, week.Workouts, 5)
	assert.Equal(t, workouts.TotalVolume(saved), week.Volume)

	var records []workouts.PersonalRecord
	s.doJSON(ctx, "GET", "/records", nil, http.StatusOK, &records)
	assert.Equal(t, workouts.SortedRecords(workouts.PersonalRecords(saved)), records)

	// the collections live in postgres as JSON documents
	var stored []workouts.Workout
	require.NoError(t, json.Unmarshal([]byte(s.storedDocument(ctx, storage.KeyWorkouts)), &stored))
	assert.Len(t, stored, 5)

	for _, w := range saved {
		var deleted tracker.DeleteResponse
		s.doJSON(ctx, "DELETE", "/workouts/"+w.ID, nil, http.StatusOK, &deleted)
		assert.Equal(t, w.ID, deleted.DeletedID)
	}

	s.doJSON(ctx, "GET", "/records", nil, http.StatusOK, &records)
	assert.Empty(t, records)
}

func (s *IntegrationTestSuite) TestGoalsFlow() {
	ctx := context.Background()
	t := s.T()

	var weeks tracker.GoalWeeksResponse
	s.doJSON(ctx, "GET", "/goals/weeks", nil, http.StatusOK, &weeks)
	require.NotEmpty(t, weeks.Weeks)

	goal := weeks.Template
	goal.Week = "2024-02"
	var saved workouts.WeeklyGoal
	s.doJSON(ctx, "POST", "/goals", goal, http.StatusCreated, &saved)
	require.NotEmpty(t, saved.ID)

	saved.TargetWorkouts = 5
	s.doJSON(ctx, "PUT", "/goals", saved, http.StatusOK, nil)

	var progress []workouts.GoalProgress
	s.doJSON(ctx, "GET", "/goals", nil, http.StatusOK, &progress)
	require.Len(t, progress, 1)
	assert.Equal(t, 5, progress[0].TargetWorkouts)

	s.doJSON(ctx, "DELETE", "/goals/"+saved.ID, nil, http.StatusOK, nil)
	s.doJSON(ctx, "DELETE", "/goals/"+saved.ID, nil, http.StatusNotFound, nil)
}
