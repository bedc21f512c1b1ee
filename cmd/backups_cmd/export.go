package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/workouttracker/internal/gymstats/storage"

	log "github.com/sirupsen/logrus"
)

// exportCollections writes each collection to <dir>/<store key>.json.
// A corrupt collection fails the whole export.
func exportCollections(ctx context.Context, repo *storage.Repo, dir string) error {
	workoutsList, err := repo.GetWorkouts(ctx)
	if err != nil {
		return fmt.Errorf("get workouts: %w", err)
	}
	exercises, err := repo.GetExercises(ctx)
	if err != nil {
		return fmt.Errorf("get exercises: %w", err)
	}
	goals, err := repo.GetGoals(ctx)
	if err != nil {
		return fmt.Errorf("get goals: %w", err)
	}
	records, err := repo.GetRecords(ctx)
	if err != nil {
		return fmt.Errorf("get records: %w", err)
	}

	collections := map[string]any{
		storage.KeyWorkouts:  workoutsList,
		storage.KeyExercises: exercises,
		storage.KeyGoals:     goals,
		storage.KeyRecords:   records,
	}
	for key, list := range collections {
		raw, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal [%s]: %w", key, err)
		}
		path := filepath.Join(dir, key+".json")
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write [%s]: %w", path, err)
		}
		log.Debugf("exported [%s]: %d bytes", key, len(raw))
	}

	return nil
}
