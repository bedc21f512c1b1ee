package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/workouttracker/internal/gymstats/tracker"
	"github.com/2beens/workouttracker/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// trackerReader is the read side of the tracker service used by the tools.
type trackerReader interface {
	Dashboard(ctx context.Context) (*tracker.Dashboard, error)
	Records(ctx context.Context) ([]workouts.PersonalRecord, error)
	WorkoutsInWeek(ctx context.Context, week string) ([]workouts.Workout, error)
	GoalsProgress(ctx context.Context) ([]workouts.GoalProgress, error)
	Library(ctx context.Context, params workouts.LibraryParams) ([]workouts.Exercise, error)
}

// Handler handles MCP tool requests: parses input, calls the tracker, formats the result.
type Handler struct {
	reader trackerReader
}

func NewHandler(reader trackerReader) *Handler {
	return &Handler{
		reader: reader,
	}
}

// NoInput is the input of tools that take no arguments.
type NoInput struct{}

// WeekWorkouts is the payload of get_workouts_in_week.
type WeekWorkouts struct {
	Week     string             `json:"week"`
	Workouts []workouts.Workout `json:"workouts"`
	Volume   float64            `json:"volume"`
}

func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		dashboard, err := h.reader.Dashboard(ctx)
		if err != nil {
			return errorResult("Error building dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(dashboard), nil, nil
	}
}

// PersonalRecordsInput is the input for get_personal_records.
type PersonalRecordsInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Filter by exercise name, case insensitive substring (e.g. bench)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max number of records to return, newest first; 0 returns all"`
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}

		records, err := h.reader.Records(ctx)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}

		search := strings.ToLower(strings.TrimSpace(in.Exercise))
		filtered := make([]workouts.PersonalRecord, 0, len(records))
		for _, r := range records {
			if search != "" && !strings.Contains(strings.ToLower(r.ExerciseName), search) {
				continue
			}
			filtered = append(filtered, r)
		}
		if in.Limit > 0 && len(filtered) > in.Limit {
			filtered = filtered[:in.Limit]
		}
		return jsonResult(filtered), nil, nil
	}
}

// WorkoutsInWeekInput is the input for get_workouts_in_week. Exactly one of
// the fields is expected; week wins when both are set.
type WorkoutsInWeekInput struct {
	Week string `json:"week,omitempty" jsonschema:"Week key YYYY-WW, weeks start on Sunday (e.g. 2024-02)"`
	Date string `json:"date,omitempty" jsonschema:"Any calendar date YYYY-MM-DD inside the wanted week"`
}

func (h *Handler) GetWorkoutsInWeekTool() func(context.Context, *mcp.CallToolRequest, WorkoutsInWeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutsInWeekInput) (*mcp.CallToolResult, any, error) {
		week := strings.TrimSpace(in.Week)
		switch {
		case week != "":
			if !tracker.ValidWeekKey(week) {
				return errorResult("Invalid week: use YYYY-WW"), nil, nil
			}
		case in.Date != "":
			var err error
			if week, err = workouts.WeekKeyOf(in.Date); err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
		default:
			return errorResult("Either week or date is required"), nil, nil
		}

		list, err := h.reader.WorkoutsInWeek(ctx, week)
		if err != nil {
			return errorResult("Error fetching workouts: " + err.Error()), nil, nil
		}
		return jsonResult(WeekWorkouts{
			Week:     week,
			Workouts: list,
			Volume:   workouts.TotalVolume(list),
		}), nil, nil
	}
}

func (h *Handler) GetGoalsProgressTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		progress, err := h.reader.GoalsProgress(ctx)
		if err != nil {
			return errorResult("Error fetching goals: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

// ExerciseLibraryInput is the input for get_exercise_library.
type ExerciseLibraryInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (chest, back, legs, shoulders, arms, core, cardio)"`
	Search      string `json:"search,omitempty" jsonschema:"Filter by exercise name, case insensitive substring"`
}

func (h *Handler) GetExerciseLibraryTool() func(context.Context, *mcp.CallToolRequest, ExerciseLibraryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseLibraryInput) (*mcp.CallToolResult, any, error) {
		params := workouts.LibraryParams{Search: in.Search}
		if in.MuscleGroup != "" {
			mg, ok := workouts.ParseMuscleGroup(in.MuscleGroup)
			if !ok {
				return errorResult("Invalid muscle_group: " + in.MuscleGroup), nil, nil
			}
			params.MuscleGroup = mg
		}

		library, err := h.reader.Library(ctx, params)
		if err != nil {
			return errorResult("Error fetching exercise library: " + err.Error()), nil, nil
		}
		return jsonResult(library), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
