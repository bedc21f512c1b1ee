package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "workouts-tracker"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server with read-only workout tracker tools.
// The main backend mounts it at /mcp, cmd/workouts_mcp runs it over stdio.
func NewServer(reader trackerReader) *mcp.Server {
	h := NewHandler(reader)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns today's workout, the current week key (YYYY-WW, weeks start on Sunday), this week's workout count and volume, the current weekly goal progress, the top 3 personal records and the 5 most recent workouts.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the best set (heaviest weight, then most reps) per exercise, newest first. Optional: exercise (name substring), limit.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_in_week",
		Description: "Returns the workouts of one week with their total volume (weight x reps). Args: week (YYYY-WW) or date (YYYY-MM-DD) inside the week.",
	}, h.GetWorkoutsInWeekTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_goals_progress",
		Description: "Returns all weekly goals, latest week first, with live completed workouts and volume and the progress percentages against the targets.",
	}, h.GetGoalsProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_library",
		Description: "Returns the exercise catalog sorted by name. Optional filters: muscle_group, search (name substring).",
	}, h.GetExerciseLibraryTool())

	return s
}
