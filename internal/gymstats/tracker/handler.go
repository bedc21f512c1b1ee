package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/internal/gymstats/workouts"
	"github.com/2beens/workouttracker/internal/middleware"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type trackerService interface {
	Workout(ctx context.Context, id string) (*workouts.Workout, error)
	History(ctx context.Context, params workouts.HistoryParams) ([]workouts.Workout, error)
	SaveWorkout(ctx context.Context, workout workouts.Workout) (*workouts.Workout, bool, error)
	UpdateWorkout(ctx context.Context, workout workouts.Workout) (*workouts.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	WorkoutsInWeek(ctx context.Context, week string) ([]workouts.Workout, error)
	Library(ctx context.Context, params workouts.LibraryParams) ([]workouts.Exercise, error)
	SaveExercise(ctx context.Context, exercise workouts.Exercise) (*workouts.Exercise, bool, error)
	UpdateExercise(ctx context.Context, exercise workouts.Exercise) (*workouts.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
	GoalsProgress(ctx context.Context) ([]workouts.GoalProgress, error)
	SaveGoal(ctx context.Context, goal workouts.WeeklyGoal) (*workouts.WeeklyGoal, bool, error)
	UpdateGoal(ctx context.Context, goal workouts.WeeklyGoal) (*workouts.WeeklyGoal, error)
	DeleteGoal(ctx context.Context, id string) error
	NewGoalTemplate() workouts.WeeklyGoal
	WeekOptions() []string
	Records(ctx context.Context) ([]workouts.PersonalRecord, error)
	RebuildRecords(ctx context.Context) ([]workouts.PersonalRecord, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type WeekWorkoutsResponse struct {
	Week     string             `json:"week"`
	Workouts []workouts.Workout `json:"workouts"`
	Volume   float64            `json:"volume"`
}

type GoalWeeksResponse struct {
	Weeks    []string            `json:"weeks"`
	Template workouts.WeeklyGoal `json:"template"`
}

type Handler struct {
	service  trackerService
	validate *validator.Validate
}

func NewHandler(service trackerService) *Handler {
	return &Handler{
		service:  service,
		validate: newValidator(),
	}
}

// SetupRoutes registers the tracker API. Mutating routes are rate limited
// when a rate limiter is given.
func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	write := func(routeName string, h http.HandlerFunc) http.Handler {
		if rateLimiter == nil {
			return h
		}
		return middleware.RateLimit(rateLimiter, metricsManager, routeName, allowedPerMin)(h)
	}

	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.Handle("/workouts", write("workouts-write", handler.HandleAddWorkout)).Methods("POST", "OPTIONS").Name("new-workout")
	r.Handle("/workouts", write("workouts-write", handler.HandleUpdateWorkout)).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/week/{week}", handler.HandleWorkoutsInWeek).Methods("GET", "OPTIONS").Name("week-workouts")
	r.HandleFunc("/workouts/{id}", handler.HandleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	r.Handle("/workouts/{id}", write("workouts-write", handler.HandleDeleteWorkout)).Methods("DELETE", "OPTIONS").Name("remove-workout")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercises", write("exercises-write", handler.HandleAddExercise)).Methods("POST", "OPTIONS").Name("new-exercise")
	r.Handle("/exercises", write("exercises-write", handler.HandleUpdateExercise)).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.Handle("/exercises/{id}", write("exercises-write", handler.HandleDeleteExercise)).Methods("DELETE", "OPTIONS").Name("remove-exercise")

	r.HandleFunc("/goals", handler.HandleListGoals).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/weeks", handler.HandleGoalWeeks).Methods("GET", "OPTIONS").Name("goal-weeks")
	r.Handle("/goals", write("goals-write", handler.HandleAddGoal)).Methods("POST", "OPTIONS").Name("new-goal")
	r.Handle("/goals", write("goals-write", handler.HandleUpdateGoal)).Methods("PUT", "OPTIONS").Name("update-goal")
	r.Handle("/goals/{id}", write("goals-write", handler.HandleDeleteGoal)).Methods("DELETE", "OPTIONS").Name("remove-goal")

	r.HandleFunc("/records", handler.HandleListRecords).Methods("GET", "OPTIONS").Name("list-records")
	r.Handle("/records/rebuild", write("records-write", handler.HandleRebuildRecords)).Methods("POST", "OPTIONS").Name("rebuild-records")

	r.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	query := r.URL.Query()
	params := workouts.HistoryParams{
		Search: query.Get("q"),
	}

	sortBy, ok := workouts.ParseSortBy(query.Get("sort"))
	if !ok {
		http.Error(w, "invalid sort, use one of: date, name, volume", http.StatusBadRequest)
		return
	}
	params.SortBy = sortBy

	if mgParam := query.Get("muscle_group"); mgParam != "" && mgParam != "all" {
		mg, ok := workouts.ParseMuscleGroup(mgParam)
		if !ok {
			http.Error(w, "invalid muscle group", http.StatusBadRequest)
			return
		}
		params.MuscleGroup = mg
	}

	list, err := handler.service.History(ctx, params)
	if err != nil {
		handleServiceError(w, err, "list workouts")
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	workout, err := handler.service.Workout(ctx, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err, "get workout")
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var workout workouts.Workout
	if !handler.decodeAndValidate(w, r, &workout) {
		return
	}

	saved, created, err := handler.service.SaveWorkout(ctx, workout)
	if err != nil {
		handleServiceError(w, err, "save workout")
		return
	}

	log.Debugf("workout saved: %s [%s]", saved.ID, saved.Date)
	pkg.WriteJSON(w, saved, createdOrOK(created))
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var workout workouts.Workout
	if !handler.decodeAndValidate(w, r, &workout) {
		return
	}

	saved, err := handler.service.UpdateWorkout(ctx, workout)
	if err != nil {
		handleServiceError(w, err, "update workout")
		return
	}

	pkg.WriteJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteWorkout(ctx, id); err != nil {
		handleServiceError(w, err, "delete workout")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleWorkoutsInWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.week")
	defer span.End()

	week := mux.Vars(r)["week"]
	if !ValidWeekKey(week) {
		http.Error(w, "invalid week, expected YYYY-WW", http.StatusBadRequest)
		return
	}

	list, err := handler.service.WorkoutsInWeek(ctx, week)
	if err != nil {
		handleServiceError(w, err, "workouts in week")
		return
	}

	pkg.WriteJSON(w, WeekWorkoutsResponse{
		Week:     week,
		Workouts: list,
		Volume:   workouts.TotalVolume(list),
	}, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	query := r.URL.Query()
	params := workouts.LibraryParams{
		Search: query.Get("q"),
	}
	if mgParam := query.Get("muscle_group"); mgParam != "" && mgParam != "all" {
		mg, ok := workouts.ParseMuscleGroup(mgParam)
		if !ok {
			http.Error(w, "invalid muscle group", http.StatusBadRequest)
			return
		}
		params.MuscleGroup = mg
	}

	exercises, err := handler.service.Library(ctx, params)
	if err != nil {
		handleServiceError(w, err, "list exercises")
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var exercise workouts.Exercise
	if !handler.decodeAndValidate(w, r, &exercise) {
		return
	}

	saved, created, err := handler.service.SaveExercise(ctx, exercise)
	if err != nil {
		handleServiceError(w, err, "save exercise")
		return
	}

	pkg.WriteJSON(w, saved, createdOrOK(created))
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	var exercise workouts.Exercise
	if !handler.decodeAndValidate(w, r, &exercise) {
		return
	}

	saved, err := handler.service.UpdateExercise(ctx, exercise)
	if err != nil {
		handleServiceError(w, err, "update exercise")
		return
	}

	pkg.WriteJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteExercise(ctx, id); err != nil {
		handleServiceError(w, err, "delete exercise")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	progress, err := handler.service.GoalsProgress(ctx)
	if err != nil {
		handleServiceError(w, err, "list goals")
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleGoalWeeks(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.weeks")
	defer span.End()

	pkg.WriteJSON(w, GoalWeeksResponse{
		Weeks:    handler.service.WeekOptions(),
		Template: handler.service.NewGoalTemplate(),
	}, http.StatusOK)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.new")
	defer span.End()

	var goal workouts.WeeklyGoal
	if !handler.decodeAndValidate(w, r, &goal) {
		return
	}

	saved, created, err := handler.service.SaveGoal(ctx, goal)
	if err != nil {
		handleServiceError(w, err, "save goal")
		return
	}

	pkg.WriteJSON(w, saved, createdOrOK(created))
}

func (handler *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	var goal workouts.WeeklyGoal
	if !handler.decodeAndValidate(w, r, &goal) {
		return
	}

	saved, err := handler.service.UpdateGoal(ctx, goal)
	if err != nil {
		handleServiceError(w, err, "update goal")
		return
	}

	pkg.WriteJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteGoal(ctx, id); err != nil {
		handleServiceError(w, err, "delete goal")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	records, err := handler.service.Records(ctx)
	if err != nil {
		handleServiceError(w, err, "list records")
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleRebuildRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.rebuild")
	defer span.End()

	records, err := handler.service.RebuildRecords(ctx)
	if err != nil {
		handleServiceError(w, err, "rebuild records")
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		handleServiceError(w, err, "dashboard")
		return
	}

	pkg.WriteJSON(w, dashboard, http.StatusOK)
}

func (handler *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal request body: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := handler.validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			http.Error(w, "validation failed: "+validationErrs.Error(), http.StatusBadRequest)
			return false
		}
		log.Errorf("validate request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}

	return true
}

func handleServiceError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMissingID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrCorruptState):
		log.Errorf("%s: %s", action, err)
		http.Error(w, "stored state is corrupt", http.StatusInternalServerError)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func createdOrOK(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
