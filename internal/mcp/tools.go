package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/claude/gymkit/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// splitList turns a comma-separated parameter value into trimmed items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// --- Tool definitions ---

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate a workout from the exercise catalog under the given constraints. Omitted constraints use defaults (60 minutes, weights, moderate intensity, full body, balanced goals, moderate experience)."),
	mcp.WithNumber("length_minutes", mcp.Description("Workout length in minutes. Defaults to 60.")),
	mcp.WithString("workout_types", mcp.Description("Comma-separated workout types (e.g. 'weights, HIIT, yoga'). Defaults to 'weights'.")),
	mcp.WithString("intensity", mcp.Description("Training intensity. Defaults to 'moderate'."), mcp.Enum("recovery", "easy", "moderate", "hard")),
	mcp.WithString("body_parts", mcp.Description("Comma-separated target body parts (e.g. 'chest, arms'). Defaults to 'full body'.")),
	mcp.WithString("goals", mcp.Description("Comma-separated goals (e.g. 'fat loss, muscle mass'). Defaults to 'balanced'.")),
	mcp.WithString("experience", mcp.Description("Experience level. Defaults to 'moderate'."), mcp.Enum("novice", "moderate", "advanced")),
)

var toolResolveMedia = mcp.NewTool("resolve_media",
	mcp.WithDescription("Resolve an exercise name to its media key and, when available, a media asset path (overrides take precedence over bundled assets)."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name (free-form; fuzzy-matched against the catalog)")),
)

var toolCreateWorkout = mcp.NewTool("create_workout",
	mcp.WithDescription("Create a user workout from catalog exercise names. The workout is appended to the user collection and persisted immediately."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Workout name")),
	mcp.WithString("category", mcp.Description("Workout category")),
	mcp.WithString("equipment", mcp.Description("Equipment summary")),
	mcp.WithNumber("duration_minutes", mcp.Description("Planned duration in minutes")),
	mcp.WithString("exercises", mcp.Description("Comma-separated exercise names; each is matched against the catalog")),
)

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Append a completed workout to the log and persist it."),
	mcp.WithString("workout_name", mcp.Required(), mcp.Description("Name of the completed workout")),
	mcp.WithNumber("duration_minutes", mcp.Description("How long the workout took, in minutes")),
	mcp.WithString("date", mcp.Description("Completion date (YYYY-MM-DD). Defaults to today.")),
)

var toolSetMediaOverride = mcp.NewTool("set_media_override",
	mcp.WithDescription("Record a replacement media path for a media key. Last write wins; the override map is persisted immediately."),
	mcp.WithString("media_key", mcp.Required(), mcp.Description("Media key to override")),
	mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path of the replacement asset")),
)

var toolGetScheduled = mcp.NewTool("get_scheduled_workouts",
	mcp.WithDescription("List scheduled workouts, optionally for a single date."),
	mcp.WithString("date", mcp.Description("Date filter (YYYY-MM-DD). Omit to list the whole schedule.")),
)

// --- Tool handlers ---

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	constraints := models.WorkoutConstraints{
		LengthMinutes: req.GetInt("length_minutes", 0),
		WorkoutTypes:  splitList(req.GetString("workout_types", "")),
		Intensity:     req.GetString("intensity", ""),
		BodyParts:     splitList(req.GetString("body_parts", "")),
		Goals:         splitList(req.GetString("goals", "")),
		Experience:    req.GetString("experience", ""),
	}

	workout := h.svc.Generate(constraints)

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) resolveMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	key := h.svc.ResolveMediaKey(name)
	path, found := h.svc.MediaPath(name)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"mediaKey": key,
		"path":     path,
		"found":    found,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) createWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	var exercises []models.Exercise
	for _, exName := range splitList(req.GetString("exercises", "")) {
		exercises = append(exercises, models.Exercise{
			Name:     exName,
			MediaKey: h.svc.ResolveMediaKey(exName),
		})
	}

	workout, err := h.svc.CreateUserWorkout(ctx, models.Workout{
		Name:            name,
		Category:        req.GetString("category", ""),
		Equipment:       req.GetString("equipment", ""),
		DurationMinutes: req.GetInt("duration_minutes", 0),
		Exercises:       exercises,
	})
	if err != nil {
		h.log.Error("mcp create_workout", "error", err)
		return mcp.NewToolResultError("persisting workout failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("workout_name")
	if err != nil {
		return mcp.NewToolResultError("workout_name parameter is required"), nil
	}

	entry := models.WorkoutLogEntry{
		WorkoutName:     name,
		DurationMinutes: req.GetInt("duration_minutes", 0),
	}
	if dateStr := req.GetString("date", ""); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD"), nil
		}
		entry.Date = date
	}

	if err := h.svc.LogWorkout(ctx, entry); err != nil {
		h.log.Error("mcp log_workout", "error", err)
		return mcp.NewToolResultError("persisting log entry failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("logged " + name), nil
}

func (h *handlers) setMediaOverride(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("media_key")
	if err != nil {
		return mcp.NewToolResultError("media_key parameter is required"), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	if err := h.svc.SetOverridePath(ctx, key, path); err != nil {
		h.log.Error("mcp set_media_override", "error", err)
		return mcp.NewToolResultError("persisting override failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("override recorded for " + key), nil
}

func (h *handlers) getScheduled(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scheduled := h.svc.ScheduledWorkouts()
	if dateStr := req.GetString("date", ""); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD"), nil
		}
		scheduled = h.svc.ScheduledFor(date)
	}

	result, err := mcp.NewToolResultJSON(scheduled)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
