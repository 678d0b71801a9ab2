// Package mcp exposes the catalog service boundary to presentation layers
// as MCP tools and resources.
package mcp

import (
	"log/slog"

	"github.com/claude/gymkit/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(svc *catalog.Service, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("gymkit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("gymkit workout server. Browse the exercise catalog, resolve exercise media, generate constrained workouts, and record user workouts and completed-workout log entries."),
	)

	h := &handlers{svc: svc, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
		server.ServerTool{Tool: toolResolveMedia, Handler: h.resolveMedia},
		server.ServerTool{Tool: toolCreateWorkout, Handler: h.createWorkout},
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
		server.ServerTool{Tool: toolSetMediaOverride, Handler: h.setMediaOverride},
		server.ServerTool{Tool: toolGetScheduled, Handler: h.getScheduled},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resWorkoutCatalog, Handler: h.workoutCatalog},
		server.ServerResource{Resource: resWorkoutLog, Handler: h.workoutLog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	svc *catalog.Service
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"gymkit://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The canonical read-only exercise catalog with names, categories, and media keys"),
	mcp.WithMIMEType("application/json"),
)

var resWorkoutCatalog = mcp.NewResource(
	"gymkit://workout_catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("Bundled workouts plus user-created workouts"),
	mcp.WithMIMEType("application/json"),
)

var resWorkoutLog = mcp.NewResource(
	"gymkit://workout_log",
	"Workout Log",
	mcp.WithResourceDescription("Append-only log of completed workouts"),
	mcp.WithMIMEType("application/json"),
)
