package http

import (
	"github.com/vitalog/vitalog/internal/analytics"
	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Store  *database.Store
	Engine *analytics.Engine

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
