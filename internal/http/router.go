package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers
	health := NewHealthController(cfg.Store, cfg.Version)
	entriesController := NewEntriesController(cfg.Store)
	profileController := NewProfileController(cfg.Store)
	medicinesController := NewMedicinesController(cfg.Store)
	exportController := NewExportController(cfg.Store)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Daily entry endpoints
	router.GET("/api/entries", entriesController.ListEntries)
	router.GET("/api/entries/:date", entriesController.GetEntry)
	router.PUT("/api/entries/:date", entriesController.UpsertEntry)

	// Profile endpoints
	router.GET("/api/profile", profileController.GetProfile)
	router.PUT("/api/profile", profileController.UpdateProfile)

	// Medicine endpoints
	router.GET("/api/medicines", medicinesController.ListMedicines)
	router.POST("/api/medicines", medicinesController.CreateMedicine)
	router.GET("/api/medicines/:id", medicinesController.GetMedicine)
	router.PATCH("/api/medicines/:id", medicinesController.UpdateMedicine)
	router.DELETE("/api/medicines/:id", medicinesController.DeleteMedicine)
	router.POST("/api/medicines/:id/doses", medicinesController.RecordDose)
	router.GET("/api/doses", medicinesController.DoseHistory)

	// Analytics endpoints
	if cfg.Engine != nil {
		analyticsController := NewAnalyticsController(cfg.Engine)
		router.GET("/api/analytics/summary", analyticsController.Summary)
		router.GET("/api/analytics/chart", analyticsController.Chart)
		router.GET("/api/analytics/averages", analyticsController.Averages)
		router.GET("/api/analytics/insights", analyticsController.Insights)
		router.GET("/api/analytics/achievements", analyticsController.Achievements)
	}

	// Export endpoints
	router.GET("/api/export/entries", exportController.ExportEntries)

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
