package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/analytics"
)

// AnalyticsController exposes the derived-statistics endpoints.
type AnalyticsController struct {
	engine *analytics.Engine
}

func NewAnalyticsController(engine *analytics.Engine) *AnalyticsController {
	return &AnalyticsController{engine: engine}
}

// Summary returns today's totals plus week-over-week averages and trend.
// GET /api/analytics/summary
func (ac *AnalyticsController) Summary(c *gin.Context) {
	summary, err := ac.engine.SummaryStats(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "analytics summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Chart returns a dense per-day series ending today.
// GET /api/analytics/chart?days=7
func (ac *AnalyticsController) Chart(c *gin.Context) {
	days, ok := parseQueryInt(c, "days", 7)
	if !ok {
		return
	}

	points, err := ac.engine.ChartSeries(c.Request.Context(), days)
	if err != nil {
		respondStoreError(c, err, "analytics chart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "points": points})
}

// Averages returns per-metric averages over an inclusive date range.
// GET /api/analytics/averages?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ac *AnalyticsController) Averages(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		respondBadRequest(c, "start and end are required")
		return
	}

	averages, err := ac.engine.AveragesOverRange(c.Request.Context(), start, end)
	if err != nil {
		respondStoreError(c, err, "analytics averages")
		return
	}
	c.JSON(http.StatusOK, averages)
}

// Insights returns goal-progress messages for today.
// GET /api/analytics/insights
func (ac *AnalyticsController) Insights(c *gin.Context) {
	insights, err := ac.engine.DailyInsights(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "analytics insights")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// Achievements returns the badges earned over the last 30 days.
// GET /api/analytics/achievements
func (ac *AnalyticsController) Achievements(c *gin.Context) {
	badges, err := ac.engine.CurrentAchievements(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "analytics achievements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": badges})
}
