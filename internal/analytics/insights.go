package analytics

import (
	"context"
	"fmt"

	"github.com/vitalog/vitalog/internal/entities"
)

// Goals are the daily targets insights and achievements are scored
// against.
type Goals struct {
	WaterML  float64 `json:"water_ml"`
	Calories float64 `json:"calories"`
	Steps    float64 `json:"steps"`
}

// GoalsFromProfile lifts the profile's daily targets.
func GoalsFromProfile(p entities.UserProfile) Goals {
	return Goals{
		WaterML:  float64(p.DailyWaterGoalML),
		Calories: float64(p.DailyCalorieGoal),
		Steps:    float64(p.DailyStepGoal),
	}
}

// Insight is one rule-generated coaching message.
type Insight struct {
	Type     string `json:"type"`     // "warning" | "success" | "motivation"
	Message  string `json:"message"`  // human-readable
	Category string `json:"category"` // "water" | "calories" | "steps" | "trend"
}

// metricRule drives the per-metric insight messages.
type metricRule struct {
	category string
	current  float64
	goal     float64
	lowMsg   string
	highMsg  string
}

// Insights generates deterministic coaching messages for a window:
// a warning below 50% progress, a success at 100% or more, nothing in
// between, followed by one motivational message when the trend is
// moving either way. Order is fixed: water, calories, steps, trend.
func Insights(current Averages, goals Goals, trend Trend) []Insight {
	rules := []metricRule{
		{
			category: "water",
			current:  current.Water,
			goal:     goals.WaterML,
			lowMsg:   "You're drinking less water than usual. Try keeping a bottle nearby!",
			highMsg:  "Great hydration! You're consistently meeting your water goal.",
		},
		{
			category: "calories",
			current:  current.Calories,
			goal:     goals.Calories,
			lowMsg:   "Your calorie intake is well below target. Make sure you're eating enough.",
			highMsg:  "You're right on track with your calorie goal. Keep it up!",
		},
		{
			category: "steps",
			current:  current.Steps,
			goal:     goals.Steps,
			lowMsg:   "Your step count has room to grow. A short walk can make a difference.",
			highMsg:  "Fantastic activity! You're hitting your step goal.",
		},
	}

	var insights []Insight
	for _, rule := range rules {
		progress := ProgressPercentage(rule.current, rule.goal)
		switch {
		case progress < 50:
			insights = append(insights, Insight{Type: "warning", Message: rule.lowMsg, Category: rule.category})
		case progress >= 100:
			insights = append(insights, Insight{Type: "success", Message: rule.highMsg, Category: rule.category})
		}
	}

	switch trend {
	case TrendImproving:
		insights = append(insights, Insight{
			Type:     "motivation",
			Message:  "Your progress is trending up compared to last week. Keep the momentum!",
			Category: "trend",
		})
	case TrendDeclining:
		insights = append(insights, Insight{
			Type:     "motivation",
			Message:  "Things dipped a little compared to last week. Small steps count!",
			Category: "trend",
		})
	}

	return insights
}

// Badge is one earned achievement.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Achievements awards a badge per metric goal met plus streak badges at
// 7 and 30 tracked days; both streak badges can fire at once.
func Achievements(current Averages, goals Goals) []Badge {
	var badges []Badge

	if goals.WaterML > 0 && current.Water >= goals.WaterML {
		badges = append(badges, Badge{
			ID:          "water_goal",
			Title:       "Hydration Hero",
			Description: "Met the daily water goal",
		})
	}
	if goals.Calories > 0 && current.Calories >= goals.Calories {
		badges = append(badges, Badge{
			ID:          "calorie_goal",
			Title:       "Balanced Eater",
			Description: "Met the daily calorie goal",
		})
	}
	if goals.Steps > 0 && current.Steps >= goals.Steps {
		badges = append(badges, Badge{
			ID:          "step_goal",
			Title:       "Step Master",
			Description: "Met the daily step goal",
		})
	}
	if current.DaysTracked >= 7 {
		badges = append(badges, Badge{
			ID:          "week_streak",
			Title:       "Week Warrior",
			Description: fmt.Sprintf("Tracked %d days in a row", current.DaysTracked),
		})
	}
	if current.DaysTracked >= 30 {
		badges = append(badges, Badge{
			ID:          "month_streak",
			Title:       "Monthly Master",
			Description: "A full month of consistent tracking",
		})
	}
	return badges
}

// DailyInsights is the convenience query the presentation layer calls:
// today's progress against the stored profile goals, with the weekly
// trend folded in.
func (e *Engine) DailyInsights(ctx context.Context) ([]Insight, error) {
	summary, err := e.SummaryStats(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := e.currentGoals(ctx)
	if err != nil {
		return nil, err
	}
	return Insights(summary.Today, goals, summary.Trend), nil
}

// CurrentAchievements scores the last 30 days against the stored
// profile goals.
func (e *Engine) CurrentAchievements(ctx context.Context) ([]Badge, error) {
	today := e.now()
	start := today.AddDate(0, 0, -29)

	window, err := e.AveragesOverRange(ctx,
		start.Format(entities.DateFormat),
		today.Format(entities.DateFormat))
	if err != nil {
		return nil, err
	}
	goals, err := e.currentGoals(ctx)
	if err != nil {
		return nil, err
	}
	return Achievements(window, goals), nil
}

func (e *Engine) currentGoals(ctx context.Context) (Goals, error) {
	profile, err := e.store.GetProfile(ctx)
	if err != nil {
		return Goals{}, err
	}
	if profile == nil {
		return Goals{}, nil
	}
	return GoalsFromProfile(*profile), nil
}
