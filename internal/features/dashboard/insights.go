package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/candemir/vitalis-backend/internal/ai"
)

const insightsSystemPrompt = `You are a fitness data analyst. Analyze the user's metrics and provide insights.
Format the response as a JSON object with the following structure:
{
  "observations": [],
  "trends": [],
  "recommendations": [],
  "areas_for_improvement": []
}
Return ONLY the JSON object, no extra text.`

// Insights is the documented shape the generative collaborator is asked
// to produce from the user's metrics.
type Insights struct {
	Observations        []string `json:"observations"`
	Trends              []string `json:"trends"`
	Recommendations     []string `json:"recommendations"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// metrics is what gets serialized into the analysis prompt.
type metrics struct {
	Summary          Summary  `json:"summary"`
	TotalWorkouts    int      `json:"total_workouts"`
	TotalGoals       int      `json:"total_goals"`
	RecentIntensity  []string `json:"recent_intensity"`
	RecentDurations  []int    `json:"recent_durations"`
	GoalCategories   []string `json:"goal_categories"`
	AvgProgressRatio float64  `json:"avg_progress_ratio"`
}

// ParseInsights decodes model output into the insights shape; a response
// with no observations at all is treated as unparseable.
func ParseInsights(content string) (*Insights, error) {
	var ins Insights
	if err := ai.DecodeJSON(content, &ins); err != nil {
		return nil, err
	}
	if len(ins.Observations) == 0 && len(ins.Trends) == 0 && len(ins.Recommendations) == 0 {
		return nil, errors.New("insights response is empty")
	}
	return &ins, nil
}

// DefaultInsights is the fixed substitute used whenever the generative
// collaborator fails.
func DefaultInsights() Insights {
	return Insights{
		Observations:        []string{"Insufficient data for detailed analysis"},
		Trends:              []string{"No trends identified"},
		Recommendations:     []string{"Continue regular exercise routine"},
		AreasForImprovement: []string{"Data collection consistency"},
	}
}

func (s *DashboardService) generateInsights(ctx context.Context, m metrics) Insights {
	payload, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return DefaultInsights()
	}

	prompt := "Analyze the following fitness metrics and provide insights:\n" + string(payload)

	raw, err := s.aiClient.Complete(ctx, insightsSystemPrompt, prompt)
	if err != nil {
		slog.Warn("insights generation failed, using default insights", "error", err)
		return DefaultInsights()
	}

	parsed, err := ParseInsights(raw)
	if err != nil {
		slog.Warn("insights response unparseable, using default insights", "error", err)
		return DefaultInsights()
	}
	return *parsed
}
