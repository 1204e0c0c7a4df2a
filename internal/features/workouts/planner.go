package workouts

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/candemir/vitalis-backend/internal/ai"
)

const plannerSystemPrompt = `You are a certified personal trainer. Create workout plans tailored to the user's profile.
Format the response as a JSON object with the following structure:
{
  "warmup": [{"exercise": "", "duration": "", "intensity": ""}],
  "mainWorkout": [{"exercise": "", "sets": "", "reps": "", "rest": ""}],
  "cooldown": [{"exercise": "", "duration": ""}],
  "totalDuration": "",
  "difficultyLevel": "",
  "notes": []
}
Return ONLY the JSON object, no extra text.`

func buildPlannerPrompt(profile GenerateProfile) string {
	var b strings.Builder
	b.WriteString("Create a personalized workout plan for a user with the following profile:\n")
	fmt.Fprintf(&b, "- Fitness Level: %s\n", profile.FitnessLevel)
	fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(profile.Goals, ", "))
	fmt.Fprintf(&b, "- Available Equipment: %s\n", strings.Join(profile.Equipment, ", "))
	fmt.Fprintf(&b, "- Time Available: %d minutes\n", profile.TimeAvailable)
	fmt.Fprintf(&b, "- Injuries/Limitations: %s\n", strings.Join(profile.Limitations, ", "))
	return b.String()
}

// ParseWorkoutPlan decodes model output into the documented plan shape.
// A decodable object with an empty main workout still counts as a parse
// failure: such a plan carries nothing to train with.
func ParseWorkoutPlan(content string) (*WorkoutPlan, error) {
	var plan WorkoutPlan
	if err := ai.DecodeJSON(content, &plan); err != nil {
		return nil, err
	}
	if len(plan.MainWorkout) == 0 {
		return nil, ErrEmptyWorkoutPlan
	}
	return &plan, nil
}

// DefaultWorkoutPlan is the fixed substitute used whenever the generative
// collaborator is unreachable or returns unparseable content.
func DefaultWorkoutPlan() WorkoutPlan {
	return WorkoutPlan{
		Warmup: []WarmupStep{
			{Exercise: "Light stretching", Duration: "5 minutes", Intensity: "low"},
		},
		MainWorkout: []PlanExercise{
			{Exercise: "Bodyweight exercises", Sets: "3", Reps: "10", Rest: "60 seconds"},
		},
		Cooldown: []CooldownStep{
			{Exercise: "Walking", Duration: "5 minutes"},
		},
		TotalDuration:   "30 minutes",
		DifficultyLevel: "moderate",
		Notes: []string{
			"Please consult with a healthcare provider before starting any new exercise routine",
		},
	}
}

// GeneratePlan asks the AI collaborator for a plan and substitutes the
// default on any upstream or parse failure. Upstream trouble never fails
// the request.
func (s *WorkoutService) GeneratePlan(ctx context.Context, profile GenerateProfile) WorkoutPlan {
	content, err := s.aiClient.Complete(ctx, plannerSystemPrompt, buildPlannerPrompt(profile))
	if err != nil {
		slog.Warn("workout plan generation failed, using default plan", "error", err)
		return DefaultWorkoutPlan()
	}

	plan, err := ParseWorkoutPlan(content)
	if err != nil {
		slog.Warn("workout plan response unparseable, using default plan", "error", err)
		return DefaultWorkoutPlan()
	}
	return *plan
}

// planToExercises converts the string-typed AI plan into the numeric
// exercise list stored on a Workout. Unparseable entries are kept with
// zero counts rather than dropped, so the user still sees them.
func planToExercises(plan WorkoutPlan) []Exercise {
	out := make([]Exercise, 0, len(plan.MainWorkout))
	for _, ex := range plan.MainWorkout {
		sets, _ := parseCount(ex.Sets)
		reps, _ := parseCount(ex.Reps)
		out = append(out, Exercise{
			Name:  ex.Exercise,
			Sets:  sets,
			Reps:  reps,
			Notes: "rest " + ex.Rest,
		})
	}
	return out
}

// planDurationMinutes extracts the leading number from "30 minutes".
func planDurationMinutes(totalDuration string) int {
	fields := strings.Fields(strings.TrimSpace(totalDuration))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
