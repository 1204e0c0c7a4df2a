package workouts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/candemir/vitalis-backend/internal/features/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	content string
	err     error
}

func (s stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.content, s.err
}

const validPlanJSON = `{
  "warmup": [{"exercise": "Jumping jacks", "duration": "3 minutes", "intensity": "low"}],
  "mainWorkout": [
    {"exercise": "Squats", "sets": "4", "reps": "12", "rest": "45 seconds"},
    {"exercise": "Push-ups", "sets": "3", "reps": "15", "rest": "60 seconds"}
  ],
  "cooldown": [{"exercise": "Walking", "duration": "5 minutes"}],
  "totalDuration": "40 minutes",
  "difficultyLevel": "moderate",
  "notes": ["Keep your back straight"]
}`

func TestParseWorkoutPlan_PlainJSON(t *testing.T) {
	plan, err := workouts.ParseWorkoutPlan(validPlanJSON)
	require.NoError(t, err)

	require.Len(t, plan.MainWorkout, 2)
	assert.Equal(t, "Squats", plan.MainWorkout[0].Exercise)
	assert.Equal(t, "4", plan.MainWorkout[0].Sets)
	assert.Equal(t, "40 minutes", plan.TotalDuration)
	assert.Equal(t, "moderate", plan.DifficultyLevel)
}

func TestParseWorkoutPlan_FencedJSON(t *testing.T) {
	fenced := "```json\n" + validPlanJSON + "\n```"

	plan, err := workouts.ParseWorkoutPlan(fenced)
	require.NoError(t, err)
	assert.Len(t, plan.MainWorkout, 2)
}

func TestParseWorkoutPlan_SurroundingProse(t *testing.T) {
	chatty := "Here is your plan:\n" + validPlanJSON + "\nEnjoy!"

	plan, err := workouts.ParseWorkoutPlan(chatty)
	require.NoError(t, err)
	assert.Len(t, plan.MainWorkout, 2)
}

func TestParseWorkoutPlan_Garbage(t *testing.T) {
	_, err := workouts.ParseWorkoutPlan("sorry, I can't help with that")
	assert.Error(t, err)
}

func TestParseWorkoutPlan_EmptyMainWorkout(t *testing.T) {
	_, err := workouts.ParseWorkoutPlan(`{"mainWorkout": [], "totalDuration": "30 minutes"}`)
	assert.ErrorIs(t, err, workouts.ErrEmptyWorkoutPlan)
}

func TestGeneratePlan_UsesModelOutput(t *testing.T) {
	svc := workouts.NewWorkoutService(nil, stubCompleter{content: validPlanJSON})

	plan := svc.GeneratePlan(context.Background(), workouts.GenerateProfile{FitnessLevel: "beginner"})
	assert.Equal(t, "40 minutes", plan.TotalDuration)
	assert.Len(t, plan.MainWorkout, 2)
}

func TestGeneratePlan_FallsBackOnUpstreamError(t *testing.T) {
	svc := workouts.NewWorkoutService(nil, stubCompleter{err: errors.New("upstream down")})

	plan := svc.GeneratePlan(context.Background(), workouts.GenerateProfile{FitnessLevel: "beginner"})
	assert.Equal(t, workouts.DefaultWorkoutPlan(), plan)
}

func TestGeneratePlan_FallsBackOnGarbageOutput(t *testing.T) {
	svc := workouts.NewWorkoutService(nil, stubCompleter{content: "not json at all"})

	plan := svc.GeneratePlan(context.Background(), workouts.GenerateProfile{FitnessLevel: "advanced"})
	assert.Equal(t, workouts.DefaultWorkoutPlan(), plan)
}

func TestDefaultWorkoutPlan_ClassifiesModerate(t *testing.T) {
	intensity, err := workouts.ClassifyIntensity(workouts.DefaultWorkoutPlan())
	require.NoError(t, err)
	assert.Equal(t, workouts.IntensityModerate, intensity)
}
