package workouts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyWorkoutPlan = errors.New("workout plan has no main exercises")
	ErrInvalidExercise  = errors.New("exercise is missing sets, reps or a parseable rest duration")
	ErrInvalidWeight    = errors.New("profile weight must be a positive number")
)

// ClassifyIntensity scores a generated plan's main workout and maps the
// mean score to a qualitative load. Per exercise:
//
//	volumeScore = sets * reps / 10
//	restScore   = 60 / restSeconds
//	score       = (volumeScore + restScore) / 2
//
// Plan score <= 1.5 is low, <= 2.5 moderate, anything above high. An empty
// exercise list is rejected rather than averaged into NaN.
func ClassifyIntensity(plan WorkoutPlan) (string, error) {
	if len(plan.MainWorkout) == 0 {
		return "", ErrEmptyWorkoutPlan
	}

	var total float64
	for _, ex := range plan.MainWorkout {
		sets, err := parseCount(ex.Sets)
		if err != nil {
			return "", fmt.Errorf("%s sets: %w", ex.Exercise, ErrInvalidExercise)
		}
		reps, err := parseCount(ex.Reps)
		if err != nil {
			return "", fmt.Errorf("%s reps: %w", ex.Exercise, ErrInvalidExercise)
		}
		restSeconds, err := parseRestSeconds(ex.Rest)
		if err != nil {
			return "", fmt.Errorf("%s rest: %w", ex.Exercise, ErrInvalidExercise)
		}

		volumeScore := float64(sets*reps) / 10
		restScore := 60 / float64(restSeconds)
		total += (volumeScore + restScore) / 2
	}

	avg := total / float64(len(plan.MainWorkout))
	switch {
	case avg <= 1.5:
		return IntensityLow, nil
	case avg <= 2.5:
		return IntensityModerate, nil
	default:
		return IntensityHigh, nil
	}
}

// parseCount parses a positive integer like "3" or " 12 ".
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("non-positive count %d", n)
	}
	return n, nil
}

// parseRestSeconds extracts the leading number from values like
// "60 seconds" or "90s".
func parseRestSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no leading number in %q", s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("non-positive rest %d", n)
	}
	return n, nil
}

// --- Recovery ---

type RecoveryProfile struct {
	Weight float64 `json:"weight"`
}

type StretchingRoutine struct {
	Warmup   []string `json:"warmup"`
	Cooldown []string `json:"cooldown"`
}

type NutritionTargets struct {
	RecommendedCalories int `json:"recommended_calories"`
	ProteinTarget       int `json:"protein_target"`
	HydrationTarget     int `json:"hydration_target"`
}

type RecoveryPlan struct {
	Intensity           string            `json:"intensity"`
	RecommendedRestDays int               `json:"recommended_rest_days"`
	StretchingRoutine   StretchingRoutine `json:"stretching_routine"`
	NutritionTips       NutritionTargets  `json:"nutrition_tips"`
	RecoveryActivities  []string          `json:"recovery_activities"`
}

// Stretch lookup keyed by body region.
var standardStretches = map[string][]string{
	"upper": {"Arm circles", "Shoulder rolls", "Neck rotations"},
	"lower": {"Leg swings", "Ankle rotations", "Calf stretches"},
	"full":  {"Child's pose", "Cat-cow stretch", "Downward dog"},
}

var recoveryActivities = map[string][]string{
	IntensityHigh:     {"Light walking", "Gentle yoga", "Swimming"},
	IntensityModerate: {"Dynamic stretching", "Light cardio", "Mobility work"},
	IntensityLow:      {"Normal daily activities", "Light stretching"},
}

// BuildRecoveryPlan derives deterministic post-workout recommendations
// from the plan's intensity and the user's weight. No AI call involved.
func BuildRecoveryPlan(plan WorkoutPlan, profile RecoveryProfile) (*RecoveryPlan, error) {
	intensity, err := ClassifyIntensity(plan)
	if err != nil {
		return nil, err
	}
	if profile.Weight <= 0 || math.IsNaN(profile.Weight) || math.IsInf(profile.Weight, 0) {
		return nil, ErrInvalidWeight
	}

	restDays := 0
	multiplier := 1.0
	switch intensity {
	case IntensityHigh:
		restDays = 2
		multiplier = 1.2
	case IntensityModerate:
		restDays = 1
		multiplier = 1.1
	}

	baseCalories := profile.Weight * 15

	return &RecoveryPlan{
		Intensity:           intensity,
		RecommendedRestDays: restDays,
		StretchingRoutine: StretchingRoutine{
			Warmup:   standardStretches["full"],
			Cooldown: append(append([]string{}, standardStretches["upper"]...), standardStretches["lower"]...),
		},
		NutritionTips: NutritionTargets{
			RecommendedCalories: int(math.Round(baseCalories * multiplier)),
			ProteinTarget:       int(math.Round(profile.Weight * 2)),
			HydrationTarget:     int(math.Round(profile.Weight * 0.03)),
		},
		RecoveryActivities: recoveryActivities[intensity],
	}, nil
}
