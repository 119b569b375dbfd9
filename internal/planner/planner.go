// Package planner turns a user's onboarding preferences and the exercise
// catalog into a multi-week, dated workout plan.
package planner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"pulsefit/fitness-app/internal/dates"
	"pulsefit/fitness-app/internal/domain"
)

// --- Error Definitions ---
var (
	ErrNoMatchingExercises = errors.New("no exercises match the given goal, level and equipment")
	ErrUnsupportedSchedule = errors.New("unsupported days-per-week value")
)

// DaySchedule is one generated day of the plan: a named session with its
// selected exercises and the calendar dates it repeats on.
type DaySchedule struct {
	DayKey    string                  `json:"dayKey"`
	Name      string                  `json:"name"`
	DayOfWeek domain.DayOfWeek        `json:"dayOfWeek"`
	Muscles   []string                `json:"muscles"`
	Exercises []domain.ExerciseRecord `json:"exercises"`
	Dates     []string                `json:"dates"` // YYYY-MM-DD, one per plan week
}

// Plan is the full output of plan generation, before persistence.
type Plan struct {
	PlanName      string         `json:"planName"`
	DurationWeeks int            `json:"durationWeeks"`
	Params        TrainingParams `json:"params"`
	Days          []DaySchedule  `json:"plan"`
	Warnings      []string       `json:"warnings"`
}

// Generator runs the exercise-selection algorithm. The random source is
// injected so tests can pin the output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng falls back to a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces a plan for the given preferences and catalog, with dated
// sessions starting on or after startDate.
func (g *Generator) Generate(prefs domain.Preferences, catalog []domain.ExerciseRecord, startDate time.Time) (*Plan, error) {
	categories, ok := goalCategories[prefs.Goal]
	if !ok {
		return nil, fmt.Errorf("unknown goal %q", prefs.Goal)
	}
	params := goalParams[prefs.Goal]

	filtered := filterCatalog(catalog, prefs, categories)
	if len(filtered) == 0 {
		return nil, ErrNoMatchingExercises
	}

	// Exercises at the user's exact level sort first; the rest keep catalog order.
	exact := string(prefs.Level)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Level == exact && filtered[j].Level != exact
	})

	split, ok := splits[prefs.DaysPerWeek]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchedule, prefs.DaysPerWeek)
	}
	weekdays := splitWeekdays[prefs.DaysPerWeek]

	weeks := lookupWeeks(prefs.Goal, prefs.Level)
	plan := &Plan{
		PlanName:      planName(prefs.Goal, weeks),
		DurationWeeks: weeks,
		Params:        params,
	}

	if len(split) > prefs.DaysPerWeek {
		split = split[:prefs.DaysPerWeek]
	}

	totalExercises := 0
	for i, day := range split {
		selected := g.selectForDay(filtered, day.Muscles)
		totalExercises += len(selected)

		switch {
		case len(selected) == 0:
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("no exercises could be selected for %s; try adding equipment", day.Name))
		case len(selected) < 3:
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("only %d exercise(s) selected for %s", len(selected), day.Name))
		}

		weekday := weekdays[i]
		plan.Days = append(plan.Days, DaySchedule{
			DayKey:    day.Key,
			Name:      day.Name,
			DayOfWeek: domain.DayOfWeekFromTime(weekday),
			Muscles:   day.Muscles,
			Exercises: selected,
			Dates:     sessionDates(startDate, weekday, weeks),
		})
	}

	if totalExercises < prefs.DaysPerWeek*3 {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("plan is light: %d exercises across %d days", totalExercises, prefs.DaysPerWeek))
	}

	return plan, nil
}

// filterCatalog keeps exercises acceptable under the level cascade, matching
// the user's equipment, and belonging to the goal's categories.
func filterCatalog(catalog []domain.ExerciseRecord, prefs domain.Preferences, categories []string) []domain.ExerciseRecord {
	levels := acceptedLevels[prefs.Level]

	var out []domain.ExerciseRecord
	for _, ex := range catalog {
		if !containsFold(levels, ex.Level) {
			continue
		}
		if !equipmentOK(ex.Equipment, prefs) {
			continue
		}
		if !containsFold(categories, ex.Category) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// equipmentOK accepts no-equipment exercises for everyone.
func equipmentOK(equipment string, prefs domain.Preferences) bool {
	switch strings.ToLower(equipment) {
	case "", "none", "body only":
		return true
	}
	for _, e := range prefs.Equipment {
		if strings.EqualFold(e, equipment) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// selectForDay gathers exercises for each target muscle, primary matches
// before secondary, capped per muscle so every muscle gets a share of the
// day's budget, deduplicated by id, and truncated to maxExercisesPerDay.
func (g *Generator) selectForDay(pool []domain.ExerciseRecord, muscles []string) []domain.ExerciseRecord {
	perMuscleCap := int(math.Ceil(float64(maxExercisesPerDay) / float64(len(muscles))))

	var selected []domain.ExerciseRecord
	seen := make(map[string]bool)

	for _, muscle := range muscles {
		var primary, secondary []domain.ExerciseRecord
		primaryIDs := make(map[string]bool)
		for _, ex := range pool {
			if ex.TargetsPrimary(muscle) {
				primary = append(primary, ex)
				primaryIDs[ex.ID] = true
			}
		}
		for _, ex := range pool {
			if !primaryIDs[ex.ID] && ex.TargetsSecondary(muscle) {
				secondary = append(secondary, ex)
			}
		}

		picked := g.sample(primary, perMuscleCap)
		if len(picked) < perMuscleCap {
			picked = append(picked, g.sample(secondary, perMuscleCap-len(picked))...)
		}

		for _, ex := range picked {
			if !seen[ex.ID] {
				seen[ex.ID] = true
				selected = append(selected, ex)
			}
		}
	}

	if len(selected) > maxExercisesPerDay {
		selected = g.sample(selected, maxExercisesPerDay)
	}
	return selected
}

// sample returns up to n elements chosen uniformly without replacement.
func (g *Generator) sample(list []domain.ExerciseRecord, n int) []domain.ExerciseRecord {
	if n <= 0 || len(list) == 0 {
		return nil
	}
	if len(list) <= n {
		out := make([]domain.ExerciseRecord, len(list))
		copy(out, list)
		return out
	}
	out := make([]domain.ExerciseRecord, 0, n)
	for _, idx := range g.rng.Perm(len(list))[:n] {
		out = append(out, list[idx])
	}
	return out
}

// sessionDates returns the weekly dates for a session: the first occurrence of
// the weekday on or after startDate, then 7-day increments for each plan week.
func sessionDates(startDate time.Time, weekday time.Weekday, weeks int) []string {
	first := dates.NextWeekday(startDate, weekday)
	out := make([]string, 0, weeks)
	for w := 0; w < weeks; w++ {
		out = append(out, dates.Format(first.AddDate(0, 0, 7*w)))
	}
	return out
}

func lookupWeeks(goal domain.Goal, level domain.Level) int {
	if byLevel, ok := planWeeks[goal]; ok {
		if weeks, ok := byLevel[level]; ok {
			return weeks
		}
	}
	return defaultPlanWeeks
}

// planName renders e.g. "2 Month Muscle Gain Program" from the goal and the
// plan duration rounded to months.
func planName(goal domain.Goal, weeks int) string {
	months := int(math.Round(float64(weeks) / 4))
	if months < 1 {
		months = 1
	}
	return fmt.Sprintf("%d Month %s Program", months, titleCase(string(goal)))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
