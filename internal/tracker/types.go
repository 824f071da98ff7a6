// ABOUTME: Catalogue of supported training codes and their package layouts.
// ABOUTME: Maps RUN, WLK, and SWM to constructors and expected field lists.
package tracker

import (
	"sort"

	"github.com/harperreed/ftracker/internal/models"
)

// Workout codes sent by the sensor block.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

const durationField = "duration"

// Field describes one positional value of a package.
type Field struct {
	Name    string `json:"name"`
	Unit    string `json:"unit,omitempty"`
	Integer bool   `json:"integer,omitempty"`
}

// TrainingType describes how a package for one code is laid out and built.
type TrainingType struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`

	build func(v []float64) models.Training
}

// Arity is the exact number of values a package of this type carries.
func (t TrainingType) Arity() int {
	return len(t.Fields)
}

// withFields returns the common action, duration, and weight fields followed
// by extra. actionUnit names what the sensor counts.
func withFields(actionUnit string, extra ...Field) []Field {
	fields := []Field{
		{Name: "action", Unit: actionUnit, Integer: true},
		{Name: durationField, Unit: "h"},
		{Name: "weight", Unit: "kg"},
	}
	return append(fields, extra...)
}

func workout(v []float64) models.Workout {
	return models.Workout{
		Action:   int(v[0]),
		Duration: v[1],
		Weight:   v[2],
	}
}

var trainingTypes = map[string]TrainingType{
	CodeSwimming: {
		Code:   CodeSwimming,
		Name:   models.Swimming{}.Name(),
		Fields: withFields("strokes",
			Field{Name: "length_pool", Unit: "m"},
			Field{Name: "count_pool", Integer: true},
		),
		build: func(v []float64) models.Training {
			return models.Swimming{Workout: workout(v), LengthPool: v[3], CountPool: int(v[4])}
		},
	},
	CodeRunning: {
		Code:   CodeRunning,
		Name:   models.Running{}.Name(),
		Fields: withFields("steps"),
		build: func(v []float64) models.Training {
			return models.Running{Workout: workout(v)}
		},
	},
	CodeWalking: {
		Code:   CodeWalking,
		Name:   models.SportsWalking{}.Name(),
		Fields: withFields("steps", Field{Name: "height", Unit: "cm"}),
		build: func(v []float64) models.Training {
			return models.SportsWalking{Workout: workout(v), Height: v[3]}
		},
	},
}

// Lookup returns the training type registered for code.
func Lookup(code string) (TrainingType, bool) {
	t, ok := trainingTypes[code]
	return t, ok
}

// TrainingTypes returns every supported type ordered by code.
func TrainingTypes() []TrainingType {
	types := make([]TrainingType, 0, len(trainingTypes))
	for _, t := range trainingTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Code < types[j].Code
	})
	return types
}
