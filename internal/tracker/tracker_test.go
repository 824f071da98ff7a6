// ABOUTME: Tests for package dispatch, validation, and report runs.
// ABOUTME: Covers known codes, arity errors, unknown codes, and determinism.
package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	swimLine = "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000."
	runLine  = "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805."
	walkLine = "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252."
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
		want models.Training
	}{
		{
			name: "running",
			code: "RUN",
			data: []float64{15000, 1, 75},
			want: models.Running{Workout: models.Workout{Action: 15000, Duration: 1, Weight: 75}},
		},
		{
			name: "walking",
			code: "WLK",
			data: []float64{9000, 1, 75, 180},
			want: models.SportsWalking{Workout: models.Workout{Action: 9000, Duration: 1, Weight: 75}, Height: 180},
		},
		{
			name: "swimming",
			code: "SWM",
			data: []float64{720, 1, 80, 25, 40},
			want: models.Swimming{Workout: models.Workout{Action: 720, Duration: 1, Weight: 80}, LengthPool: 25, CountPool: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPackage(tt.code, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPackageRunningCalories(t *testing.T) {
	training, err := ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)

	speed := 15000 * 0.65 / 1000 / 1.0
	expected := (18*speed + 1.79) * 75 / 1000 * 1 * 60
	assert.InDelta(t, expected, training.SpentCalories(), 1e-9)
}

func TestReadPackageSwimmingSpeed(t *testing.T) {
	training, err := ReadPackage("SWM", []float64{720, 2, 80, 50, 30})
	require.NoError(t, err)

	assert.InDelta(t, 0.75, training.MeanSpeed(), 1e-12)
	assert.InDelta(t, 0.9936, training.Distance(), 1e-12)
}

func TestReadPackageUnknownCode(t *testing.T) {
	for _, code := range []string{"", "XYZ", "run", "SWIM"} {
		t.Run(code, func(t *testing.T) {
			_, err := ReadPackage(code, []float64{1, 2, 3})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownWorkoutType))
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.False(t, errors.Is(err, ErrInvalidPackage))

			var pe *PackageError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, code, pe.Code)
		})
	}
}

func TestReadPackageWrongArity(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want int
	}{
		{code: "RUN", data: []float64{15000, 1}, want: 3},
		{code: "RUN", data: []float64{15000, 1, 75, 180}, want: 3},
		{code: "WLK", data: []float64{9000, 1, 75}, want: 4},
		{code: "SWM", data: []float64{720, 1, 80, 25}, want: 5},
		{code: "SWM", data: nil, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPackage))
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var pe *PackageError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.want, pe.Want)
			assert.Equal(t, len(tt.data), pe.Got)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestReadPackageFractionalCount(t *testing.T) {
	_, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackage))
	assert.Contains(t, err.Error(), "count_pool")

	_, err = ReadPackage("RUN", []float64{100.25, 1, 75})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action")
}

func TestReadPackageCountOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		data  []float64
		field string
	}{
		{name: "huge action", code: "RUN", data: []float64{1e19, 1, 75}, field: "action"},
		{name: "infinite action", code: "RUN", data: []float64{math.Inf(1), 1, 75}, field: "action"},
		{name: "negative infinite action", code: "WLK", data: []float64{math.Inf(-1), 1, 75, 180}, field: "action"},
		{name: "huge count_pool", code: "SWM", data: []float64{720, 1, 80, 25, -1e19}, field: "count_pool"},
		{name: "two to the 63", code: "RUN", data: []float64{math.Exp2(63), 1, 75}, field: "action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			training, err := ReadPackage(tt.code, tt.data)
			require.Error(t, err)
			assert.Nil(t, training)
			assert.True(t, errors.Is(err, ErrInvalidPackage))

			var pe *PackageError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
			assert.Contains(t, err.Error(), "out of range")
		})
	}
}

func TestReadPackageInvalidDuration(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ReadPackage("RUN", []float64{15000, d, 75})
		require.Error(t, err, "duration %g", d)
		assert.True(t, errors.Is(err, ErrInvalidPackage))

		var pe *PackageError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "duration", pe.Field)
	}

	_, err := ReadPackage("SWM", []float64{720, 0, 80, 25, 40})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be a positive number of hours")

	_, err = ReadPackage("RUN", []float64{15000, 0.5, 75})
	assert.NoError(t, err)
}

func TestRunSkipsZeroDuration(t *testing.T) {
	pkgs := []Package{
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "RUN", Data: []float64{15000, 0, 75}},
	}

	var text bytes.Buffer
	err := Run(&text, pkgs, report.FormatText)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackage))
	assert.Equal(t, runLine+"\n", text.String())
	assert.NotContains(t, text.String(), "Inf")
	assert.NotContains(t, text.String(), "NaN")

	var out bytes.Buffer
	err = Run(&out, pkgs, report.FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackage))

	var data report.Data
	require.NoError(t, json.Unmarshal(out.Bytes(), &data))
	require.Len(t, data.Workouts, 1)
	assert.Equal(t, runLine, data.Workouts[0].Message)
}

func TestTrainingTypeNames(t *testing.T) {
	samples := map[string][]float64{
		CodeRunning:  {15000, 1, 75},
		CodeWalking:  {9000, 1, 75, 180},
		CodeSwimming: {720, 1, 80, 25, 40},
	}
	for _, tt := range TrainingTypes() {
		training, err := ReadPackage(tt.Code, samples[tt.Code])
		require.NoError(t, err)
		assert.Equal(t, training.Name(), tt.Name, tt.Code)
	}
}

func TestTrainingTypes(t *testing.T) {
	types := TrainingTypes()
	require.Len(t, types, 3)

	got := map[string]int{}
	for i, tt := range types {
		got[tt.Code] = tt.Arity()
		if i > 0 && types[i-1].Code >= tt.Code {
			t.Errorf("TrainingTypes not sorted: %s before %s", types[i-1].Code, tt.Code)
		}
	}
	assert.Equal(t, map[string]int{"RUN": 3, "WLK": 4, "SWM": 5}, got)

	swm, ok := Lookup("SWM")
	require.True(t, ok)
	assert.Equal(t, "Swimming", swm.Name)
	assert.Equal(t, "count_pool", swm.Fields[4].Name)
}

func TestPackageID(t *testing.T) {
	a := Package{Code: "RUN", Data: []float64{15000, 1, 75}}
	b := Package{Code: "RUN", Data: []float64{15000, 1, 75}}
	c := Package{Code: "RUN", Data: []float64{15000, 1, 76}}

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.Equal(t, 5, int(a.ID().Version()))
}

func TestSummarize(t *testing.T) {
	summaries, err := Summarize(DefaultPackages())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, swimLine, summaries[0].Info.Message())
	assert.Equal(t, runLine, summaries[1].Info.Message())
	assert.Equal(t, walkLine, summaries[2].Info.Message())
	assert.Equal(t, "SWM", summaries[0].Code)
}

func TestSummarizeSkipsInvalid(t *testing.T) {
	pkgs := []Package{
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "BIKE", Data: []float64{1, 2, 3}},
		{Code: "WLK", Data: []float64{9000, 1}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	summaries, err := Summarize(pkgs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownWorkoutType))
	assert.True(t, errors.Is(err, ErrInvalidPackage))
	assert.Contains(t, err.Error(), "package 1")
	assert.Contains(t, err.Error(), "package 2")

	require.Len(t, summaries, 2)
	assert.Equal(t, runLine, summaries[0].Info.Message())
	assert.Equal(t, walkLine, summaries[1].Info.Message())
}

func TestRunDefaultPackages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, DefaultPackages(), report.FormatText))

	assert.Equal(t, swimLine+"\n"+runLine+"\n"+walkLine+"\n", buf.String())
}

func TestRunIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Run(&first, DefaultPackages(), report.FormatJSON))
	require.NoError(t, Run(&second, DefaultPackages(), report.FormatJSON))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRunWritesValidPackagesOnError(t *testing.T) {
	var buf bytes.Buffer
	err := Run(&buf, []Package{
		{Code: "XYZ", Data: []float64{1}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
	}, report.FormatText)

	require.Error(t, err)
	assert.Equal(t, runLine+"\n", buf.String())
}

func TestLoadPackages(t *testing.T) {
	input := `
- code: SWM
  data: [720, 1, 80, 25, 40]
- code: RUN
  data: [15000, 1, 75]
`
	pkgs, err := LoadPackages(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, Package{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}}, pkgs[0])
	assert.Equal(t, Package{Code: "RUN", Data: []float64{15000, 1, 75}}, pkgs[1])
}

func TestLoadPackagesEmpty(t *testing.T) {
	pkgs, err := LoadPackages(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestLoadPackagesInvalid(t *testing.T) {
	_, err := LoadPackages(strings.NewReader("code: [unclosed"))
	assert.Error(t, err)
}
