// ABOUTME: Reads sensor packages into trainings and reports their summaries.
// ABOUTME: Validates codes and value counts, then renders each result in order.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/report"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// packageNamespace scopes package IDs so equal inputs always map to the same UUID.
var packageNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/harperreed/ftracker/package"))

// Package is one (code, values) pair received from the sensor block.
type Package struct {
	Code string    `json:"code" yaml:"code"`
	Data []float64 `json:"data" yaml:"data"`
}

// ID returns a deterministic UUID derived from the code and values.
func (p Package) ID() uuid.UUID {
	vals := make([]string, len(p.Data))
	for i, v := range p.Data {
		vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return uuid.NewSHA1(packageNamespace, []byte(p.Code+":"+strings.Join(vals, ",")))
}

// DefaultPackages returns the built-in sample readings.
func DefaultPackages() []Package {
	return []Package{
		{Code: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// ReadPackage validates data against the layout for code and builds the training.
func ReadPackage(code string, data []float64) (models.Training, error) {
	t, ok := Lookup(code)
	if !ok {
		return nil, &PackageError{Code: code, Got: len(data), Err: ErrUnknownWorkoutType}
	}
	if len(data) != t.Arity() {
		return nil, &PackageError{Code: code, Want: t.Arity(), Got: len(data), Err: ErrInvalidPackage}
	}
	for i, f := range t.Fields {
		if reason := checkValue(f, data[i]); reason != "" {
			return nil, &PackageError{
				Code:   code,
				Want:   t.Arity(),
				Got:    len(data),
				Field:  f.Name,
				Value:  data[i],
				Reason: reason,
				Err:    ErrInvalidPackage,
			}
		}
	}
	return t.build(data), nil
}

// checkValue reports why v cannot be used for field f, or "" when it can.
// Counts must convert to int without wrapping; duration divides every speed.
func checkValue(f Field, v float64) string {
	switch {
	case f.Integer && (math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64):
		return "is out of range"
	case f.Integer && v != math.Trunc(v):
		return "must be a whole number"
	case f.Name == durationField && !(v > 0 && !math.IsInf(v, 1)):
		return "must be a positive number of hours"
	}
	return ""
}

// Summarize reads every package in order. A rejected package is skipped and
// its error collected; the remaining packages are still summarised.
func Summarize(pkgs []Package) ([]models.Summary, error) {
	summaries := make([]models.Summary, 0, len(pkgs))
	var errs []error
	for i, p := range pkgs {
		id := p.ID()
		training, err := ReadPackage(p.Code, p.Data)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Str("id", id.String()[:8]).Msg("package rejected")
			errs = append(errs, fmt.Errorf("package %d: %w", i, err))
			continue
		}
		log.Debug().Int("index", i).Str("id", id.String()[:8]).Str("code", p.Code).Msg("package read")
		summaries = append(summaries, models.Summary{
			ID:   id,
			Code: p.Code,
			Info: training.ShowTrainingInfo(),
		})
	}
	return summaries, errors.Join(errs...)
}

// Run summarises pkgs and writes them to w in the given format. Valid
// packages are always written, even when others were rejected.
func Run(w io.Writer, pkgs []Package, format report.Format) error {
	summaries, err := Summarize(pkgs)
	if werr := report.Write(w, format, summaries); werr != nil {
		return fmt.Errorf("write report: %w", werr)
	}
	return err
}

// LoadPackages decodes a YAML list of packages. An empty document yields no packages.
func LoadPackages(r io.Reader) ([]Package, error) {
	var pkgs []Package
	if err := yaml.NewDecoder(r).Decode(&pkgs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode packages: %w", err)
	}
	return pkgs, nil
}
