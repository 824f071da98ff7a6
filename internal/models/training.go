// ABOUTME: Training models and per-type formulas for distance, speed, and calories.
// ABOUTME: Running, SportsWalking, and Swimming share a Workout base.
package models

const (
	LenStep     = 0.65 // metres per step, running and walking
	SwimLenStep = 1.38 // metres per stroke
	MInKm       = 1000
	MinInHour   = 60

	// Running
	RunSpeedMultiplier = 18
	RunSpeedShift      = 1.79

	// Sports walking
	WalkWeightMultiplier      = 0.035
	WalkSpeedHeightMultiplier = 0.029
	KmhInMsec                 = 0.278
	CmInM                     = 100

	// Swimming
	SwimSpeedShift       = 1.1
	SwimWeightMultiplier = 2
)

// Training is a completed workout that can report its own statistics.
type Training interface {
	// Name is the training type name shown in the summary.
	Name() string
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned energy in kcal.
	SpentCalories() float64
	// ShowTrainingInfo builds the summary for this workout.
	ShowTrainingInfo() InfoMessage
}

// Workout holds the sensor readings common to every training type.
type Workout struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (w Workout) distance(step float64) float64 {
	return float64(w.Action) * step / MInKm
}

func info(t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Running is a run measured in steps.
type Running struct {
	Workout
}

func (r Running) Name() string { return "Running" }

func (r Running) Distance() float64 { return r.distance(LenStep) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.Duration }

func (r Running) SpentCalories() float64 {
	return (RunSpeedMultiplier*r.MeanSpeed() + RunSpeedShift) *
		r.Weight / MInKm * r.Duration * MinInHour
}

func (r Running) ShowTrainingInfo() InfoMessage { return info(r, r.Duration) }

// SportsWalking is a walk measured in steps. Height is in cm.
type SportsWalking struct {
	Workout
	Height float64
}

func (w SportsWalking) Name() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 { return w.distance(LenStep) }

func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.Duration }

func (w SportsWalking) SpentCalories() float64 {
	ms := w.MeanSpeed() * KmhInMsec
	return (WalkWeightMultiplier*w.Weight +
		(ms*ms/(w.Height/CmInM))*WalkSpeedHeightMultiplier*w.Weight) *
		w.Duration * MinInHour
}

func (w SportsWalking) ShowTrainingInfo() InfoMessage { return info(w, w.Duration) }

// Swimming is a pool swim measured in strokes. LengthPool is in metres and
// CountPool is the number of lengths swum.
type Swimming struct {
	Workout
	LengthPool float64
	CountPool  int
}

func (s Swimming) Name() string { return "Swimming" }

func (s Swimming) Distance() float64 { return s.distance(SwimLenStep) }

// MeanSpeed is derived from the pool lengths, not from the stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimSpeedShift) * SwimWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) ShowTrainingInfo() InfoMessage { return info(s, s.Duration) }
