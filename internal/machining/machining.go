package machining

import (
	"errors"
	"fmt"
	"math"
)

// Variant selects which area/volume formula family Compute applies.
type Variant string

const (
	// VariantPerOperation uses a distinct formula per operation kind.
	VariantPerOperation Variant = "per-op"
	// VariantSimplified applies the turning-style formula, without guards,
	// to every non-milling operation.
	VariantSimplified Variant = "simplified"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantPerOperation, VariantSimplified:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown formula variant %q", s)
}

var (
	// ErrWearExponent reports a tool wear exponent outside (0, 1).
	ErrWearExponent = errors.New("tool wear exponent must be strictly between 0 and 1")

	// ErrSurfaceRate reports a non-positive rate of surface generation.
	ErrSurfaceRate = errors.New("rate of surface generation must be positive")
)

const (
	// travelAllowance is the extra tool travel charged to diameter-bearing
	// operations, in seconds.
	travelAllowance = 5.4

	// minCutDiameter keeps the cutoff/other area away from a zero-width cut.
	minCutDiameter = 1e-9
)

// PassParams carries the validated inputs for a single rough or finish pass.
// DimensionA and DimensionB hold the starting/used diameter pair for
// turning-family operations and the width/depth pair for milling.
type PassParams struct {
	Operation     Operation
	Length        float64 // working length lw, in
	DimensionA    float64 // da, or milling width w, in
	DimensionB    float64 // db in use, or milling depth ap, in
	CuttingEnergy float64 // p_s, hp min/in^3
	Power         float64 // P_m, hp; non-positive degrades t_mp to NaN
	WearExponent  float64 // n, strictly inside (0, 1)
	SurfaceRate   float64 // V_f, in^2/min, strictly positive
}

// PassResult is the derived output of one pass computation. Times are in
// seconds. PowerLimited is NaN when no usable power was given, and that NaN
// carries through the wear- and travel-corrected times.
type PassResult struct {
	Area            float64 // A_m, in^2
	Volume          float64 // V_m, in^3
	PowerLimited    float64 // t_mp
	Recommended     float64 // t_mc
	WearCorrected   float64 // t_m
	TravelCorrected float64 // t'm
}

// Compute derives the cut area, removed volume, and machining times for one
// pass. A non-positive Power never errors; the power-limited time becomes NaN
// and propagates. The wear exponent and surface rate preconditions fail fast.
func Compute(p PassParams, variant Variant) (PassResult, error) {
	if p.WearExponent <= 0 || p.WearExponent >= 1 {
		return PassResult{}, fmt.Errorf("%w: got %g", ErrWearExponent, p.WearExponent)
	}
	if p.SurfaceRate <= 0 {
		return PassResult{}, fmt.Errorf("%w: got %g", ErrSurfaceRate, p.SurfaceRate)
	}

	area, volume := cutGeometry(p, variant)

	powerLimited := math.NaN()
	if p.Power > 0 {
		powerLimited = 60 * p.CuttingEnergy * volume / p.Power
	}
	recommended := 60 * (area / p.SurfaceRate)

	n := p.WearExponent
	var wearCorrected float64
	if !math.IsNaN(powerLimited) && powerLimited <= recommended {
		// Recommended conditions stay inside the power envelope.
		wearCorrected = recommended / (1 - n)
	} else {
		ratio := math.Inf(1)
		if powerLimited > 0 {
			ratio = recommended / powerLimited
		}
		wearCorrected = powerLimited * (1 + n/(1-n)*math.Pow(ratio, 1/n))
	}

	travelCorrected := wearCorrected
	if p.Operation.travelCorrected() {
		travelCorrected += travelAllowance
	}

	return PassResult{
		Area:            area,
		Volume:          volume,
		PowerLimited:    powerLimited,
		Recommended:     recommended,
		WearCorrected:   wearCorrected,
		TravelCorrected: travelCorrected,
	}, nil
}

func cutGeometry(p PassParams, variant Variant) (area, volume float64) {
	lw, da, db := p.Length, p.DimensionA, p.DimensionB

	if p.Operation == OpMilling {
		return lw * da, lw * da * db
	}
	if variant == VariantSimplified {
		return math.Pi * db * lw, math.Pi / 4 * lw * (da*da - db*db)
	}

	switch p.Operation {
	case OpTurnThread:
		return math.Pi * lw * db, math.Pi / 4 * lw * (da*da - db*db)
	case OpBoreDrill:
		return math.Pi * lw * da, math.Pi / 4 * lw * (db*db - da*da)
	case OpFaceThread:
		return math.Pi / 2 * da * (da - db), math.Pi / 2 * lw * da * (da - db)
	default:
		// cutoff and other fall back to a guarded turning cut.
		return math.Pi * lw * math.Max(db, minCutDiameter), math.Pi / 4 * lw * math.Max(da*da-db*db, 0)
	}
}

// ClampRoughDiameter forces a rough pass's ending diameter into the band
// between the final diameter and the starting diameter, taking the nearest
// bound. Values already inside the band pass through unchanged.
func ClampRoughDiameter(db, finalDiameter, startDiameter float64) float64 {
	return math.Min(math.Max(db, finalDiameter), startDiameter)
}
