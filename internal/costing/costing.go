package costing

import "math"

// StockWeight returns the weight and volume of cylindrical bar stock. The
// full stock length is used here, not the working length machined by a pass.
func StockWeight(density, diameter, fullLength float64) (weight, volume float64) {
	volume = math.Pi / 4 * (diameter * diameter) * fullLength
	weight = density * volume
	return weight, volume
}

// Inputs are the validated cost parameters for one completed session.
type Inputs struct {
	StockWeight          float64 // lb
	MaterialCostPerPound float64 // $/lb
	HourlyRate           float64 // $/hr
	BatchSize            float64 // parts in the batch, > 0
	SetupHours           float64 // hr per batch
	LoadUnloadSeconds    float64
	PositioningSeconds   float64   // charged once per pass run
	PassSeconds          []float64 // travel-corrected time of each pass run
}

// Breakdown contains the per-part cost estimate and the intermediate time
// totals it was built from. Total is exactly the sum of the four cost
// components; rounding is a presentation concern.
type Breakdown struct {
	MaterialCost         float64
	SetupCost            float64
	NonProductiveSeconds float64
	NonProductiveCost    float64
	MachiningSeconds     float64
	MachiningCost        float64
	Total                float64
}

// Estimate computes the per-part cost breakdown. Material cost ignores the
// batch size; setup is amortized across it.
func Estimate(in Inputs) Breakdown {
	materialCost := in.MaterialCostPerPound * in.StockWeight
	setupCost := in.HourlyRate * in.SetupHours / in.BatchSize

	nonProductiveSeconds := in.LoadUnloadSeconds + in.PositioningSeconds*float64(len(in.PassSeconds))
	nonProductiveCost := in.HourlyRate * (nonProductiveSeconds / 3600.0)

	machiningSeconds := 0.0
	for _, s := range in.PassSeconds {
		machiningSeconds += s
	}
	machiningCost := in.HourlyRate * (machiningSeconds / 3600.0)

	return Breakdown{
		MaterialCost:         materialCost,
		SetupCost:            setupCost,
		NonProductiveSeconds: nonProductiveSeconds,
		NonProductiveCost:    nonProductiveCost,
		MachiningSeconds:     machiningSeconds,
		MachiningCost:        machiningCost,
		Total:                materialCost + setupCost + nonProductiveCost + machiningCost,
	}
}
