package costing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestStockWeight(t *testing.T) {
	weight, volume := StockWeight(0.283, 2.0, 10)

	nearlyEqual(t, "volume", volume, 31.41592653589793)
	nearlyEqual(t, "weight", weight, 8.890707209659114)
}

func TestEstimate_TwoPassBatch(t *testing.T) {
	in := Inputs{
		StockWeight:          12,
		MaterialCostPerPound: 0.9,
		HourlyRate:           120,
		BatchSize:            4,
		SetupHours:           0.5,
		LoadUnloadSeconds:    45,
		PositioningSeconds:   10,
		PassSeconds:          []float64{80, 60},
	}

	b := Estimate(in)

	nearlyEqual(t, "MaterialCost", b.MaterialCost, 10.8)
	nearlyEqual(t, "SetupCost", b.SetupCost, 15)
	nearlyEqual(t, "NonProductiveSeconds", b.NonProductiveSeconds, 65)
	nearlyEqual(t, "NonProductiveCost", b.NonProductiveCost, 2.1666666666666665)
	nearlyEqual(t, "MachiningSeconds", b.MachiningSeconds, 140)
	nearlyEqual(t, "MachiningCost", b.MachiningCost, 4.666666666666667)
	nearlyEqual(t, "Total", b.Total, 32.63333333333333)
}

func TestEstimate_MaterialCostIgnoresBatchSize(t *testing.T) {
	in := Inputs{
		StockWeight:          8.5,
		MaterialCostPerPound: 1.1,
		HourlyRate:           90,
		BatchSize:            1,
		SetupHours:           0.25,
		LoadUnloadSeconds:    45,
		PositioningSeconds:   10,
		PassSeconds:          []float64{70},
	}

	single := Estimate(in)
	in.BatchSize = 10
	bulk := Estimate(in)

	nearlyEqual(t, "single MaterialCost", single.MaterialCost, 9.35)
	nearlyEqual(t, "bulk MaterialCost", bulk.MaterialCost, 9.35)
	nearlyEqual(t, "setup scales as 1/parts", bulk.SetupCost, single.SetupCost/10)
}

func TestEstimate_TotalIsExactSum(t *testing.T) {
	b := Estimate(Inputs{
		StockWeight:          3.7,
		MaterialCostPerPound: 2.45,
		HourlyRate:           85,
		BatchSize:            7,
		SetupHours:           0.4,
		LoadUnloadSeconds:    30,
		PositioningSeconds:   12,
		PassSeconds:          []float64{55.5, 91.25},
	})

	if b.Total != b.MaterialCost+b.SetupCost+b.NonProductiveCost+b.MachiningCost {
		t.Fatalf("Total = %v, want exact sum of components", b.Total)
	}
}

func TestEstimate_NoPasses(t *testing.T) {
	b := Estimate(Inputs{
		StockWeight:          5,
		MaterialCostPerPound: 1,
		HourlyRate:           60,
		BatchSize:            2,
		SetupHours:           0.25,
		LoadUnloadSeconds:    45,
		PositioningSeconds:   10,
	})

	nearlyEqual(t, "NonProductiveSeconds", b.NonProductiveSeconds, 45)
	nearlyEqual(t, "MachiningSeconds", b.MachiningSeconds, 0)
	nearlyEqual(t, "MachiningCost", b.MachiningCost, 0)
	nearlyEqual(t, "Total", b.Total, 5+7.5+0.75)
}
