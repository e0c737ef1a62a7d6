package simulation

import (
	"math"
	"reflect"
	"testing"

	lighting "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/lighting"
	motor "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/motor"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

func testInput() Input {
	return Input{
		Facility: facility.Config{
			FactoryType:     facility.Textile,
			OperatingDays:   300,
			ShiftsPerDay:    2,
			HoursPerShift:   8,
			ElectricityCost: 0.12,
			CO2Factor:       0.5,
			AnalysisYears:   5,
		},
		Motors: []motor.Record{
			{RatedKW: 15, Quantity: 8, LoadFactor: 0.75, CurrentClass: "IE2", VFDApplicable: true},
			{RatedKW: 55, Quantity: 2, LoadFactor: 0.85, CurrentClass: "IE1"},
			{RatedKW: 30, Quantity: 2, LoadFactor: 0.80, CurrentClass: "IE4"}, // no savings
		},
		Lighting: []lighting.Record{
			{Fixtures: 200, CurrentWatts: 40, LEDWatts: 16, HoursPerDay: 16},
		},
	}
}

func TestRunTotalsMatchParts(t *testing.T) {
	sum, err := Run(testInput())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var energy, cost, invest float64
	for _, r := range sum.MotorResults {
		energy += r.EnergySavingsKWh
		cost += r.CostSavings
		invest += r.UpgradeCost
	}
	for _, r := range sum.LightingResults {
		energy += r.EnergySavingsKWh
		cost += r.CostSavings
		invest += r.RetrofitCost
	}

	if sum.TotalEnergySavingsKWh != energy {
		t.Errorf("TotalEnergySavingsKWh = %v, want %v", sum.TotalEnergySavingsKWh, energy)
	}
	if sum.TotalCostSavings != cost {
		t.Errorf("TotalCostSavings = %v, want %v", sum.TotalCostSavings, cost)
	}
	if sum.TotalInvestment != invest {
		t.Errorf("TotalInvestment = %v, want %v", sum.TotalInvestment, invest)
	}
	if math.Abs(sum.CO2ReductionKg-energy*0.5) > 1e-9 {
		t.Errorf("CO2ReductionKg = %v, want %v", sum.CO2ReductionKg, energy*0.5)
	}
	if math.Abs(sum.CO2ReductionTonnes-sum.CO2ReductionKg/1000) > 1e-12 {
		t.Errorf("CO2ReductionTonnes = %v, want %v", sum.CO2ReductionTonnes, sum.CO2ReductionKg/1000)
	}
}

func TestRunProjectionIsLinear(t *testing.T) {
	sum, err := Run(testInput())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(sum.Projection) != 5 {
		t.Fatalf("projection length = %d, want 5", len(sum.Projection))
	}
	for i, p := range sum.Projection {
		if p.Year != i+1 {
			t.Errorf("projection[%d].Year = %d, want %d", i, p.Year, i+1)
		}
		want := sum.TotalCostSavings * float64(i+1)
		if math.Abs(p.CumulativeSavings-want) > 1e-9 {
			t.Errorf("projection[%d] = %v, want %v", i, p.CumulativeSavings, want)
		}
	}
	if sum.BreakEvenYear != 0 {
		cum := sum.TotalCostSavings * float64(sum.BreakEvenYear)
		if cum < sum.TotalInvestment {
			t.Errorf("break-even year %d does not cover investment", sum.BreakEvenYear)
		}
		if sum.BreakEvenYear > 1 {
			prev := sum.TotalCostSavings * float64(sum.BreakEvenYear-1)
			if prev >= sum.TotalInvestment {
				t.Errorf("break-even year %d is not the first covering year", sum.BreakEvenYear)
			}
		}
	}
}

func TestRunRecommendationOrdering(t *testing.T) {
	sum, err := Run(testInput())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(sum.Recommendations) != 4 {
		t.Fatalf("recommendations = %d, want 4", len(sum.Recommendations))
	}

	seenNA := false
	var prevYears float64
	for i, rec := range sum.Recommendations {
		if rec.Rank != i+1 {
			t.Errorf("rec %d has rank %d", i, rec.Rank)
		}
		if !rec.Payback.Applicable {
			seenNA = true
			continue
		}
		if seenNA {
			t.Fatalf("applicable measure %q after a not-applicable one", rec.Description)
		}
		if i > 0 && rec.Payback.Years < prevYears {
			t.Fatalf("paybacks not ascending at %q", rec.Description)
		}
		prevYears = rec.Payback.Years
	}
	// The IE4 motor has zero savings and must rank last.
	last := sum.Recommendations[len(sum.Recommendations)-1]
	if last.Payback.Applicable {
		t.Error("the zero-savings measure should be last and not applicable")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	in := testInput()
	a, err := Run(in)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := Run(in)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs on the same input differ")
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	in := testInput()
	in.Facility.AnalysisYears = 0
	if _, err := Run(in); err == nil {
		t.Error("expected facility validation error")
	}

	in = testInput()
	in.Motors[0].LoadFactor = 1.5
	if _, err := Run(in); err == nil {
		t.Error("expected motor validation error")
	}

	in = testInput()
	in.Lighting[0].HoursPerDay = 30
	if _, err := Run(in); err == nil {
		t.Error("expected lighting validation error")
	}
}

func TestRunEmptyInventory(t *testing.T) {
	in := testInput()
	in.Motors = nil
	in.Lighting = nil
	sum, err := Run(in)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.TotalEnergySavingsKWh != 0 || sum.TotalCostSavings != 0 {
		t.Errorf("empty inventory should total zero, got %+v", sum)
	}
	if sum.OverallPayback.Applicable {
		t.Error("overall payback should not be applicable without savings")
	}
	if len(sum.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(sum.Recommendations))
	}
	if len(sum.Projection) != 5 {
		t.Errorf("projection should still cover the analysis period")
	}
}

func TestDefaultInventory(t *testing.T) {
	for _, ft := range facility.FactoryTypes {
		d := DefaultInventory(ft)
		if len(d.Motors) == 0 || len(d.Lighting) == 0 {
			t.Fatalf("%s: empty defaults", ft)
		}
		for i, rec := range d.Motors {
			if err := rec.Validate(); err != nil {
				t.Errorf("%s motor %d: %v", ft, i, err)
			}
		}
		for i, rec := range d.Lighting {
			if err := rec.Validate(); err != nil {
				t.Errorf("%s lighting %d: %v", ft, i, err)
			}
		}
	}
	// Unprofiled types fall back to the textile inventory.
	if !reflect.DeepEqual(DefaultInventory(facility.Chemical).Motors, DefaultInventory(facility.Textile).Motors) {
		t.Error("chemical should fall back to the textile motor defaults")
	}
}
