package vfd

import (
	"fmt"

	efficiency "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/efficiency"
	finance "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/finance"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

// CostPerKW is the assumed installed cost of a variable frequency drive.
const CostPerKW = 100.0

// savingsCurve approximates cube-law savings of variable-torque loads run
// at reduced speed: large at low load factor, none at full load.
// Linear between breakpoints, clamped at both ends.
var savingsCurve = []struct {
	loadFactor float64
	fraction   float64
}{
	{0.25, 0.40},
	{0.50, 0.25},
	{0.75, 0.10},
	{1.00, 0.00},
}

// SavingsFraction returns the estimated energy savings fraction for a VFD
// retrofit at the given load factor. Monotonic non-increasing on [0,1],
// bounded in [0, 0.40].
func SavingsFraction(loadFactor float64) float64 {
	first := savingsCurve[0]
	if loadFactor <= first.loadFactor {
		return first.fraction
	}
	last := savingsCurve[len(savingsCurve)-1]
	if loadFactor >= last.loadFactor {
		return last.fraction
	}
	for i := 0; i < len(savingsCurve)-1; i++ {
		lo, hi := savingsCurve[i], savingsCurve[i+1]
		if loadFactor <= hi.loadFactor {
			t := (loadFactor - lo.loadFactor) / (hi.loadFactor - lo.loadFactor)
			return lo.fraction + (hi.fraction-lo.fraction)*t
		}
	}
	return last.fraction
}

type Input struct {
	RatedKW      float64         `json:"rated_kw"`
	Quantity     int             `json:"quantity"`
	LoadFactor   float64         `json:"load_factor"`
	CurrentClass string          `json:"current_class"`
	Facility     facility.Config `json:"facility"`
}

type Result struct {
	SavingsFraction  float64         `json:"savings_fraction"`
	SavingsPct       float64         `json:"savings_pct"`
	EnergySavingsKWh float64         `json:"energy_savings_kwh"`
	CostSavings      float64         `json:"cost_savings"`
	VFDCost          float64         `json:"vfd_cost"`
	Payback          finance.Payback `json:"payback"`
	Notes            string          `json:"notes"`
}

// Calculate estimates standalone VFD economics for one motor group.
func Calculate(in Input) (Result, error) {
	if in.RatedKW <= 0 || in.Quantity < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.LoadFactor < 0 || in.LoadFactor > 1 {
		return Result{}, fmt.Errorf("load factor must be within 0..1")
	}
	class, err := efficiency.ParseClass(in.CurrentClass)
	if err != nil {
		return Result{}, err
	}
	if err := in.Facility.Validate(); err != nil {
		return Result{}, err
	}

	fraction := SavingsFraction(in.LoadFactor)
	eff := efficiency.Efficiency(class, in.LoadFactor*100)
	inputPower := in.RatedKW * in.LoadFactor / eff
	annualEnergy := inputPower * in.Facility.OperatingHours() * float64(in.Quantity)

	energySavings := annualEnergy * fraction
	costSavings := energySavings * in.Facility.ElectricityCost
	vfdCost := in.RatedKW * float64(in.Quantity) * CostPerKW

	return Result{
		SavingsFraction:  fraction,
		SavingsPct:       fraction * 100,
		EnergySavingsKWh: energySavings,
		CostSavings:      costSavings,
		VFDCost:          vfdCost,
		Payback:          finance.PaybackFor(vfdCost, costSavings),
		Notes:            "Variable-torque VFD savings estimate at part load.",
	}, nil
}
