package lighting

import (
	"fmt"

	finance "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/finance"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

// LED retrofit cost assumptions: fixture unit cost times an installed-cost
// factor covering labor and wiring.
const (
	LEDUnitCost         = 15.0
	InstalledCostFactor = 10.0
)

// Record is one lighting group of the inventory.
type Record struct {
	Fixtures     int     `json:"fixtures"`
	CurrentWatts float64 `json:"current_watts"`
	LEDWatts     float64 `json:"led_watts"`
	// AnnualHours wins when set; otherwise hours are derived from
	// HoursPerDay and the facility operating days.
	AnnualHours float64 `json:"annual_hours,omitempty"`
	HoursPerDay float64 `json:"hours_per_day,omitempty"`
}

func (rec Record) Validate() error {
	if rec.Fixtures < 0 {
		return fmt.Errorf("fixture count must be non-negative")
	}
	if rec.CurrentWatts < 0 || rec.LEDWatts < 0 {
		return fmt.Errorf("wattage must be non-negative")
	}
	if rec.AnnualHours < 0 {
		return fmt.Errorf("annual hours must be non-negative")
	}
	if rec.HoursPerDay < 0 || rec.HoursPerDay > 24 {
		return fmt.Errorf("hours per day must be within 0..24")
	}
	return nil
}

type Input struct {
	Record
	Facility facility.Config `json:"facility"`
}

type Result struct {
	AnnualHours      float64         `json:"annual_hours"`
	CurrentEnergyKWh float64         `json:"current_energy_kwh"`
	LEDEnergyKWh     float64         `json:"led_energy_kwh"`
	CurrentCost      float64         `json:"current_cost"`
	LEDCost          float64         `json:"led_cost"`
	EnergySavingsKWh float64         `json:"energy_savings_kwh"`
	CostSavings      float64         `json:"cost_savings"`
	RetrofitCost     float64         `json:"retrofit_cost"`
	Payback          finance.Payback `json:"payback"`
	Notes            string          `json:"notes"`
}

// Calculate compares the current lighting group against its LED retrofit.
func Calculate(in Input) (Result, error) {
	if err := in.Record.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.Facility.Validate(); err != nil {
		return Result{}, err
	}

	hours := in.AnnualHours
	if hours == 0 {
		hours = in.HoursPerDay * float64(in.Facility.OperatingDays)
	}
	fixtures := float64(in.Fixtures)

	current := fixtures * in.CurrentWatts / 1000 * hours
	led := fixtures * in.LEDWatts / 1000 * hours

	savings := current - led
	if savings < 0 {
		savings = 0
	}
	costSavings := savings * in.Facility.ElectricityCost
	retrofitCost := fixtures * LEDUnitCost * InstalledCostFactor

	return Result{
		AnnualHours:      hours,
		CurrentEnergyKWh: current,
		LEDEnergyKWh:     led,
		CurrentCost:      current * in.Facility.ElectricityCost,
		LEDCost:          led * in.Facility.ElectricityCost,
		EnergySavingsKWh: savings,
		CostSavings:      costSavings,
		RetrofitCost:     retrofitCost,
		Payback:          finance.PaybackFor(retrofitCost, costSavings),
		Notes:            fmt.Sprintf("LED retrofit, %.0fW to %.0fW per fixture", in.CurrentWatts, in.LEDWatts),
	}, nil
}
