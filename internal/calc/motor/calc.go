package motor

import (
	"fmt"

	efficiency "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/efficiency"
	finance "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/finance"
	vfd "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/vfd"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

// Motor purchase cost assumptions, currency per kW. IE1 motors are no
// longer sold, so an IE1 baseline is priced as IE2 when computing the
// upgrade delta.
var costPerKW = map[efficiency.Class]float64{
	efficiency.IE2: 50,
	efficiency.IE3: 65,
	efficiency.IE4: 85,
}

// MinUpgradeCost is the floor applied to any non-empty upgrade line.
const MinUpgradeCost = 100.0

// Record is one row of the motor inventory.
type Record struct {
	RatedKW       float64 `json:"rated_kw"`
	Quantity      int     `json:"quantity"`
	LoadFactor    float64 `json:"load_factor"`
	CurrentClass  string  `json:"current_class"`
	VFDApplicable bool    `json:"vfd_applicable"`
}

func (rec Record) Validate() error {
	if rec.RatedKW <= 0 {
		return fmt.Errorf("rated power must be positive")
	}
	if rec.Quantity < 0 {
		return fmt.Errorf("quantity must be non-negative")
	}
	if rec.LoadFactor < 0 || rec.LoadFactor > 1 {
		return fmt.Errorf("load factor must be within 0..1")
	}
	if _, err := efficiency.ParseClass(rec.CurrentClass); err != nil {
		return err
	}
	return nil
}

type Input struct {
	Record
	Facility facility.Config `json:"facility"`
}

type Result struct {
	LoadPercent       float64         `json:"load_percent"`
	CurrentEfficiency float64         `json:"current_efficiency"`
	TargetEfficiency  float64         `json:"target_efficiency"`
	CurrentEnergyKWh  float64         `json:"current_energy_kwh"`
	TargetEnergyKWh   float64         `json:"target_energy_kwh"`
	EnergySavingsKWh  float64         `json:"energy_savings_kwh"`
	VFDSavingsKWh     float64         `json:"vfd_savings_kwh,omitempty"`
	VFDSavingsPct     float64         `json:"vfd_savings_pct,omitempty"`
	CostSavings       float64         `json:"cost_savings"`
	UpgradeCost       float64         `json:"upgrade_cost"`
	Payback           finance.Payback `json:"payback"`
	Notes             string          `json:"notes"`
}

// Calculate compares one motor group against an IE4 replacement, with an
// optional VFD retrofit folded into the same measure.
func Calculate(in Input) (Result, error) {
	if err := in.Record.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.Facility.Validate(); err != nil {
		return Result{}, err
	}
	class, _ := efficiency.ParseClass(in.CurrentClass)

	loadPercent := in.LoadFactor * 100
	currentEff := efficiency.Efficiency(class, loadPercent)
	targetEff := efficiency.Efficiency(efficiency.IE4, loadPercent)

	res := Result{
		LoadPercent:       loadPercent,
		CurrentEfficiency: currentEff,
		TargetEfficiency:  targetEff,
		Notes:             fmt.Sprintf("%s to IE4 replacement", class),
	}
	if in.Quantity == 0 {
		// Empty inventory line: reported as all-zero, not filtered.
		return res, nil
	}

	shaftKW := in.RatedKW * in.LoadFactor
	hours := in.Facility.OperatingHours()
	qty := float64(in.Quantity)

	res.CurrentEnergyKWh = shaftKW / currentEff * hours * qty
	res.TargetEnergyKWh = shaftKW / targetEff * hours * qty

	// Upgrading to an equal-or-worse class yields no benefit.
	energySavings := res.CurrentEnergyKWh - res.TargetEnergyKWh
	if energySavings < 0 {
		energySavings = 0
	}

	baselineCost, ok := costPerKW[class]
	if !ok {
		baselineCost = costPerKW[efficiency.IE2]
	}
	upgradeCost := in.RatedKW * qty * (costPerKW[efficiency.IE4] - baselineCost)
	if upgradeCost < MinUpgradeCost {
		upgradeCost = MinUpgradeCost
	}

	if in.VFDApplicable {
		fraction := vfd.SavingsFraction(in.LoadFactor)
		res.VFDSavingsKWh = res.CurrentEnergyKWh * fraction
		res.VFDSavingsPct = fraction * 100
		energySavings += res.VFDSavingsKWh
		upgradeCost += in.RatedKW * qty * vfd.CostPerKW
		res.Notes += " with VFD"
	}

	res.EnergySavingsKWh = energySavings
	res.CostSavings = energySavings * in.Facility.ElectricityCost
	res.UpgradeCost = upgradeCost
	res.Payback = finance.PaybackFor(upgradeCost, res.CostSavings)
	return res, nil
}
