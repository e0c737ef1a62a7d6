package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	finance "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/finance"
	simulation "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/simulation"
)

func paybackCell(p finance.Payback) string {
	if !p.Applicable {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", p.Years)
}

// SummaryCSV renders the aggregate totals as a one-row CSV.
func SummaryCSV(s simulation.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := [][]string{
		{"total_energy_savings_kwh", "total_cost_savings", "total_investment", "co2_reduction_tonnes", "overall_payback_years"},
		{
			fmt.Sprintf("%.2f", s.TotalEnergySavingsKWh),
			fmt.Sprintf("%.2f", s.TotalCostSavings),
			fmt.Sprintf("%.2f", s.TotalInvestment),
			fmt.Sprintf("%.3f", s.CO2ReductionTonnes),
			paybackCell(s.OverallPayback),
		},
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var detailedHeader = []string{
	"measure", "description", "current_energy_kwh", "proposed_energy_kwh",
	"energy_savings_kwh", "cost_savings", "investment", "payback_years",
}

// DetailedCSV renders one row per motor and lighting measure.
func DetailedCSV(s simulation.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	for i, res := range s.MotorResults {
		row := []string{
			"motor_upgrade",
			fmt.Sprintf("Motor %d (%s)", i+1, res.Notes),
			fmt.Sprintf("%.2f", res.CurrentEnergyKWh),
			fmt.Sprintf("%.2f", res.TargetEnergyKWh),
			fmt.Sprintf("%.2f", res.EnergySavingsKWh),
			fmt.Sprintf("%.2f", res.CostSavings),
			fmt.Sprintf("%.2f", res.UpgradeCost),
			paybackCell(res.Payback),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for i, res := range s.LightingResults {
		row := []string{
			"lighting_retrofit",
			fmt.Sprintf("Lighting %d (%s)", i+1, res.Notes),
			fmt.Sprintf("%.2f", res.CurrentEnergyKWh),
			fmt.Sprintf("%.2f", res.LEDEnergyKWh),
			fmt.Sprintf("%.2f", res.EnergySavingsKWh),
			fmt.Sprintf("%.2f", res.CostSavings),
			fmt.Sprintf("%.2f", res.RetrofitCost),
			paybackCell(res.Payback),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
