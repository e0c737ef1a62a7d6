package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	simulation "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/simulation"
)

// DetailedWorkbook builds an Excel workbook with a summary sheet, a
// per-measure sheet and the recommendation ranking.
func DetailedWorkbook(s simulation.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	const summarySheet = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Total energy savings (kWh)", s.TotalEnergySavingsKWh},
		{"Total cost savings", s.TotalCostSavings},
		{"Total investment", s.TotalInvestment},
		{"CO2 reduction (tonnes)", s.CO2ReductionTonnes},
		{"Overall payback (years)", paybackCell(s.OverallPayback)},
		{"Break-even year", s.BreakEvenYear},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const measuresSheet = "Measures"
	if _, err := f.NewSheet(measuresSheet); err != nil {
		return nil, err
	}
	header := make([]interface{}, len(detailedHeader))
	for i, h := range detailedHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(measuresSheet, "A1", &header); err != nil {
		return nil, err
	}
	rowIdx := 2
	writeRow := func(cols []interface{}) error {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		rowIdx++
		return f.SetSheetRow(measuresSheet, cell, &cols)
	}
	for i, res := range s.MotorResults {
		err := writeRow([]interface{}{
			"motor_upgrade", fmt.Sprintf("Motor %d (%s)", i+1, res.Notes),
			res.CurrentEnergyKWh, res.TargetEnergyKWh, res.EnergySavingsKWh,
			res.CostSavings, res.UpgradeCost, paybackCell(res.Payback),
		})
		if err != nil {
			return nil, err
		}
	}
	for i, res := range s.LightingResults {
		err := writeRow([]interface{}{
			"lighting_retrofit", fmt.Sprintf("Lighting %d (%s)", i+1, res.Notes),
			res.CurrentEnergyKWh, res.LEDEnergyKWh, res.EnergySavingsKWh,
			res.CostSavings, res.RetrofitCost, paybackCell(res.Payback),
		})
		if err != nil {
			return nil, err
		}
	}

	const recSheet = "Recommendations"
	if _, err := f.NewSheet(recSheet); err != nil {
		return nil, err
	}
	recHeader := []interface{}{"rank", "type", "description", "annual_cost_savings", "investment", "payback_years"}
	if err := f.SetSheetRow(recSheet, "A1", &recHeader); err != nil {
		return nil, err
	}
	for i, rec := range s.Recommendations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{rec.Rank, rec.Type, rec.Description, rec.AnnualCostSavings, rec.Investment, paybackCell(rec.Payback)}
		if err := f.SetSheetRow(recSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
