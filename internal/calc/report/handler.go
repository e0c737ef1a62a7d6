package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	simulation "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/simulation"
)

type Input struct {
	Project    string           `json:"project"`
	Author     string           `json:"author"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes"`
	Simulation simulation.Input `json:"simulation"`
}

type Handler struct{}

// Generate runs the simulation and renders the audit summary as a PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Energy Retrofit Audit Report"
	}
	res, err := simulation.Run(input.Simulation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	fac := input.Simulation.Facility
	pdf.Cell(0, 6, fmt.Sprintf("Factory type: %s, annual operating hours: %.0f", fac.FactoryType, fac.OperatingHours()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Annual savings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Energy: %.0f kWh", res.TotalEnergySavingsKWh))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Cost: %.0f", res.TotalCostSavings))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("CO2 reduction: %.1f tonnes", res.CO2ReductionTonnes))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total investment: %.0f", res.TotalInvestment))
	pdf.Ln(6)
	if res.OverallPayback.Applicable {
		pdf.Cell(0, 6, fmt.Sprintf("Portfolio payback: %.1f years", res.OverallPayback.Years))
	} else {
		pdf.Cell(0, 6, "Portfolio payback: not applicable")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Top recommendations")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	top := res.Recommendations
	if len(top) > 5 {
		top = top[:5]
	}
	for _, rec := range top {
		payback := "n/a"
		if rec.Payback.Applicable {
			payback = fmt.Sprintf("%.1f years", rec.Payback.Years)
		}
		line := fmt.Sprintf("#%d %s | savings %.0f/year | investment %.0f | payback %s",
			rec.Rank, rec.Description, rec.AnnualCostSavings, rec.Investment, payback)
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"audit_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
