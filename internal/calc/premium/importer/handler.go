package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	motor "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/motor"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

type Handler struct{}

type MotorImportResult struct {
	Count   int            `json:"count"`
	Results []motor.Result `json:"results"`
}

// Motors imports a motor inventory from an uploaded Excel sheet and runs
// the analysis on every parsable row. The facility config travels as a
// JSON form field next to the file.
func (h *Handler) Motors(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var fac facility.Config
	if err := json.Unmarshal([]byte(r.FormValue("facility")), &fac); err != nil {
		http.Error(w, "Facility config required", http.StatusBadRequest)
		return
	}
	if err := fac.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []motor.Result
	for i := 1; i < len(rows); i++ {
		rec, err := parseMotorRow(rows[i])
		if err != nil {
			continue
		}
		res, err := motor.Calculate(motor.Input{Record: rec, Facility: fac})
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MotorImportResult{Count: len(results), Results: results})
}

// expected columns: rated_kw, quantity, load_factor, current_class, vfd
func parseMotorRow(row []string) (motor.Record, error) {
	if len(row) < 4 {
		return motor.Record{}, fmt.Errorf("bad row")
	}
	rated, err := toFloat(row[0])
	if err != nil {
		return motor.Record{}, err
	}
	qty, err := toFloat(row[1])
	if err != nil {
		return motor.Record{}, err
	}
	load, err := toFloat(row[2])
	if err != nil {
		return motor.Record{}, err
	}
	class := strings.TrimSpace(row[3])
	vfd := false
	if len(row) > 4 {
		switch strings.ToLower(strings.TrimSpace(row[4])) {
		case "1", "yes", "true", "y":
			vfd = true
		}
	}
	return motor.Record{
		RatedKW:       rated,
		Quantity:      int(qty),
		LoadFactor:    load,
		CurrentClass:  class,
		VFDApplicable: vfd,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v, err
}
