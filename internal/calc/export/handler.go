package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	simulation "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/simulation"
)

type Handler struct{}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (simulation.Summary, bool) {
	var input simulation.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return simulation.Summary{}, false
	}
	res, err := simulation.Run(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return simulation.Summary{}, false
	}
	return res, true
}

func attachmentName(kind, ext string) string {
	return fmt.Sprintf("energy_audit_%s_%s.%s", kind, time.Now().Format("20060102"), ext)
}

func (h *Handler) SummaryCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	data, err := SummaryCSV(res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName("summary", "csv")))
	w.Write(data)
}

func (h *Handler) DetailedCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	data, err := DetailedCSV(res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName("detailed", "csv")))
	w.Write(data)
}

func (h *Handler) DetailedXLSX(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	f, err := DetailedWorkbook(res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName("detailed", "xlsx")))
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
