package facility

import "fmt"

// FactoryType is the facility category. Informational only: it selects
// default inventories but enters no energy math.
type FactoryType string

const (
	Textile          FactoryType = "textile"
	Automotive       FactoryType = "automotive"
	FoodProcessing   FactoryType = "food_processing"
	Chemical         FactoryType = "chemical"
	MetalFabrication FactoryType = "metal_fabrication"
	Plastics         FactoryType = "plastics"
)

var FactoryTypes = []FactoryType{Textile, Automotive, FoodProcessing, Chemical, MetalFabrication, Plastics}

func ParseFactoryType(s string) (FactoryType, error) {
	for _, ft := range FactoryTypes {
		if FactoryType(s) == ft {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown factory type %q", s)
}

// Config holds the facility-wide parameters of one audit run.
type Config struct {
	FactoryType     FactoryType `json:"factory_type"`
	OperatingDays   int         `json:"operating_days"`
	ShiftsPerDay    int         `json:"shifts_per_day"`
	HoursPerShift   float64     `json:"hours_per_shift"`
	ElectricityCost float64     `json:"electricity_cost"` // currency per kWh
	DemandCharge    float64     `json:"demand_charge"`    // currency per kW-month, informational
	CO2Factor       float64     `json:"co2_factor"`       // kg CO2 per kWh
	AnalysisYears   int         `json:"analysis_years"`
}

// OperatingHours derives the annual operating hours of the facility.
func (c Config) OperatingHours() float64 {
	return float64(c.OperatingDays) * float64(c.ShiftsPerDay) * c.HoursPerShift
}

// Validate checks the config once at the input boundary. Calculation code
// downstream assumes a validated config.
func (c Config) Validate() error {
	if c.FactoryType != "" {
		if _, err := ParseFactoryType(string(c.FactoryType)); err != nil {
			return err
		}
	}
	if c.OperatingDays < 0 || c.OperatingDays > 365 {
		return fmt.Errorf("operating days must be within 0..365")
	}
	if c.ShiftsPerDay < 0 || c.ShiftsPerDay > 3 {
		return fmt.Errorf("shifts per day must be within 0..3")
	}
	if c.HoursPerShift < 0 || c.HoursPerShift > 12 {
		return fmt.Errorf("hours per shift must be within 0..12")
	}
	if c.ElectricityCost < 0 {
		return fmt.Errorf("electricity cost must be non-negative")
	}
	if c.DemandCharge < 0 {
		return fmt.Errorf("demand charge must be non-negative")
	}
	if c.CO2Factor < 0 {
		return fmt.Errorf("co2 factor must be non-negative")
	}
	if c.AnalysisYears < 1 || c.AnalysisYears > 30 {
		return fmt.Errorf("analysis period must be within 1..30 years")
	}
	return nil
}
