package facility

import "testing"

func validConfig() Config {
	return Config{
		FactoryType:     Automotive,
		OperatingDays:   300,
		ShiftsPerDay:    2,
		HoursPerShift:   8,
		ElectricityCost: 0.12,
		DemandCharge:    15,
		CO2Factor:       0.5,
		AnalysisYears:   5,
	}
}

func TestOperatingHours(t *testing.T) {
	c := validConfig()
	if got := c.OperatingHours(); got != 4800 {
		t.Errorf("OperatingHours() = %v, want 4800", got)
	}

	c.OperatingDays = 0
	if got := c.OperatingHours(); got != 0 {
		t.Errorf("OperatingHours() = %v, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []func(*Config){
		func(c *Config) { c.FactoryType = "shipyard" },
		func(c *Config) { c.OperatingDays = 400 },
		func(c *Config) { c.OperatingDays = -1 },
		func(c *Config) { c.ShiftsPerDay = 4 },
		func(c *Config) { c.HoursPerShift = 13 },
		func(c *Config) { c.ElectricityCost = -0.01 },
		func(c *Config) { c.DemandCharge = -1 },
		func(c *Config) { c.CO2Factor = -0.1 },
		func(c *Config) { c.AnalysisYears = 0 },
		func(c *Config) { c.AnalysisYears = 31 },
	}
	for i, mutate := range cases {
		c := validConfig()
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestParseFactoryType(t *testing.T) {
	for _, ft := range FactoryTypes {
		if _, err := ParseFactoryType(string(ft)); err != nil {
			t.Errorf("ParseFactoryType(%q) unexpected error: %v", ft, err)
		}
	}
	if _, err := ParseFactoryType("bakery"); err == nil {
		t.Error("ParseFactoryType should reject unknown types")
	}
}
