package motor

import (
	"math"
	"testing"

	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

// 250 days x 2 shifts x 8h = 4000 operating hours.
func testFacility() facility.Config {
	return facility.Config{
		FactoryType:     facility.Textile,
		OperatingDays:   250,
		ShiftsPerDay:    2,
		HoursPerShift:   8,
		ElectricityCost: 0.10,
		CO2Factor:       0.5,
		AnalysisYears:   5,
	}
}

// Worked example: 10 kW, 1 unit, load factor 0.5, IE1, no VFD.
// IE1 at 50% load is 0.85, IE4 is 0.93, shaft power 5 kW.
func TestCalculateWorkedExample(t *testing.T) {
	res, err := Calculate(Input{
		Record: Record{
			RatedKW:      10,
			Quantity:     1,
			LoadFactor:   0.5,
			CurrentClass: "IE1",
		},
		Facility: testFacility(),
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	const tol = 1e-6
	if res.CurrentEfficiency != 0.85 || res.TargetEfficiency != 0.93 {
		t.Fatalf("efficiencies = %v/%v, want 0.85/0.93", res.CurrentEfficiency, res.TargetEfficiency)
	}

	wantCurrent := 5.0 / 0.85 * 4000
	wantTarget := 5.0 / 0.93 * 4000
	if math.Abs(res.CurrentEnergyKWh-wantCurrent) > tol {
		t.Errorf("CurrentEnergyKWh = %v, want %v", res.CurrentEnergyKWh, wantCurrent)
	}
	if math.Abs(res.TargetEnergyKWh-wantTarget) > tol {
		t.Errorf("TargetEnergyKWh = %v, want %v", res.TargetEnergyKWh, wantTarget)
	}

	wantSavings := wantCurrent - wantTarget
	if math.Abs(res.EnergySavingsKWh-wantSavings) > tol {
		t.Errorf("EnergySavingsKWh = %v, want %v", res.EnergySavingsKWh, wantSavings)
	}
	if math.Abs(res.CostSavings-wantSavings*0.10) > tol {
		t.Errorf("CostSavings = %v, want %v", res.CostSavings, wantSavings*0.10)
	}

	// IE1 priced as IE2: (85-50) per kW, 10 kW, 1 unit.
	if res.UpgradeCost != 350 {
		t.Errorf("UpgradeCost = %v, want 350", res.UpgradeCost)
	}
	if !res.Payback.Applicable {
		t.Fatal("payback should be applicable")
	}
	if math.Abs(res.Payback.Years-350/(wantSavings*0.10)) > tol {
		t.Errorf("Payback.Years = %v, want %v", res.Payback.Years, 350/(wantSavings*0.10))
	}
}

func TestCalculateVFDAddOn(t *testing.T) {
	base, err := Calculate(Input{
		Record:   Record{RatedKW: 15, Quantity: 4, LoadFactor: 0.5, CurrentClass: "IE2"},
		Facility: testFacility(),
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	withVFD, err := Calculate(Input{
		Record:   Record{RatedKW: 15, Quantity: 4, LoadFactor: 0.5, CurrentClass: "IE2", VFDApplicable: true},
		Facility: testFacility(),
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// At load factor 0.5 the VFD curve gives 25% of current annual energy.
	wantVFD := base.CurrentEnergyKWh * 0.25
	if math.Abs(withVFD.VFDSavingsKWh-wantVFD) > 1e-6 {
		t.Errorf("VFDSavingsKWh = %v, want %v", withVFD.VFDSavingsKWh, wantVFD)
	}
	if math.Abs(withVFD.EnergySavingsKWh-(base.EnergySavingsKWh+wantVFD)) > 1e-6 {
		t.Errorf("EnergySavingsKWh = %v, want %v", withVFD.EnergySavingsKWh, base.EnergySavingsKWh+wantVFD)
	}
	if math.Abs(withVFD.UpgradeCost-(base.UpgradeCost+15*4*100)) > 1e-6 {
		t.Errorf("UpgradeCost = %v, want %v", withVFD.UpgradeCost, base.UpgradeCost+15*4*100)
	}
}

func TestCalculateNeverNegativeSavings(t *testing.T) {
	// Already IE4: replacement brings nothing, savings floor at zero.
	res, err := Calculate(Input{
		Record:   Record{RatedKW: 30, Quantity: 2, LoadFactor: 0.8, CurrentClass: "IE4"},
		Facility: testFacility(),
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.EnergySavingsKWh != 0 {
		t.Errorf("EnergySavingsKWh = %v, want 0", res.EnergySavingsKWh)
	}
	if res.CostSavings != 0 {
		t.Errorf("CostSavings = %v, want 0", res.CostSavings)
	}
	if res.Payback.Applicable {
		t.Error("payback should not be applicable when savings are zero")
	}
	// The cost floor still applies to a real line item.
	if res.UpgradeCost != MinUpgradeCost {
		t.Errorf("UpgradeCost = %v, want floor %v", res.UpgradeCost, MinUpgradeCost)
	}
}

func TestCalculateZeroQuantity(t *testing.T) {
	res, err := Calculate(Input{
		Record:   Record{RatedKW: 10, Quantity: 0, LoadFactor: 0.5, CurrentClass: "IE1"},
		Facility: testFacility(),
	})
	if err != nil {
		t.Fatalf("zero quantity must not be an error: %v", err)
	}
	if res.CurrentEnergyKWh != 0 || res.EnergySavingsKWh != 0 || res.UpgradeCost != 0 || res.CostSavings != 0 {
		t.Errorf("zero quantity should yield an all-zero result: %+v", res)
	}
	if res.Payback.Applicable {
		t.Error("payback should not be applicable for an empty line")
	}
}

func TestCalculateZeroOperatingHours(t *testing.T) {
	fac := testFacility()
	fac.OperatingDays = 0
	res, err := Calculate(Input{
		Record:   Record{RatedKW: 10, Quantity: 1, LoadFactor: 0.5, CurrentClass: "IE1"},
		Facility: fac,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.CurrentEnergyKWh != 0 || res.EnergySavingsKWh != 0 {
		t.Errorf("no operating hours should yield zero energy, got %+v", res)
	}
	if res.Payback.Applicable {
		t.Error("payback should not be applicable without savings")
	}
}

func TestRecordValidate(t *testing.T) {
	bad := []Record{
		{RatedKW: 0, Quantity: 1, LoadFactor: 0.5, CurrentClass: "IE2"},
		{RatedKW: 10, Quantity: -1, LoadFactor: 0.5, CurrentClass: "IE2"},
		{RatedKW: 10, Quantity: 1, LoadFactor: -0.1, CurrentClass: "IE2"},
		{RatedKW: 10, Quantity: 1, LoadFactor: 1.1, CurrentClass: "IE2"},
		{RatedKW: 10, Quantity: 1, LoadFactor: 0.5, CurrentClass: "IE7"},
	}
	for i, rec := range bad {
		if err := rec.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	good := Record{RatedKW: 10, Quantity: 1, LoadFactor: 0.5, CurrentClass: "IE2"}
	if err := good.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
