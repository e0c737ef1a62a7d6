package simulation

import (
	lighting "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/lighting"
	motor "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/motor"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

// Defaults pre-fills an audit form with a typical inventory for a factory
// type. Values are screening-level assumptions, not measurements.
type Defaults struct {
	FactoryType facility.FactoryType `json:"factory_type"`
	Motors      []motor.Record       `json:"motors"`
	Lighting    []lighting.Record    `json:"lighting"`
}

var defaultMotors = map[facility.FactoryType][]motor.Record{
	facility.Textile: {
		{RatedKW: 15, Quantity: 8, LoadFactor: 0.75, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 22, Quantity: 6, LoadFactor: 0.80, CurrentClass: "IE2"},
		{RatedKW: 37, Quantity: 4, LoadFactor: 0.70, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 55, Quantity: 2, LoadFactor: 0.85, CurrentClass: "IE1"},
	},
	facility.Automotive: {
		{RatedKW: 18.5, Quantity: 10, LoadFactor: 0.65, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 30, Quantity: 8, LoadFactor: 0.75, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 45, Quantity: 6, LoadFactor: 0.80, CurrentClass: "IE2"},
		{RatedKW: 75, Quantity: 3, LoadFactor: 0.70, CurrentClass: "IE1", VFDApplicable: true},
	},
	facility.FoodProcessing: {
		{RatedKW: 11, Quantity: 12, LoadFactor: 0.60, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 18.5, Quantity: 8, LoadFactor: 0.70, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 22, Quantity: 6, LoadFactor: 0.75, CurrentClass: "IE2", VFDApplicable: true},
		{RatedKW: 37, Quantity: 4, LoadFactor: 0.65, CurrentClass: "IE1", VFDApplicable: true},
	},
}

var defaultLighting = map[facility.FactoryType][]lighting.Record{
	facility.Textile:        {{Fixtures: 200, CurrentWatts: 40, LEDWatts: 16, HoursPerDay: 16}},
	facility.Automotive:     {{Fixtures: 150, CurrentWatts: 250, LEDWatts: 100, HoursPerDay: 24}},
	facility.FoodProcessing: {{Fixtures: 180, CurrentWatts: 60, LEDWatts: 24, HoursPerDay: 20}},
}

// DefaultInventory returns the default motor and lighting inventory for a
// factory type. Types without their own profile use the textile one, as
// the original audit tables did. LED wattages follow the typical 40% of
// the traditional fixture wattage.
func DefaultInventory(ft facility.FactoryType) Defaults {
	motors, ok := defaultMotors[ft]
	if !ok {
		motors = defaultMotors[facility.Textile]
	}
	lights, ok := defaultLighting[ft]
	if !ok {
		lights = defaultLighting[facility.Textile]
	}
	return Defaults{FactoryType: ft, Motors: motors, Lighting: lights}
}
