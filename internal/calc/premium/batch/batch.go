package batch

import (
	"fmt"

	motor "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/motor"
	facility "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/facility"
)

type MotorBatchInput struct {
	Facility facility.Config `json:"facility"`
	Items    []motor.Record  `json:"items"`
}

type MotorBatchResult struct {
	Results []motor.Result `json:"results"`
}

func CalculateMotors(in MotorBatchInput) (MotorBatchResult, error) {
	if len(in.Items) == 0 {
		return MotorBatchResult{}, fmt.Errorf("no items")
	}
	out := MotorBatchResult{Results: make([]motor.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := motor.Calculate(motor.Input{Record: item, Facility: in.Facility})
		if err != nil {
			return MotorBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
