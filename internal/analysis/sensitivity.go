// Package analysis explores how the LCOE responds to its economic inputs.
package analysis

import (
	"fmt"
	"sort"

	"pv-econ/internal/finance"
	"pv-econ/internal/model"
)

// Parameter names a sweepable economic input.
type Parameter string

const (
	ParamCapex        Parameter = "capex"
	ParamOpex         Parameter = "opex"
	ParamDiscountRate Parameter = "discount_rate"
	ParamDegradation  Parameter = "degradation"
)

// SweepPoint is the LCOE evaluated at one value of the swept parameter.
type SweepPoint struct {
	Value float64
	LCOE  float64
}

// Sweep evaluates the LCOE across values of a single parameter, holding
// everything else fixed. The base econ/horizon are never mutated; each point
// works on a copy.
func Sweep(annualYield float64, econ model.EconomicParameters, h model.Horizon, param Parameter, values []float64) ([]SweepPoint, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no sweep values")
	}

	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		e, hz := econ, h
		switch param {
		case ParamCapex:
			e.Capex = v
		case ParamOpex:
			e.Opex = v
		case ParamDiscountRate:
			e.DiscountRate = v
		case ParamDegradation:
			hz.Degradation = v
		default:
			return nil, fmt.Errorf("unsupported sweep parameter: %q", param)
		}

		lcoe, err := finance.LCOE(annualYield, e, hz)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", param, v, err)
		}
		points = append(points, SweepPoint{Value: v, LCOE: lcoe})
	}
	return points, nil
}

// Scenario is a named parameter set to evaluate and rank.
type Scenario struct {
	Name        string
	AnnualYield float64
	Econ        model.EconomicParameters
	Horizon     model.Horizon
}

// RankedScenario is a scenario with its computed LCOE.
type RankedScenario struct {
	Scenario
	LCOE float64
}

// RankScenarios evaluates each scenario and returns them sorted by LCOE,
// cheapest first. A scenario that fails validation fails the whole ranking;
// partial rankings would be misleading.
func RankScenarios(scenarios []Scenario) ([]RankedScenario, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios")
	}

	ranked := make([]RankedScenario, 0, len(scenarios))
	for _, sc := range scenarios {
		lcoe, err := finance.LCOE(sc.AnnualYield, sc.Econ, sc.Horizon)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		ranked = append(ranked, RankedScenario{Scenario: sc, LCOE: lcoe})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].LCOE < ranked[j].LCOE })
	return ranked, nil
}
