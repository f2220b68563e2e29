package model

import "fmt"

// EconomicParameters defines the system-specific economic inputs of a plant.
// Units:
// - Capex: currency per installed kW
// - Opex: currency per kW per year
// - TaxRate: corporate tax rate, in PERCENT (divided by 100 internally)
// - DiscountRate: annual discount rate, in PERCENT
// - OMEscalation: annual O&M cost increase, in PERCENT
//
// Note the unit split: the three rates above are percentages, while the
// degradation rate on Horizon is a plain fraction. Callers must not
// pre-normalize the percentages or results double-scale.
type EconomicParameters struct {
	Capex        float64
	Opex         float64
	TaxRate      float64
	DiscountRate float64
	OMEscalation float64
}

// WithCapex returns a copy with Capex replaced, leaving the receiver untouched.
func (e EconomicParameters) WithCapex(capex float64) EconomicParameters {
	e.Capex = capex
	return e
}

// Horizon defines the lifetime parameters of the discounted cash-flow model.
// Units:
// - Years: system lifetime T, in years
// - Degradation: yearly linear output degradation, as a FRACTION (not percent)
// - DepreciationYears: straight-line depreciation window Nd, in years
//
// DepreciationYears larger than Years is allowed; the depreciation benefit
// simply stops contributing beyond the lifetime.
type Horizon struct {
	Years             int
	Degradation       float64
	DepreciationYears int
}

func (h Horizon) Validate() error {
	if h.Years < 1 {
		return fmt.Errorf("horizon years must be >= 1, got %d", h.Years)
	}
	if h.DepreciationYears < 1 {
		return fmt.Errorf("depreciation years must be >= 1, got %d", h.DepreciationYears)
	}
	return nil
}

// DefaultHorizon matches the usual utility-scale assumptions:
// 25 year lifetime, 1%/year linear degradation, 20 year depreciation window.
func DefaultHorizon() Horizon {
	return Horizon{
		Years:             25,
		Degradation:       0.01,
		DepreciationYears: 20,
	}
}
