package models

// Economics carries the economic parameter set. Rates are percentages,
// degradation elsewhere is a fraction; see internal/model for the contract.
type Economics struct {
	Capex        float64 `json:"capex"`
	Opex         float64 `json:"opex"`
	TaxRate      float64 `json:"tax_rate"`
	DiscountRate float64 `json:"discount_rate"`
	OMEscalation float64 `json:"om_escalation"`
}

// Horizon carries lifetime parameters. Zero fields are defaulted server-side
// (25y / 1%/y / 20y).
type Horizon struct {
	Years             int     `json:"years,omitempty"`
	Degradation       float64 `json:"degradation,omitempty"`
	DepreciationYears int     `json:"depreciation_years,omitempty"`
}

// LCOERequest represents the request body for computing an LCOE
type LCOERequest struct {
	AnnualYield float64     `json:"annual_yield" binding:"required"` // kWh/kW/year, degradation-free
	Economics   Economics   `json:"economics" binding:"required"`
	Horizon     Horizon     `json:"horizon,omitempty"`
	Options     LCOEOptions `json:"options,omitempty"`
}

// LCOEOptions contains optional LCOE parameters
type LCOEOptions struct {
	IncludeSchedule bool `json:"include_schedule,omitempty"` // default: false
}

// CapexRequest represents a request to solve for the CAPEX matching a target LCOE
type CapexRequest struct {
	AnnualYield float64   `json:"annual_yield" binding:"required"`
	TargetLCOE  float64   `json:"target_lcoe" binding:"required"`
	Economics   Economics `json:"economics" binding:"required"` // capex field is ignored
	Horizon     Horizon   `json:"horizon,omitempty"`
	Check       bool      `json:"check,omitempty"` // verify the inversion round-trips
}

// CompareRequest represents a request to rank named economic variations
type CompareRequest struct {
	AnnualYield   float64     `json:"annual_yield" binding:"required"`
	BaseEconomics Economics   `json:"base_economics" binding:"required"`
	Horizon       Horizon     `json:"horizon,omitempty"`
	Variations    []Variation `json:"variations" binding:"required"`
}

// Variation defines one named parameter set to compare. Zero fields fall
// back to the base economics.
type Variation struct {
	Name      string    `json:"name" binding:"required"`
	Economics Economics `json:"economics,omitempty"`
}

// CapacityRequest represents a request to estimate hostable capacity
type CapacityRequest struct {
	AreaKm2           float64 `json:"area_km2" binding:"required"`
	ModuleEfficiency  float64 `json:"module_efficiency" binding:"required"`
	AvailableFraction float64 `json:"available_fraction" binding:"required"`
	TiltDeg           float64 `json:"tilt_deg"`
}
