package models

// LCOEResponse represents the result of an LCOE calculation
type LCOEResponse struct {
	LCOE     float64       `json:"lcoe"`
	Currency string        `json:"currency,omitempty"`
	Schedule []ScheduleRow `json:"schedule,omitempty"`
}

// ScheduleRow is one year of the discounted cash-flow breakdown
type ScheduleRow struct {
	Year               int     `json:"year"`
	DiscountFactor     float64 `json:"discount_factor"`
	OpexAfterTax       float64 `json:"opex_after_tax"`
	DepreciationShield float64 `json:"depreciation_shield"`
	Energy             float64 `json:"energy"`
	CumulativeCost     float64 `json:"cumulative_cost"`
	CumulativeEnergy   float64 `json:"cumulative_energy"`
	LCOEToDate         float64 `json:"lcoe_to_date"`
}

// CapexResponse represents the result of a CAPEX inversion
type CapexResponse struct {
	Capex   float64 `json:"capex"`
	Checked bool    `json:"checked"`
}

// CompareResponse represents the ranked comparison of variations
type CompareResponse struct {
	Ranking []RankedResult `json:"ranking"`
}

// RankedResult contains the LCOE for one variation, cheapest first
type RankedResult struct {
	Name string  `json:"name"`
	LCOE float64 `json:"lcoe"`
}

// CapacityResponse represents the result of a capacity estimate
type CapacityResponse struct {
	CapacityW  float64 `json:"capacity_w"`
	CapacityMW float64 `json:"capacity_mw"`
}

// PlantInfo describes one plant preset file
type PlantInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
