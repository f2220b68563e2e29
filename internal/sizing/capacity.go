// Package sizing estimates how much PV capacity a piece of land can host.
package sizing

import "math"

// rowSpacingFactor encodes an assumed inter-row spacing of 1.2x panel
// height. Fixed design constant, not configurable.
const rowSpacingFactor = 1.2

// Capacity returns the hostable capacity in watts for a given land area.
//
// areaKm2 is the land area in km2, efficiency the module efficiency (0..1),
// availableFraction the share of the area usable for modules (0..1), and
// tiltDeg the module tilt in degrees. Tilting the rows costs ground area for
// inter-row spacing, captured by the cos+1.2*sin denominator; at tilt 0 the
// factor collapses to 1. All inputs are treated as correct by construction;
// tilt 90 is valid (the denominator reduces to the sine term).
func Capacity(areaKm2, efficiency, availableFraction, tiltDeg float64) float64 {
	areaM2 := areaKm2 * 1e6
	tilt := tiltDeg * math.Pi / 180
	return areaM2 * efficiency * availableFraction / (math.Cos(tilt) + rowSpacingFactor*math.Sin(tilt)) * 1000
}
