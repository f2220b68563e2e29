package model

import "errors"

// PlantParams defines the physical parameters of a PV plant.
// Units:
// - ModuleEfficiency: 0..1
// - AvailableAreaFraction: 0..1, share of the land area usable for modules
// - TiltDeg / AzimuthDeg: degrees
// - Albedo: 0..1 ground reflectance
// - RatedDCPowerW: pdc0, module/string rated DC power in W (the caller's
//   normalization of pdc0 determines whether yields come out in Wh/W or kWh/kW)
// - TempCoeff: DC power temperature coefficient, 1/degC (typically negative)
// - SystemLosses: flat loss fraction applied after the inverter, 0..1
// - InverterEfficiency: 0..1
// - AbsorptionCoeff: module irradiance absorption coefficient (alpha)
// - ThermalLossU0/U1: PVSyst-style thermal loss coefficients, W/m2K and W/m3sK
type PlantParams struct {
	ModuleEfficiency      float64
	AvailableAreaFraction float64
	TiltDeg               float64
	AzimuthDeg            float64
	Albedo                float64
	RatedDCPowerW         float64
	TempCoeff             float64
	SystemLosses          float64
	InverterEfficiency    float64
	AbsorptionCoeff       float64
	ThermalLossU0         float64
	ThermalLossU1         float64
}

func (p PlantParams) Validate() error {
	if p.ModuleEfficiency <= 0 || p.ModuleEfficiency > 1 {
		return errors.New("ModuleEfficiency must be in (0, 1]")
	}
	if p.AvailableAreaFraction <= 0 || p.AvailableAreaFraction > 1 {
		return errors.New("AvailableAreaFraction must be in (0, 1]")
	}
	if p.TiltDeg < 0 || p.TiltDeg > 90 {
		return errors.New("TiltDeg must be in [0, 90]")
	}
	if p.Albedo < 0 || p.Albedo > 1 {
		return errors.New("Albedo must be in [0, 1]")
	}
	if p.RatedDCPowerW <= 0 {
		return errors.New("RatedDCPowerW must be > 0")
	}
	if p.SystemLosses < 0 || p.SystemLosses >= 1 {
		return errors.New("SystemLosses must be in [0, 1)")
	}
	if p.InverterEfficiency <= 0 || p.InverterEfficiency > 1 {
		return errors.New("InverterEfficiency must be in (0, 1]")
	}
	return nil
}

// Site locates the plant.
type Site struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	AltitudeM    float64
}
