// Package yield turns irradiance/weather time series into daily AC energy.
//
// The physical models (air mass, incidence, transposition, cell temperature,
// DC power) are injected interfaces so alternative irradiance or temperature
// models can be substituted without touching the aggregation logic. The
// package deliberately ships no model implementations of its own.
package yield

import (
	"fmt"
	"sort"
	"time"

	"pv-econ/internal/model"
)

// AirMassModel computes relative and pressure-corrected absolute air mass
// from the solar zenith angle and site altitude.
type AirMassModel interface {
	AirMass(zenithDeg, altitudeM float64) (relative, absolute float64)
}

// IncidenceModel computes the angle of incidence of the sun on the tilted
// plane and the incidence-angle modifier for that AOI.
type IncidenceModel interface {
	AOI(tiltDeg, surfaceAzimuthDeg float64, sun model.SunPosition) float64
	IAM(aoiDeg float64) float64
}

// POAComponents are the plane-of-array irradiance components, W/m2.
type POAComponents struct {
	Direct  float64
	Diffuse float64 // sky diffuse + ground-reflected
	Global  float64
}

// TranspositionModel resolves horizontal irradiance onto the tilted plane
// (e.g. isotropic ground reflection plus a Perez sky-diffuse model).
type TranspositionModel interface {
	POA(sample model.WeatherSample, tiltDeg, surfaceAzimuthDeg, albedo, airMassRel float64) (POAComponents, error)
}

// CellTemperatureModel computes cell temperature from POA global irradiance
// and ambient conditions (e.g. the PVSyst model).
type CellTemperatureModel interface {
	CellTemperature(poaGlobal, ambientTempC, windSpeedMS, u0, u1, absorptionCoeff float64) float64
}

// DCPowerModel computes DC power from effective irradiance and cell
// temperature (e.g. PVWatts).
type DCPowerModel interface {
	DCPower(effectiveIrradiance, cellTempC, ratedPowerW, tempCoeff float64) float64
}

// Estimator orchestrates the injected models over a weather time series.
type Estimator struct {
	AirMass       AirMassModel
	Incidence     IncidenceModel
	Transposition TranspositionModel
	CellTemp      CellTemperatureModel
	DCPower       DCPowerModel
}

// DailyEnergy is the aggregated output for one UTC calendar date. Energy is
// in the sub-period unit of the input series times the pdc0 normalization:
// with ratedPowerW = 1 and hourly samples, it comes out as Wh/W (= kWh/kW).
type DailyEnergy struct {
	Date   time.Time
	Energy float64
}

// DailyACEnergy runs the full pipeline per sample, sums DC power by UTC
// calendar date, and applies inverter efficiency and the flat system-loss
// fraction. Pure function of its inputs; an error from any model stage
// propagates wrapped with the sample timestamp.
func (e *Estimator) DailyACEnergy(samples []model.WeatherSample, site model.Site, plant model.PlantParams) ([]DailyEnergy, error) {
	if err := plant.Validate(); err != nil {
		return nil, fmt.Errorf("plant params invalid: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no weather samples")
	}

	byDate := map[time.Time]float64{}
	for _, s := range samples {
		relAM, _ := e.AirMass.AirMass(s.Sun.ZenithDeg, site.AltitudeM)

		aoi := e.Incidence.AOI(plant.TiltDeg, plant.AzimuthDeg, s.Sun)
		iam := e.Incidence.IAM(aoi)

		poa, err := e.Transposition.POA(s, plant.TiltDeg, plant.AzimuthDeg, plant.Albedo, relAM)
		if err != nil {
			return nil, fmt.Errorf("transposition at %s: %w", s.Time.UTC().Format(time.RFC3339), err)
		}

		cellTemp := e.CellTemp.CellTemperature(
			poa.Global, s.AmbientTempC, s.WindSpeedMS,
			plant.ThermalLossU0, plant.ThermalLossU1, plant.AbsorptionCoeff,
		)

		// IAM corrects the direct component only; diffuse arrives from the
		// whole sky dome and is not AOI-corrected.
		effective := poa.Direct*iam + poa.Diffuse

		dc := e.DCPower.DCPower(effective, cellTemp, plant.RatedDCPowerW, plant.TempCoeff)

		day := s.Time.UTC().Truncate(24 * time.Hour)
		byDate[day] += dc
	}

	out := make([]DailyEnergy, 0, len(byDate))
	for day, dcSum := range byDate {
		out = append(out, DailyEnergy{
			Date:   day,
			Energy: dcSum * plant.InverterEfficiency * (1 - plant.SystemLosses),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
