package model

import "time"

// Irradiance holds the three standard irradiance components, in W/m2.
type Irradiance struct {
	DNI float64 // direct normal
	GHI float64 // global horizontal
	DHI float64 // diffuse horizontal
}

// SunPosition holds the solar position angles for one instant, in degrees.
type SunPosition struct {
	ZenithDeg  float64
	AzimuthDeg float64
}

// WeatherSample is one row of a weather/irradiance time series.
// Timestamps are UTC; the yield estimator groups samples by UTC calendar date.
type WeatherSample struct {
	Time             time.Time
	Irradiance       Irradiance
	Sun              SunPosition
	Extraterrestrial float64 // extraterrestrial normal irradiance, W/m2
	AmbientTempC     float64
	WindSpeedMS      float64
}
