package models

import (
	"fmt"
	"math"
)

// WeatherSnapshot holds current conditions at a destination (metric units)
type WeatherSnapshot struct {
	Temperature float64 // Celsius
	Description string  // e.g. "scattered clouds"
	Humidity    int     // percent
	WindSpeed   float64 // m/s
}

// TemperatureLabel rounds to the nearest whole degree, e.g. "27°C"
func (w WeatherSnapshot) TemperatureLabel() string {
	return fmt.Sprintf("%d°C", int(math.Round(w.Temperature)))
}

// HumidityLabel returns e.g. "Humidity: 78%"
func (w WeatherSnapshot) HumidityLabel() string {
	return fmt.Sprintf("Humidity: %d%%", w.Humidity)
}

// WindLabel returns e.g. "Wind: 3.6 m/s"
func (w WeatherSnapshot) WindLabel() string {
	return fmt.Sprintf("Wind: %g m/s", w.WindSpeed)
}
