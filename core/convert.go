package core

import "math"

// ToFahrenheit converts an integer milli-Celsius reading to degrees
// Fahrenheit rounded to one decimal place. Rounding ties go half away from
// zero (math.Round), which is the fixed rule this project documents rather
// than relying on platform-dependent tie-breaking. Total over all inputs;
// there is no error path.
//
// Example: 21398 milli-C = 21.398°C = 70.5°F.
func ToFahrenheit(milliCelsius int64) float64 {
	celsius := float64(milliCelsius) / 1000
	return math.Round((celsius*9/5+32)*10) / 10
}
