package thermo_test

import (
	"testing"

	"github.com/lone-faerie/thermo"
)

func TestConvert(t *testing.T) {
	var tests = []struct {
		name string
		got  float64
		want float64
	}{
		{"36.5°C -> °F", thermo.CelsiusToFahrenheit(thermo.C(36.5)).Float(), 97.7},
		{"36.5°C -> K", thermo.CelsiusToKelvin(thermo.C(36.5)).Float(), 309.65},
		{"79°F -> °C", thermo.FahrenheitToCelsius(thermo.F(79.0)).Float(), 26.1111},
		{"79°F -> K", thermo.FahrenheitToKelvin(thermo.F(79.0)).Float(), 299.2611},
		{"100K -> °C", thermo.KelvinToCelsius(thermo.K(100.0)).Float(), -173.15},
		{"100K -> °F", thermo.KelvinToFahrenheit(thermo.K(100.0)).Float(), -279.67},
		{"-40°C -> °F", thermo.CelsiusToFahrenheit(thermo.C(-40)).Float(), -40},
		{"0°C -> K", thermo.CelsiusToKelvin(thermo.C(0)).Float(), 273.15},
		{"32°F -> °C", thermo.FahrenheitToCelsius(thermo.F(32)).Float(), 0},
	}
	for _, tt := range tests {
		if !thermo.AlmostEqual(tt.got, tt.want) {
			t.Errorf("%s: Wanted %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	var values = []float64{-1000.5, -459.67, -273.15, -40, 0, 0.25, 36.5, 79, 100, 451, 1000}

	var trips = []struct {
		name string
		trip func(v float64) float64
	}{
		{"°C -> °F -> °C", func(v float64) float64 {
			return thermo.FahrenheitToCelsius(thermo.CelsiusToFahrenheit(thermo.C(v))).Float()
		}},
		{"°C -> K -> °C", func(v float64) float64 {
			return thermo.KelvinToCelsius(thermo.CelsiusToKelvin(thermo.C(v))).Float()
		}},
		{"°F -> °C -> °F", func(v float64) float64 {
			return thermo.CelsiusToFahrenheit(thermo.FahrenheitToCelsius(thermo.F(v))).Float()
		}},
		{"°F -> K -> °F", func(v float64) float64 {
			return thermo.KelvinToFahrenheit(thermo.FahrenheitToKelvin(thermo.F(v))).Float()
		}},
		{"K -> °C -> K", func(v float64) float64 {
			return thermo.CelsiusToKelvin(thermo.KelvinToCelsius(thermo.K(v))).Float()
		}},
		{"K -> °F -> K", func(v float64) float64 {
			return thermo.FahrenheitToKelvin(thermo.KelvinToFahrenheit(thermo.K(v))).Float()
		}},
	}

	for _, tr := range trips {
		t.Run(tr.name, func(t *testing.T) {
			for _, v := range values {
				if got := tr.trip(v); !thermo.AlmostEqual(v, got) {
					t.Errorf("%v: Wanted %v, got %v", v, v, got)
				}
			}
		})
	}
}
