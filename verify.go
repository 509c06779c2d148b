package thermo

import "fmt"

// Verify runs the fixed sequence of round-trip checks over the three seed
// quantities 36.5°C, 79°F, and 100K. A conversion that does not return to
// its original value within [Epsilon] is an invariant violation, so Verify
// panics with the failing round trip rather than returning an error.
// A normal return means every check passed.
func Verify() {
	t1 := C(36.5)
	t2 := F(79.0)
	t3 := K(100.0)

	assert(t1.Equal(FahrenheitToCelsius(CelsiusToFahrenheit(t1))), "%v -> °F -> °C", t1)
	assert(t1.Equal(KelvinToCelsius(CelsiusToKelvin(t1))), "%v -> K -> °C", t1)

	assert(t2.Equal(CelsiusToFahrenheit(FahrenheitToCelsius(t2))), "%v -> °C -> °F", t2)
	assert(t2.Equal(KelvinToFahrenheit(FahrenheitToKelvin(t2))), "%v -> K -> °F", t2)

	assert(t3.Equal(CelsiusToKelvin(KelvinToCelsius(t3))), "%v -> °C -> K", t3)
	assert(t3.Equal(FahrenheitToKelvin(KelvinToFahrenheit(t3))), "%v -> °F -> K", t3)
}

func assert(ok bool, format string, args ...any) {
	if !ok {
		panic("thermo: round trip failed: " + fmt.Sprintf(format, args...))
	}
}
