package thermo

// The conversion table. One function per ordered pair of distinct scales;
// converting a scale to itself is not representable. Each formula is exact
// and none is derived by composing the others, so no conversion picks up
// rounding beyond float precision.

// CelsiusToKelvin converts q to Kelvin.
func CelsiusToKelvin(q Quantity[Celsius]) Quantity[Kelvin] {
	return K(q.amount + 273.15)
}

// KelvinToCelsius converts q to Celsius.
func KelvinToCelsius(q Quantity[Kelvin]) Quantity[Celsius] {
	return C(q.amount - 273.15)
}

// CelsiusToFahrenheit converts q to Fahrenheit.
func CelsiusToFahrenheit(q Quantity[Celsius]) Quantity[Fahrenheit] {
	return F(q.amount*9/5 + 32)
}

// FahrenheitToCelsius converts q to Celsius.
func FahrenheitToCelsius(q Quantity[Fahrenheit]) Quantity[Celsius] {
	return C((q.amount - 32) * 5 / 9)
}

// FahrenheitToKelvin converts q to Kelvin.
func FahrenheitToKelvin(q Quantity[Fahrenheit]) Quantity[Kelvin] {
	return K((q.amount + 459.67) * 5 / 9)
}

// KelvinToFahrenheit converts q to Fahrenheit.
func KelvinToFahrenheit(q Quantity[Kelvin]) Quantity[Fahrenheit] {
	return F(q.amount*9/5 - 459.67)
}
