package orientation

// Polynomial coefficients of s+XY/2, arcseconds, for IAU 2000A and 2006.
var (
	s00Poly = [6]float64{94.00e-6, 3808.35e-6, -119.94e-6, -72574.09e-6, 27.70e-6, 15.61e-6}
	s06Poly = [6]float64{94.00e-6, 3808.65e-6, -122.68e-6, -72574.11e-6, 27.98e-6, 15.62e-6}
)

// Periodic terms of s+XY/2 of order t^0, shared by IAU 2000A and 2006.
var sTerms0 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -2640.73e-6, 0.39e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -63.53e-6, 0.02e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, -11.75e-6, -0.01e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, -11.21e-6, -0.01e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, 4.57e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 3, 0, 0, 0}, -2.02e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, -1.98e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 3, 0, 0, 0}, 1.72e-6, 0.00e-6},
	{[8]int{0, 1, 0, 0, 1, 0, 0, 0}, 1.41e-6, 0.01e-6},
	{[8]int{0, 1, 0, 0, -1, 0, 0, 0}, 1.26e-6, 0.01e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 3, 0, 0, 0}, -0.46e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 1, 0, 0, 0}, -0.45e-6, 0.00e-6},
	{[8]int{0, 0, 4, -4, 4, 0, 0, 0}, -0.36e-6, 0.00e-6},
	{[8]int{0, 0, 1, -1, 1, -8, 12, 0}, 0.24e-6, 0.12e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, -0.32e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, -0.28e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 3, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 0, 0, 0, 0}, 0.21e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -3, 0, 0, 0}, -0.19e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -1, 0, 0, 0}, -0.18e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 0, 8, -13, -1}, 0.10e-6, -0.05e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, -0.15e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{0, 0, 4, -2, 4, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 4, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -3, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -1, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

// IAU 2000A terms of order t^1 to t^3.
var s00Terms1 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -0.07e-6, 3.57e-6},
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 1.71e-6, -0.03e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, 0.00e-6, 0.48e-6},
}

var s00Terms2 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 743.53e-6, -0.17e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, 56.91e-6, 0.06e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, 9.84e-6, -0.01e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -8.85e-6, 0.01e-6},
	{[8]int{0, 1, 0, 0, 0, 0, 0, 0}, -6.38e-6, -0.05e-6},
	{[8]int{1, 0, 0, 0, 0, 0, 0, 0}, -3.07e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, 2.23e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, 1.67e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 2, 0, 0, 0}, 1.30e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -2, 0, 0, 0}, 0.93e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 0, 0, 0, 0}, 0.68e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, -0.55e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -2, 0, 0, 0}, 0.53e-6, 0.00e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, -2, -2, -2, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, -0.25e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, 0.22e-6, 0.00e-6},
	{[8]int{2, 0, 0, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, 0.20e-6, 0.00e-6},
	{[8]int{0, 0, 2, 2, 2, 0, 0, 0}, 0.17e-6, 0.00e-6},
	{[8]int{2, 0, 2, 0, 2, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]int{2, 0, 0, 0, 0, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]int{1, 0, 2, -2, 2, 0, 0, 0}, -0.12e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var s00Terms3 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 0.30e-6, -23.51e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, -0.03e-6, -1.39e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, -0.01e-6, -0.24e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, 0.00e-6, 0.22e-6},
}

// IAU 2006 terms of order t^1 to t^3.
var s06Terms1 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -0.07e-6, 3.57e-6},
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 1.73e-6, -0.03e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, 0.00e-6, 0.48e-6},
}

var s06Terms2 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 743.52e-6, -0.17e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, 56.91e-6, 0.06e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, 9.84e-6, -0.01e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -8.85e-6, 0.01e-6},
	{[8]int{0, 1, 0, 0, 0, 0, 0, 0}, -6.38e-6, -0.05e-6},
	{[8]int{1, 0, 0, 0, 0, 0, 0, 0}, -3.07e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, 2.23e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, 1.67e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 2, 0, 0, 0}, 1.30e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -2, 0, 0, 0}, 0.93e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 0, 0, 0, 0}, 0.68e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, -0.55e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -2, 0, 0, 0}, 0.53e-6, 0.00e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, -2, -2, -2, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, -0.25e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, 0.22e-6, 0.00e-6},
	{[8]int{2, 0, 0, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, 0.20e-6, 0.00e-6},
	{[8]int{0, 0, 2, 2, 2, 0, 0, 0}, 0.17e-6, 0.00e-6},
	{[8]int{2, 0, 2, 0, 2, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]int{2, 0, 0, 0, 0, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]int{1, 0, 2, -2, 2, 0, 0, 0}, -0.12e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var s06Terms3 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 0.30e-6, -23.42e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, -0.03e-6, -1.46e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, -0.01e-6, -0.25e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, 0.00e-6, 0.23e-6},
}

// Order t^4, common to both models.
var sTerms4 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -0.26e-6, -0.01e-6},
}

// Complementary terms of the equation of the equinoxes, order t^0.
var eectTerms0 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 2640.96e-6, -0.39e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, 63.52e-6, -0.02e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, 11.75e-6, 0.01e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, 11.21e-6, 0.01e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, -4.55e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 3, 0, 0, 0}, 2.02e-6, -0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, 1.98e-6, -0.00e-6},
	{[8]int{0, 0, 0, 0, 3, 0, 0, 0}, -1.72e-6, -0.00e-6},
	{[8]int{0, 1, 0, 0, 1, 0, 0, 0}, -1.41e-6, -0.01e-6},
	{[8]int{0, 1, 0, 0, -1, 0, 0, 0}, -1.26e-6, -0.01e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, -0.63e-6, -0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, -0.63e-6, -0.00e-6},
	{[8]int{0, 1, 2, -2, 3, 0, 0, 0}, 0.46e-6, -0.00e-6},
	{[8]int{0, 1, 2, -2, 1, 0, 0, 0}, 0.45e-6, -0.00e-6},
	{[8]int{0, 0, 4, -4, 4, 0, 0, 0}, 0.36e-6, -0.00e-6},
	{[8]int{0, 0, 1, -1, 1, -8, 12, 0}, -0.24e-6, -0.12e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, 0.32e-6, -0.00e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, 0.28e-6, -0.00e-6},
	{[8]int{1, 0, 2, 0, 3, 0, 0, 0}, 0.27e-6, -0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, 0.26e-6, -0.00e-6},
	{[8]int{0, 0, 2, -2, 0, 0, 0, 0}, -0.21e-6, -0.00e-6},
	{[8]int{0, 1, -2, 2, -3, 0, 0, 0}, 0.19e-6, -0.00e-6},
	{[8]int{0, 1, -2, 2, -1, 0, 0, 0}, 0.18e-6, -0.00e-6},
	{[8]int{0, 0, 0, 0, 0, 8, -13, -1}, -0.10e-6, 0.05e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, 0.15e-6, -0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, -0.14e-6, -0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, -0.14e-6, -0.00e-6},
	{[8]int{1, 0, 0, -2, 1, 0, 0, 0}, 0.14e-6, -0.00e-6},
	{[8]int{1, 0, 0, -2, -1, 0, 0, 0}, 0.14e-6, -0.00e-6},
	{[8]int{0, 0, 4, -2, 4, 0, 0, 0}, 0.13e-6, -0.00e-6},
	{[8]int{0, 0, 2, -2, 4, 0, 0, 0}, -0.11e-6, -0.00e-6},
	{[8]int{1, 0, -2, 0, -3, 0, 0, 0}, 0.11e-6, -0.00e-6},
	{[8]int{1, 0, -2, 0, -1, 0, 0, 0}, 0.11e-6, -0.00e-6},
}

// Order t^1.
var eectTerms1 = [...]cioTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -0.87e-6, 0.00e-6},
}
