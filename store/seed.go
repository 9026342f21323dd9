// SPDX-License-Identifier: MIT
package store

// Seed returns one sample record per classroom exercise, numbered from 1.
// Records 7..11 share a general 3x3 system and 12..15 a symmetric,
// diagonally dominant one; both have the solution (1, 2, 3).
func Seed() []Record {
	const (
		general   = "[[-2,3,1],[3,4,-5],[1,-2,1]]"
		generalB  = "[7,-4,0]"
		spd       = "[[4,-1,0],[-1,4,-1],[0,-1,4]]"
		spdB      = "[2,4,10]"
		gravityX  = "[0,20000,40000,60000,80000]"
		gravityY  = "[9.81,9.7487,9.6879,9.6282,9.5682]"
		samplesX  = "[10,15,20,30,40,50,60,70,80]"
		samplesY  = "[5,9,15,18,22,30,35,38,43]"
		quartic   = "x^4 - 13"
		quadratic = "x^2 - 7"
	)

	return []Record{
		{No: 1, Equation: quartic, XL: "1.5", XR: "2"},
		{No: 2, Equation: quartic, XL: "1.5", XR: "2"},
		{No: 3, Equation: "cos(x)", X: "1"},
		{No: 4, Equation: quadratic, X: "2"},
		{No: 5, Equation: quadratic, XL: "1", XR: "2"},
		{No: 6, Equation: "43*x - 180", X: "0", N: "10"},
		{No: 7, A: general, B: generalB},
		{No: 8, A: general, B: generalB},
		{No: 9, A: general, B: generalB},
		{No: 10, A: general, B: generalB},
		{No: 11, A: general, B: generalB},
		{No: 12, A: spd, B: spdB},
		{No: 13, A: spd, B: spdB},
		{No: 14, A: spd, B: spdB},
		{No: 15, A: spd, B: spdB},
		{No: 16, A: gravityX, B: gravityY, XIn: "42000"},
		{No: 17, A: gravityX, B: gravityY, XIn: "42000"},
		{No: 18, A: gravityX, B: gravityY, XIn: "42000"},
		{No: 19, A: samplesX, B: samplesY, XIn: "65"},
		{No: 20, A: samplesX, B: samplesY, XIn: "65", M: "2"},
		{No: 21, X: "4", XL: "2", N: "3"},
	}
}
