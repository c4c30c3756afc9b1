// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package weather

// Comfort maps a temperature in degrees Celsius to a coarse comfort
// label. The returned strings are message catalog keys.
func Comfort(celsius float64) string {
	switch {
	case celsius < 0:
		return "Very cold"
	case celsius < 10:
		return "Cold"
	case celsius < 20:
		return "Pleasant"
	case celsius < 28:
		return "Warm"
	default:
		return "Hot"
	}
}
