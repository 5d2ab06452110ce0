// Package dosage implements the medication calculators: desired-over-have,
// weight-based single doses, gravity IV drip rates and weight-based
// continuous infusions.
//
// Every calculator returns (value, ok). ok is false whenever an input is
// missing, non-numeric or not strictly positive; callers treat that as
// "no result yet" rather than as an error.
package dosage

import (
	"math"
	"strconv"
	"strings"
)

// WeightUnit is the unit a patient weight was entered in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

// lbsPerKg is the conversion factor used on the ward, not the exact 2.2046.
const lbsPerKg = 2.2

// mcgPerMg converts a drug mass from milligrams to micrograms.
const mcgPerMg = 1000

// maxResult bounds what a calculator will display. Anything larger came from
// extreme inputs and cannot be a real dose or rate.
const maxResult = 1e12

// DropFactors is the closed set of IV administration set calibrations (gtts/mL).
var DropFactors = []int{10, 15, 20, 60}

// QuantityUnits are the display units offered for the basic formula.
var QuantityUnits = []string{"tablet(s)", "mL", "capsule(s)"}

// ParseQuantityUnit matches s against QuantityUnits, ignoring case and the
// "(s)" plural marker.
func ParseQuantityUnit(s string) (string, bool) {
	norm := func(u string) string {
		u = strings.ToLower(strings.TrimSpace(u))
		u = strings.TrimSuffix(u, "(s)")
		return strings.TrimSuffix(u, "s")
	}
	want := norm(s)
	for _, u := range QuantityUnits {
		if norm(u) == want {
			return u, true
		}
	}
	return "", false
}

// ValidDropFactor reports whether f is one of the supported drop factors.
func ValidDropFactor(f int) bool {
	for _, df := range DropFactors {
		if df == f {
			return true
		}
	}
	return false
}

// ParseWeightUnit maps user input to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs", "kilograms":
		return Kilograms, true
	case "lb", "lbs", "pounds":
		return Pounds, true
	default:
		return "", false
	}
}

// ParsePositive parses a calculator field. Blank, non-numeric, infinite and
// non-positive values are reported as not ready.
func ParsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, positive(v)
}

// ToKilograms converts a weight to kilograms.
func ToKilograms(weight float64, unit WeightUnit) (float64, bool) {
	if !positive(weight) {
		return 0, false
	}
	switch unit {
	case Kilograms:
		return weight, true
	case Pounds:
		return weight / lbsPerKg, true
	default:
		return 0, false
	}
}

// Basic computes (desired / onHand) * quantity.
func Basic(desired, onHand, quantity float64) (float64, bool) {
	if !positive(desired, onHand, quantity) {
		return 0, false
	}
	return result(desired / onHand * quantity)
}

// WeightBased computes the volume to give for a per-kilogram order:
// the weight is converted to kg, multiplied by the prescribed dose per kg,
// and the total is run through the basic formula.
func WeightBased(weight float64, unit WeightUnit, dosePerKg, onHand, quantity float64) (float64, bool) {
	kg, ok := ToKilograms(weight, unit)
	if !ok || !positive(dosePerKg, onHand, quantity) {
		return 0, false
	}
	total := kg * dosePerKg
	return result(total / onHand * quantity)
}

// DripRate computes the gravity flow rate in gtts/min. The raw value is
// returned; use RoundDrops for display.
func DripRate(volumeMl, minutes float64, dropFactor int) (float64, bool) {
	if !positive(volumeMl, minutes) || !ValidDropFactor(dropFactor) {
		return 0, false
	}
	return result(volumeMl * float64(dropFactor) / minutes)
}

// WeightBasedIV computes a pump rate in mL/hr for a mcg/kg/min order given
// the bag contents (drug mg in volume mL).
func WeightBasedIV(mcgPerKgMin, weightKg, volumeMl, drugMg float64) (float64, bool) {
	if !positive(mcgPerKgMin, weightKg, volumeMl, drugMg) {
		return 0, false
	}
	concentration := drugMg * mcgPerMg / volumeMl
	return result(mcgPerKgMin * weightKg * 60 / concentration)
}

// RoundDrops rounds a drip rate to whole drops, halves away from zero.
func RoundDrops(rate float64) int {
	return int(math.Round(rate))
}

// RoundTo rounds v to the given number of decimal places, halves away from zero.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// result withholds values that overflowed, underflowed to zero or exceed
// maxResult.
func result(v float64) (float64, bool) {
	if !positive(v) || v > maxResult {
		return 0, false
	}
	return v, true
}

func positive(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}
