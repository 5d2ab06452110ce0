package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/readynurse/internal/dosage"
	"github.com/charmbracelet/huh"
)

const (
	calcBasic  = "basic"
	calcWeight = "weight"
	calcDrip   = "drip"
	calcIV     = "iv"
)

// calcInputs holds the raw field values of the interactive calculator.
type calcInputs struct {
	mode string

	desired, onHand, quantity, qtyUnit string

	weight, weightUnit, dosePerKg string

	volume, minutes string
	dropFactor      int

	dose, drug string
}

func positiveField(s string) error {
	if _, ok := dosage.ParsePositive(s); !ok {
		return errors.New("enter a number greater than zero")
	}
	return nil
}

func numberInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(positiveField)
}

// calcForm builds the calculator form. Only the group for the chosen mode is
// shown after the first step.
func calcForm(in *calcInputs) *huh.Form {
	quantityUnits := huh.NewOptions(dosage.QuantityUnits...)
	dropFactors := make([]huh.Option[int], 0, len(dosage.DropFactors))
	for _, df := range dosage.DropFactors {
		dropFactors = append(dropFactors, huh.NewOption(fmt.Sprintf("%d gtts/mL", df), df))
	}

	hidden := func(mode string) func() bool {
		return func() bool { return in.mode != mode }
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which calculation?").
				Options(
					huh.NewOption("Basic (D / H x Q)", calcBasic),
					huh.NewOption("Weight-based dose", calcWeight),
					huh.NewOption("IV drip rate", calcDrip),
					huh.NewOption("Weight-based IV infusion", calcIV),
				).
				Value(&in.mode),
		),
		huh.NewGroup(
			numberInput("Desired dose (D)", &in.desired),
			numberInput("Dose on hand (H)", &in.onHand),
			numberInput("Quantity (Q)", &in.quantity),
			huh.NewSelect[string]().Title("Unit").Options(quantityUnits...).Value(&in.qtyUnit),
		).WithHideFunc(hidden(calcBasic)),
		huh.NewGroup(
			numberInput("Patient weight", &in.weight),
			huh.NewSelect[string]().Title("Weight unit").
				Options(huh.NewOption("kg", string(dosage.Kilograms)), huh.NewOption("lbs", string(dosage.Pounds))).
				Value(&in.weightUnit),
			numberInput("Dose per kg", &in.dosePerKg),
			numberInput("Dose on hand (H)", &in.onHand),
			numberInput("Quantity (Q)", &in.quantity),
			huh.NewSelect[string]().Title("Unit").Options(quantityUnits...).Value(&in.qtyUnit),
		).WithHideFunc(hidden(calcWeight)),
		huh.NewGroup(
			numberInput("Volume (mL)", &in.volume),
			numberInput("Time (minutes)", &in.minutes),
			huh.NewSelect[int]().Title("Drop factor").Options(dropFactors...).Value(&in.dropFactor),
		).WithHideFunc(hidden(calcDrip)),
		huh.NewGroup(
			numberInput("Ordered dose (mcg/kg/min)", &in.dose),
			numberInput("Patient weight (kg)", &in.weight),
			numberInput("Bag volume (mL)", &in.volume),
			numberInput("Drug in bag (mg)", &in.drug),
		).WithHideFunc(hidden(calcIV)),
	).WithTheme(readyNurseHuhTheme()).WithShowHelp(false)
}

// writeCalcResult prints the answer for the completed form.
func writeCalcResult(w io.Writer, in *calcInputs) {
	switch in.mode {
	case calcBasic:
		writeBasic(w, in.desired, in.onHand, in.quantity, in.qtyUnit)
	case calcWeight:
		unit, ok := dosage.ParseWeightUnit(in.weightUnit)
		if !ok {
			unit = dosage.Kilograms
		}
		writeWeight(w, in.weight, unit, in.dosePerKg, in.onHand, in.quantity, in.qtyUnit)
	case calcDrip:
		writeDrip(w, in.volume, in.minutes, in.dropFactor)
	case calcIV:
		writeIV(w, in.dose, in.weight, in.volume, in.drug)
	}
}

func runCalcForm(w io.Writer) error {
	in := &calcInputs{
		mode:       calcBasic,
		qtyUnit:    dosage.QuantityUnits[0],
		weightUnit: string(dosage.Kilograms),
		dropFactor: dosage.DropFactors[1],
	}
	if err := calcForm(in).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	writeCalcResult(w, in)
	return nil
}
