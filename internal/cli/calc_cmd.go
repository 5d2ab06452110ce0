package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/dosage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// weightUnitFlag is a --weight-unit flag that only accepts kg or lbs.
type weightUnitFlag struct {
	unit dosage.WeightUnit
}

var _ pflag.Value = (*weightUnitFlag)(nil)

func (f *weightUnitFlag) String() string { return string(f.unit) }

func (f *weightUnitFlag) Set(s string) error {
	u, ok := dosage.ParseWeightUnit(s)
	if !ok {
		return fmt.Errorf("weight unit must be kg or lbs, got %q", s)
	}
	f.unit = u
	return nil
}

func (f *weightUnitFlag) Type() string { return "kg|lbs" }

// quantityUnitFlag is a --unit flag restricted to dosage.QuantityUnits.
type quantityUnitFlag struct {
	unit string
}

var _ pflag.Value = (*quantityUnitFlag)(nil)

func (f *quantityUnitFlag) String() string { return f.unit }

func (f *quantityUnitFlag) Set(s string) error {
	u, ok := dosage.ParseQuantityUnit(s)
	if !ok {
		return fmt.Errorf("unit must be one of %s, got %q", strings.Join(dosage.QuantityUnits, ", "), s)
	}
	f.unit = u
	return nil
}

func (f *quantityUnitFlag) Type() string { return "unit" }

func newCalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Medication dosage calculators",
		Long: `Dosage calculators for the four formulas used on the ward.
Run without a subcommand in a terminal to open the interactive form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runCalcForm(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(
		newCalcBasicCmd(),
		newCalcWeightCmd(),
		newCalcDripCmd(),
		newCalcIVCmd(),
	)

	return cmd
}

func newCalcBasicCmd() *cobra.Command {
	var desired, onHand, quantity string
	unit := &quantityUnitFlag{unit: dosage.QuantityUnits[0]}

	cmd := &cobra.Command{
		Use:   "basic",
		Short: "Desired over have: (D / H) x Q",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeBasic(cmd.OutOrStdout(), desired, onHand, quantity, unit.unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&desired, "desired", "", "Ordered dose (D)")
	cmd.Flags().StringVar(&onHand, "on-hand", "", "Dose on hand (H)")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Quantity the on-hand dose comes in (Q)")
	cmd.Flags().Var(unit, "unit", "Quantity unit: tablet(s), mL or capsule(s)")

	return cmd
}

func newCalcWeightCmd() *cobra.Command {
	var weight, dosePerKg, onHand, quantity string
	weightUnit := &weightUnitFlag{unit: dosage.Kilograms}
	unit := &quantityUnitFlag{unit: "mL"}

	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Weight-based dose: (weight x dose/kg) / H x Q",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeWeight(cmd.OutOrStdout(), weight, weightUnit.unit, dosePerKg, onHand, quantity, unit.unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&weight, "weight", "", "Patient weight")
	cmd.Flags().Var(weightUnit, "weight-unit", "Weight unit (kg or lbs)")
	cmd.Flags().StringVar(&dosePerKg, "dose-per-kg", "", "Ordered dose per kg")
	cmd.Flags().StringVar(&onHand, "on-hand", "", "Dose on hand (H)")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Quantity the on-hand dose comes in (Q)")
	cmd.Flags().Var(unit, "unit", "Quantity unit: tablet(s), mL or capsule(s)")

	return cmd
}

func newCalcDripCmd() *cobra.Command {
	var volume, minutes string
	var dropFactor int

	cmd := &cobra.Command{
		Use:   "drip",
		Short: "IV drip rate: (volume x drop factor) / minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !dosage.ValidDropFactor(dropFactor) {
				return fmt.Errorf("drop factor must be one of %v gtts/mL", dosage.DropFactors)
			}
			writeDrip(cmd.OutOrStdout(), volume, minutes, dropFactor)
			return nil
		},
	}

	cmd.Flags().StringVar(&volume, "volume", "", "Volume to infuse (mL)")
	cmd.Flags().StringVar(&minutes, "minutes", "", "Infusion time (minutes)")
	cmd.Flags().IntVar(&dropFactor, "drop-factor", 15, "Drop factor (gtts/mL)")

	return cmd
}

func newCalcIVCmd() *cobra.Command {
	var dose, weight, volume, drug string

	cmd := &cobra.Command{
		Use:   "iv",
		Short: "Weight-based IV infusion pump rate (mL/hr)",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeIV(cmd.OutOrStdout(), dose, weight, volume, drug)
			return nil
		},
	}

	cmd.Flags().StringVar(&dose, "dose", "", "Ordered dose (mcg/kg/min)")
	cmd.Flags().StringVar(&weight, "weight", "", "Patient weight (kg)")
	cmd.Flags().StringVar(&volume, "volume", "", "Bag volume (mL)")
	cmd.Flags().StringVar(&drug, "drug", "", "Drug in bag (mg)")

	return cmd
}

func writeBasic(w io.Writer, desired, onHand, quantity, unit string) {
	d, ok1 := dosage.ParsePositive(desired)
	h, ok2 := dosage.ParsePositive(onHand)
	q, ok3 := dosage.ParsePositive(quantity)
	v, ok := dosage.Basic(d, h, q)
	fmt.Fprint(w, formatter.FormatCalcResult("Give", dosage.FormatAmount(v, unit), ok1 && ok2 && ok3 && ok))
}

func writeWeight(w io.Writer, weight string, unit dosage.WeightUnit, dosePerKg, onHand, quantity, qtyUnit string) {
	wt, ok1 := dosage.ParsePositive(weight)
	d, ok2 := dosage.ParsePositive(dosePerKg)
	h, ok3 := dosage.ParsePositive(onHand)
	q, ok4 := dosage.ParsePositive(quantity)
	v, ok := dosage.WeightBased(wt, unit, d, h, q)
	ready := ok1 && ok2 && ok3 && ok4 && ok
	if ready && unit == dosage.Pounds {
		kg, _ := dosage.ToKilograms(wt, unit)
		fmt.Fprint(w, formatter.FormatCalcResult("Weight", strconv.FormatFloat(dosage.RoundTo(kg, 2), 'f', -1, 64)+" kg", true))
	}
	fmt.Fprint(w, formatter.FormatCalcResult("Give", dosage.FormatAmount(v, qtyUnit), ready))
}

func writeDrip(w io.Writer, volume, minutes string, dropFactor int) {
	vol, ok1 := dosage.ParsePositive(volume)
	mins, ok2 := dosage.ParsePositive(minutes)
	v, ok := dosage.DripRate(vol, mins, dropFactor)
	fmt.Fprint(w, formatter.FormatCalcResult("Rate", dosage.FormatDripRate(v), ok1 && ok2 && ok))
}

func writeIV(w io.Writer, dose, weight, volume, drug string) {
	d, ok1 := dosage.ParsePositive(dose)
	wt, ok2 := dosage.ParsePositive(weight)
	vol, ok3 := dosage.ParsePositive(volume)
	mg, ok4 := dosage.ParsePositive(drug)
	v, ok := dosage.WeightBasedIV(d, wt, vol, mg)
	fmt.Fprint(w, formatter.FormatCalcResult("Pump rate", dosage.FormatPumpRate(v), ok1 && ok2 && ok3 && ok4 && ok))
}
