package formatter

import "fmt"

// FormatCalcResult renders a calculator answer, or a hint when inputs are
// incomplete.
func FormatCalcResult(label, value string, ok bool) string {
	if !ok {
		return Dim("Enter positive values for every field to see the result.") + "\n"
	}
	return fmt.Sprintf("%s %s\n", StyleDim.Render(label+":"), StyleGreen.Bold(true).Render(value))
}
