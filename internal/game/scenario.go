package game

// Scenario is one playable item produced by the content generator.
type Scenario interface {
	// Prompt is the text shown above the options.
	Prompt() string
	Options() []string
	// Answer is the correct option.
	Answer() string
	Explanation() string
}

// DrugCase is a Drug Dash patient case: pick the medication that fits.
type DrugCase struct {
	Case          string   `json:"scenario"`
	Choices       []string `json:"options"`
	CorrectDrug   string   `json:"correctDrug"`
	Justification string   `json:"explanation"`
}

func (d DrugCase) Prompt() string      { return d.Case }
func (d DrugCase) Options() []string   { return d.Choices }
func (d DrugCase) Answer() string      { return d.CorrectDrug }
func (d DrugCase) Explanation() string { return d.Justification }

// Vital is a single reading on a Vital Signs chart.
type Vital struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	IsNormal bool   `json:"isNormal"`
}

// Vital Signs answers.
const (
	AnswerNormal   = "Normal"
	AnswerAbnormal = "Abnormal"
)

// PatientType selects the reference ranges for Vital Signs scenarios.
type PatientType string

const (
	Adult     PatientType = "adult"
	Pediatric PatientType = "pediatric"
)

// ParsePatientType maps user input to a PatientType.
func ParsePatientType(s string) (PatientType, bool) {
	switch PatientType(s) {
	case Adult, Pediatric:
		return PatientType(s), true
	default:
		return "", false
	}
}

// VitalsCase is a Vital Signs Crisis chart: classify it as normal or abnormal.
type VitalsCase struct {
	PatientDescription string  `json:"patientDescription"`
	Vitals             []Vital `json:"vitals"`
	Normal             bool    `json:"isNormal"`
	Justification      string  `json:"explanation"`
}

func (v VitalsCase) Prompt() string    { return v.PatientDescription }
func (v VitalsCase) Options() []string { return []string{AnswerNormal, AnswerAbnormal} }

func (v VitalsCase) Answer() string {
	if v.Normal {
		return AnswerNormal
	}
	return AnswerAbnormal
}

func (v VitalsCase) Explanation() string { return v.Justification }

// TermQuestion is a MedTerm Mayhem question about a single medical term.
type TermQuestion struct {
	Question      string   `json:"question"`
	Term          string   `json:"term"`
	Choices       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Justification string   `json:"explanation"`
}

func (q TermQuestion) Prompt() string {
	if q.Term == "" {
		return q.Question
	}
	return q.Question + "\n" + q.Term
}

func (q TermQuestion) Options() []string   { return q.Choices }
func (q TermQuestion) Answer() string      { return q.CorrectAnswer }
func (q TermQuestion) Explanation() string { return q.Justification }
