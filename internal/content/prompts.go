package content

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/game"
)

const systemPrompt = `You write study material for nursing students preparing for the NCLEX.
Content must be clinically accurate and use generic drug names.
You must output ONLY a JSON object of the form {"items": [...]}, no markdown fences, no text before or after.`

func flashcardPrompt(req FlashcardRequest) string {
	return fmt.Sprintf(`Create %d flashcards.
Subject: %s
Topic: %s
Difficulty: %s

Each item: {"frontText": "term or question", "backText": "concise answer or definition"}.
Keep each side under 40 words. Do not repeat cards.`,
		req.Count, orAny(req.Subject), orAny(req.Topic), orAny(req.Difficulty))
}

func quizPrompt(req QuestionRequest) string {
	return fmt.Sprintf(`Create %d NCLEX-style quiz questions.
Topic: %s
Difficulty: %s

Mix "Multiple Choice" and "Select All That Apply" questions.
Each item:
{
  "questionType": "Multiple Choice" or "Select All That Apply",
  "questionText": "the stem",
  "correctAnswers": ["exactly one for Multiple Choice, two or more for Select All That Apply"],
  "incorrectAnswers": ["plausible distractors"],
  "explanation": "one or two sentences of rationale"
}
Use 4 to 6 options in total per question. Answers must not repeat within a question.`,
		req.Count, orAny(req.Topic), orAny(req.Difficulty))
}

func drugScenarioPrompt(count int) string {
	return fmt.Sprintf(`Create %d short patient cases for a medication-selection game.
Each item:
{
  "scenario": "two or three sentences describing the patient and the problem",
  "options": ["four generic drug names"],
  "correctDrug": "the one option that best treats the case, copied exactly from options",
  "explanation": "one sentence on why"
}
Vary the body systems across cases.`, count)
}

func vitalScenarioPrompt(patient game.PatientType, count int) string {
	ranges := "adult reference ranges (HR 60-100, RR 12-20, BP 90-120/60-80, SpO2 95-100%, Temp 36.5-37.5 C)"
	if patient == game.Pediatric {
		ranges = "pediatric reference ranges for the stated age"
	}
	return fmt.Sprintf(`Create %d %s patient vital sign charts for a normal/abnormal triage game.
Judge every reading against %s.
Each item:
{
  "patientDescription": "age, sex and one-line presentation",
  "vitals": [{"name": "Heart Rate", "value": "88 bpm", "isNormal": true}],
  "isNormal": true only if every vital is normal,
  "explanation": "which readings are abnormal and why, or why the chart is normal"
}
Include 4 or 5 vitals per chart. Make roughly half of the charts abnormal.`, count, patient, ranges)
}

func medTermPrompt(count int) string {
	return fmt.Sprintf(`Create %d medical terminology questions for a timed quiz game.
Each item:
{
  "question": "for example: What does this term mean?",
  "term": "the medical term",
  "options": ["four short answers"],
  "correctAnswer": "copied exactly from options",
  "explanation": "break the term into its prefix, root and suffix"
}
Use a different term in every question.`, count)
}

func orAny(s string) string {
	if strings.TrimSpace(s) == "" {
		return "any"
	}
	return s
}
