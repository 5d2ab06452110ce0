package quiz

import (
	"math"
	"math/rand/v2"
)

// Shuffler permutes a slice of options in place.
type Shuffler func([]string)

// RandomShuffler returns a Fisher-Yates shuffler backed by math/rand/v2.
func RandomShuffler() Shuffler {
	return func(opts []string) {
		rand.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	}
}

// CompletionRecorder receives the final percentage once per completed pass.
type CompletionRecorder func(percent int)

// Session is one pass through a fixed, ordered question set. The zero value
// is not usable; create with NewSession.
type Session struct {
	questions []Question
	shuffle   Shuffler
	record    CompletionRecorder

	index     int
	options   []string
	selected  map[string]bool
	submitted bool
	correct   bool
	score     int
	finished  bool
	reported  bool
}

// Option configures a Session.
type Option func(*Session)

// WithShuffler overrides the option shuffler.
func WithShuffler(s Shuffler) Option {
	return func(q *Session) { q.shuffle = s }
}

// WithRecorder sets the callback invoked when the pass completes.
func WithRecorder(r CompletionRecorder) Option {
	return func(q *Session) { q.record = r }
}

// NewSession starts a pass at the first question. An empty question set is
// already finished with a final percentage of zero.
func NewSession(questions []Question, opts ...Option) *Session {
	s := &Session{
		questions: questions,
		shuffle:   RandomShuffler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.begin()
	return s
}

func (s *Session) begin() {
	s.index = 0
	s.score = 0
	s.finished = false
	s.reported = false
	if len(s.questions) == 0 {
		s.finish()
		return
	}
	s.loadQuestion()
}

func (s *Session) loadQuestion() {
	q := s.questions[s.index]
	s.options = q.Options()
	if s.shuffle != nil {
		s.shuffle(s.options)
	}
	s.selected = make(map[string]bool)
	s.submitted = false
	s.correct = false
}

// Current returns the active question. ok is false once the pass is finished.
func (s *Session) Current() (Question, bool) {
	if s.finished {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Options returns the shuffled options for the active question. The order is
// fixed until the question changes.
func (s *Session) Options() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

// Select toggles option for Multi questions and replaces the selection for
// Single questions. It is a no-op after submission or for unknown options.
func (s *Session) Select(option string) {
	if s.finished || s.submitted || !s.hasOption(option) {
		return
	}
	if s.questions[s.index].Type == Single {
		s.selected = map[string]bool{option: true}
		return
	}
	if s.selected[option] {
		delete(s.selected, option)
	} else {
		s.selected[option] = true
	}
}

// IsSelected reports whether option is part of the current selection.
func (s *Session) IsSelected(option string) bool {
	return s.selected[option]
}

// Selected returns the current selection in display order.
func (s *Session) Selected() []string {
	var out []string
	for _, o := range s.options {
		if s.selected[o] {
			out = append(out, o)
		}
	}
	return out
}

// Submit grades the current selection. ok is false if nothing is selected or
// the question was already submitted; the selection is then left untouched.
func (s *Session) Submit() (correct bool, ok bool) {
	if s.finished || s.submitted || len(s.selected) == 0 {
		return false, false
	}
	q := s.questions[s.index]
	s.submitted = true
	s.correct = exactMatch(s.selected, q.Correct)
	if s.correct {
		s.score++
	}
	return s.correct, true
}

// Submitted reports whether the active question has been graded.
func (s *Session) Submitted() bool { return s.submitted }

// LastCorrect reports the grade of the active question after Submit.
func (s *Session) LastCorrect() bool { return s.correct }

// Next advances to the following question, or completes the pass after the
// last one. It does nothing until the active question is submitted.
func (s *Session) Next() {
	if s.finished || !s.submitted {
		return
	}
	if s.index+1 >= len(s.questions) {
		s.finish()
		return
	}
	s.index++
	s.loadQuestion()
}

func (s *Session) finish() {
	s.finished = true
	s.options = nil
	s.selected = nil
	if s.reported {
		return
	}
	s.reported = true
	if s.record != nil {
		s.record(s.FinalPercent())
	}
}

// Restart begins a fresh pass over the same questions with new shuffles.
func (s *Session) Restart() {
	s.begin()
}

// Finished reports whether the pass is complete.
func (s *Session) Finished() bool { return s.finished }

// Index is the zero-based position of the active question.
func (s *Session) Index() int { return s.index }

// Total is the number of questions in the pass.
func (s *Session) Total() int { return len(s.questions) }

// Score is the count of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// FinalPercent is round(score/total*100), or 0 for an empty set.
func (s *Session) FinalPercent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(s.score) / float64(len(s.questions)) * 100))
}

func (s *Session) hasOption(option string) bool {
	for _, o := range s.options {
		if o == option {
			return true
		}
	}
	return false
}

func exactMatch(selected map[string]bool, correct []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	for _, c := range correct {
		if !selected[c] {
			return false
		}
	}
	return true
}
