// Package game implements the timed mini-game sessions shared by Drug Dash,
// Vital Signs Crisis and MedTerm Mayhem.
//
// A Session is a plain state machine. Transitions that need I/O (fetching
// scenarios, waiting for a countdown tick, reporting results) return Cmds;
// the host runs them and feeds the resulting Msg back through Update. Every
// asynchronous message carries the run it belongs to, so messages that
// arrive after a run has ended are dropped.
package game

import (
	"context"
	"errors"
	"time"
)

// ErrNoScenarios is recorded when the content source returns an empty batch.
var ErrNoScenarios = errors.New("content generator returned no scenarios")

// TickInterval is the countdown resolution for timed variants.
const TickInterval = time.Second

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLoading
	PhasePlaying
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	default:
		return "menu"
	}
}

// Outcome is how the current scenario was resolved.
type Outcome int

const (
	Unanswered Outcome = iota
	Correct
	Incorrect
	TimedOut
)

// Msg is the result of a Cmd.
type Msg any

// Cmd is a side effect requested by a transition.
type Cmd func(ctx context.Context) Msg

// Source produces scenarios for a game.
type Source interface {
	Scenarios(ctx context.Context, count int) ([]Scenario, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, count int) ([]Scenario, error)

func (f SourceFunc) Scenarios(ctx context.Context, count int) ([]Scenario, error) {
	return f(ctx, count)
}

// Player is the signed-in user results are reported for.
type Player struct {
	UserID    string
	Name      string
	AvatarURL string
	BorderID  string
}

// Entry is a leaderboard submission.
type Entry struct {
	GameID    ID
	Score     int
	UserID    string
	UserName  string
	AvatarURL string
	BorderID  string
}

// Reporter persists the results of a session.
type Reporter interface {
	AwardCoins(ctx context.Context, userID string, coins int) error
	SubmitScore(ctx context.Context, entry Entry) error
}

// Summary describes the most recently ended run.
type Summary struct {
	GameOver     bool
	SessionScore int
	Coins        int
	Err          error
}

// ReportedMsg is delivered once the end-of-session report completes.
type ReportedMsg struct {
	Coins int
	Err   error
}

type batchMsg struct {
	run   uint64
	items []Scenario
	err   error
}

type tickMsg struct {
	run uint64
	seq uint64
}

// Option configures a Session.
type Option func(*Session)

// WithPlayer sets the user results are reported for. Without a player nothing
// is reported.
func WithPlayer(p *Player) Option {
	return func(s *Session) { s.player = p }
}

// WithReporter sets the result sink.
func WithReporter(r Reporter) Option {
	return func(s *Session) { s.reporter = r }
}

// WithClock replaces time.After for countdown ticks.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Session) { s.after = after }
}

// Session is one game screen. It must only be used from a single goroutine;
// Cmds it returns capture copies of the state they need.
type Session struct {
	variant  Variant
	source   Source
	reporter Reporter
	player   *Player
	after    func(time.Duration) <-chan time.Time

	phase    Phase
	run      uint64
	fetching bool
	queue    []Scenario
	current  Scenario
	seq      uint64
	outcome  Outcome
	choice   string
	timeLeft time.Duration

	score        int
	sessionScore int
	lives        int
	streak       int
	reported     bool
	reporting    int

	lastErr error
	summary *Summary
}

// NewSession creates a session in the menu phase.
func NewSession(v Variant, src Source, opts ...Option) *Session {
	s := &Session{
		variant: v,
		source:  src,
		after:   time.After,
		lives:   StartingLives,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new run from the menu.
func (s *Session) Start() []Cmd {
	if s.phase != PhaseMenu {
		return nil
	}
	s.run++
	s.score = 0
	s.sessionScore = 0
	s.lives = StartingLives
	s.streak = 0
	s.queue = nil
	s.current = nil
	s.outcome = Unanswered
	s.choice = ""
	s.reported = false
	s.lastErr = nil
	s.summary = nil
	s.phase = PhaseLoading
	return s.refill()
}

// Answer resolves the current scenario with the chosen option. Answers after
// the first for a scenario are ignored.
func (s *Session) Answer(choice string) []Cmd {
	if s.phase != PhasePlaying || s.outcome != Unanswered {
		return nil
	}
	if choice == s.current.Answer() {
		s.resolve(choice, Correct)
	} else {
		s.resolve(choice, Incorrect)
	}
	return nil
}

// Next leaves the result screen. With no lives left the run ends.
func (s *Session) Next() []Cmd {
	if s.phase != PhaseResult {
		return nil
	}
	if s.lives <= 0 {
		return s.end(true)
	}
	if len(s.queue) > 0 {
		return s.advance()
	}
	s.phase = PhaseLoading
	s.current = nil
	return s.refill()
}

// Exit ends the run early and reports its results.
func (s *Session) Exit() []Cmd {
	if s.phase == PhaseMenu {
		return nil
	}
	return s.end(false)
}

// Close is the teardown hook for a screen that is going away. If a run was in
// progress its coin reward is reported once, synchronously, from the live
// session state.
func (s *Session) Close(ctx context.Context) error {
	inRun := s.phase == PhasePlaying || s.phase == PhaseResult
	s.phase = PhaseMenu
	s.run++
	s.queue = nil
	s.current = nil
	if !inRun || s.reported || s.sessionScore <= 0 {
		return nil
	}
	s.reported = true
	if s.player == nil || s.reporter == nil {
		return nil
	}
	coins := s.variant.Coins(s.sessionScore)
	if coins <= 0 {
		return nil
	}
	return s.reporter.AwardCoins(ctx, s.player.UserID, coins)
}

// Update applies the result of a Cmd.
func (s *Session) Update(msg Msg) []Cmd {
	switch msg := msg.(type) {
	case batchMsg:
		return s.onBatch(msg)
	case tickMsg:
		return s.onTick(msg)
	case ReportedMsg:
		if s.reporting > 0 {
			s.reporting--
		}
		if s.summary != nil && msg.Err != nil {
			s.summary.Err = msg.Err
		}
	}
	return nil
}

func (s *Session) onBatch(msg batchMsg) []Cmd {
	s.fetching = false
	if msg.run != s.run {
		// A previous run's fetch; the current run may be waiting on it.
		return s.refill()
	}
	if s.phase == PhaseMenu {
		return nil
	}
	if msg.err == nil && len(msg.items) == 0 {
		msg.err = ErrNoScenarios
	}
	if msg.err != nil {
		cmds := s.end(false)
		s.lastErr = msg.err
		return cmds
	}
	s.queue = append(s.queue, msg.items...)
	if s.phase == PhaseLoading {
		return s.advance()
	}
	return s.refill()
}

func (s *Session) onTick(msg tickMsg) []Cmd {
	if msg.run != s.run || msg.seq != s.seq || s.phase != PhasePlaying || s.outcome != Unanswered {
		return nil
	}
	s.timeLeft -= TickInterval
	if s.timeLeft > 0 {
		return []Cmd{s.tick()}
	}
	s.timeLeft = 0
	s.resolve("", TimedOut)
	return nil
}

func (s *Session) resolve(choice string, o Outcome) {
	s.choice = choice
	s.outcome = o
	if o == Correct {
		pts := s.variant.Points(s.lives, s.streak)
		s.score += pts
		s.sessionScore += pts
		if s.variant.TracksStreak {
			s.streak++
		}
	} else {
		s.lives = max(0, s.lives-1)
		if s.variant.TracksStreak {
			s.streak = 0
		}
	}
	s.phase = PhaseResult
}

func (s *Session) advance() []Cmd {
	s.current = s.queue[0]
	s.queue = s.queue[1:]
	s.seq++
	s.outcome = Unanswered
	s.choice = ""
	s.phase = PhasePlaying

	var cmds []Cmd
	if s.variant.TimeLimit > 0 {
		s.timeLeft = s.variant.TimeLimit
		cmds = append(cmds, s.tick())
	}
	return append(cmds, s.refill()...)
}

// refill requests a batch when the phase and queue depth call for one and no
// fetch is outstanding.
func (s *Session) refill() []Cmd {
	if s.fetching {
		return nil
	}
	switch s.phase {
	case PhaseLoading:
	case PhasePlaying:
		if !s.variant.NeedsRefill(len(s.queue)) {
			return nil
		}
	default:
		return nil
	}
	s.fetching = true
	run, n, src := s.run, s.variant.BatchSize, s.source
	return []Cmd{func(ctx context.Context) Msg {
		items, err := src.Scenarios(ctx, n)
		return batchMsg{run: run, items: items, err: err}
	}}
}

func (s *Session) tick() Cmd {
	run, seq, after := s.run, s.seq, s.after
	return func(ctx context.Context) Msg {
		select {
		case <-after(TickInterval):
			return tickMsg{run: run, seq: seq}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Session) end(gameOver bool) []Cmd {
	s.summary = &Summary{
		GameOver:     gameOver,
		SessionScore: s.sessionScore,
		Coins:        s.variant.Coins(s.sessionScore),
	}
	cmd := s.report()

	s.phase = PhaseMenu
	s.run++
	s.queue = nil
	s.current = nil
	s.outcome = Unanswered
	s.choice = ""
	if cmd == nil {
		return nil
	}
	return []Cmd{cmd}
}

func (s *Session) report() Cmd {
	if s.reported {
		return nil
	}
	s.reported = true
	if s.player == nil || s.reporter == nil || s.sessionScore <= 0 {
		return nil
	}
	s.reporting++
	reporter := s.reporter
	coins := s.variant.Coins(s.sessionScore)
	entry := Entry{
		GameID:    s.variant.ID,
		Score:     s.sessionScore,
		UserID:    s.player.UserID,
		UserName:  s.player.Name,
		AvatarURL: s.player.AvatarURL,
		BorderID:  s.player.BorderID,
	}
	return func(ctx context.Context) Msg {
		var errs []error
		if coins > 0 {
			errs = append(errs, reporter.AwardCoins(ctx, entry.UserID, coins))
		}
		errs = append(errs, reporter.SubmitScore(ctx, entry))
		return ReportedMsg{Coins: coins, Err: errors.Join(errs...)}
	}
}

func (s *Session) Variant() Variant { return s.variant }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int { return s.score }
func (s *Session) SessionScore() int { return s.sessionScore }
func (s *Session) Lives() int { return s.lives }
func (s *Session) Streak() int { return s.streak }
func (s *Session) TimeLeft() time.Duration { return s.timeLeft }
func (s *Session) Queued() int { return len(s.queue) }
func (s *Session) Fetching() bool { return s.fetching }

// Reporting is true while a results report has not come back through Update.
func (s *Session) Reporting() bool { return s.reporting > 0 }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Choice() string { return s.choice }
func (s *Session) LastError() error { return s.lastErr }
func (s *Session) GameOver() bool { return s.phase == PhaseResult && s.lives == 0 }

// Summary returns the result of the last ended run.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// Current returns the scenario on screen during playing and result.
func (s *Session) Current() (Scenario, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}
