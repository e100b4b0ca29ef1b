package app

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"jeoparty-service/internal/config"
	"jeoparty-service/internal/domain"
)

// Session is the single-writer game state machine. All transitions run under
// one mutex, so no transition can observe another mid-way. The countdown is
// the only autonomous driver: it is scheduled via time.AfterFunc and guarded
// by an epoch counter that every transition bumps, which invalidates any
// in-flight timer callback.
type Session struct {
	id       string
	rules    config.Rules
	now      func() time.Time
	rnd      *rand.Rand
	schedule func(d time.Duration, fn func())

	mu    sync.Mutex
	epoch int

	phase domain.Phase

	// setup inputs
	playerCount int
	names       []string
	categoryIDs []string

	// board, fixed once the game starts
	categories   []domain.Category
	dailyDoubles map[string]bool
	mandatories  map[string]bool
	answered     map[string]bool

	players   []domain.Player
	activeIdx int

	q *openQuestion

	subscribers map[chan domain.Update]struct{}
}

// openQuestion is the active-question sub-state, present only while a board
// cell is open.
type openQuestion struct {
	question       domain.Question
	categoryTitle  string
	dailyDouble    bool
	mandatory      bool
	effectiveValue int
	answeringIdx   int
	attempted      map[int]bool
	attemptedOrder []int
	eliminated     map[string]bool
	eliminatedList []string
	status         domain.QuestionStatus
	revealed       bool
	inSplash       bool
	timeLeft       int
	breakdown      *domain.ScoreBreakdown
}

// NewSession builds a session with real-time countdown scheduling.
func NewSession(id string, rules config.Rules) *Session {
	s := newSession(id, rules, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
	s.schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	return s
}

// NewManualSession builds a session without real-time scheduling; the
// countdown and splash expiry are driven explicitly via Tick and EndSplash.
// Sampling is deterministic for a given seed.
func NewManualSession(id string, rules config.Rules, seed int64) *Session {
	return newSession(id, rules, time.Now, rand.New(rand.NewSource(seed)))
}

func newSession(id string, rules config.Rules, now func() time.Time, rnd *rand.Rand) *Session {
	return &Session{
		id:          id,
		rules:       rules,
		now:         now,
		rnd:         rnd,
		phase:       domain.PhaseSetup,
		playerCount: rules.DefaultPlayers,
		subscribers: make(map[chan domain.Update]struct{}),
	}
}

// Configure records the setup inputs. Player count is clamped into the
// allowed range; an empty category selection is refused without mutating
// anything.
func (s *Session) Configure(playerCount int, names []string, categoryIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseSetup {
		return domain.ErrSessionStarted
	}
	if len(categoryIDs) == 0 {
		return domain.ErrNoCategoriesSelected
	}
	if playerCount < s.rules.MinPlayers {
		playerCount = s.rules.MinPlayers
	}
	if playerCount > s.rules.MaxPlayers {
		playerCount = s.rules.MaxPlayers
	}
	s.playerCount = playerCount
	s.names = append([]string(nil), names...)
	s.categoryIDs = append([]string(nil), categoryIDs...)
	s.broadcastLocked()
	return nil
}

// Start builds the board from the resolved categories and begins play.
// For each category one question per point tier is sampled, then one sampled
// id becomes the daily double and, when at least two questions remain, one of
// the remaining ids becomes the mandatory question.
func (s *Session) Start(categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseSetup {
		return domain.ErrSessionStarted
	}
	if len(s.categoryIDs) == 0 {
		return domain.ErrNotConfigured
	}

	board := make([]domain.Category, 0, len(categories))
	dailyDoubles := make(map[string]bool)
	mandatories := make(map[string]bool)

	for _, cat := range categories {
		sampled := s.sampleTiers(cat)
		if len(sampled) == 0 {
			continue
		}
		board = append(board, domain.Category{ID: cat.ID, Title: cat.Title, Questions: sampled})

		ids := make([]string, len(sampled))
		for i, q := range sampled {
			ids[i] = q.ID
		}
		ddIdx := s.rnd.Intn(len(ids))
		dailyDoubles[ids[ddIdx]] = true

		remaining := make([]string, 0, len(ids)-1)
		for i, id := range ids {
			if i != ddIdx {
				remaining = append(remaining, id)
			}
		}
		if len(remaining) > 0 {
			mandatories[remaining[s.rnd.Intn(len(remaining))]] = true
		}
	}
	if len(board) == 0 {
		return domain.ErrCatalogEmpty
	}

	players := make([]domain.Player, 0, s.playerCount)
	for i := 0; i < s.playerCount; i++ {
		name := ""
		if i < len(s.names) {
			name = strings.TrimSpace(s.names[i])
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players = append(players, domain.Player{ID: i + 1, Name: name})
	}

	s.categories = board
	s.dailyDoubles = dailyDoubles
	s.mandatories = mandatories
	s.answered = make(map[string]bool)
	s.players = players
	s.activeIdx = 0
	s.phase = domain.PhasePlaying
	s.broadcastLocked()
	s.armLocked()
	return nil
}

// sampleTiers picks one question per point tier, uniformly among candidates.
// Tiers with no candidates are omitted, so a category may carry fewer than
// five questions.
func (s *Session) sampleTiers(cat domain.Category) []domain.Question {
	tiers := []int{100, 200, 300, 400, 500}
	sampled := make([]domain.Question, 0, len(tiers))
	for _, tier := range tiers {
		var candidates []domain.Question
		for _, q := range cat.Questions {
			if q.Value == tier {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		pick := candidates[s.rnd.Intn(len(candidates))]
		pick.CategoryID = cat.ID
		sampled = append(sampled, pick)
	}
	return sampled
}

// SelectCell opens a board cell. Already-answered cells, unknown ids, and
// selections while another question is open are silently ignored.
func (s *Session) SelectCell(questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhasePlaying || s.q != nil {
		return
	}
	if s.answered[questionID] {
		return
	}
	question, categoryTitle, ok := s.findQuestionLocked(questionID)
	if !ok {
		return
	}

	isDD := s.dailyDoubles[questionID]
	isMandatory := s.mandatories[questionID]
	effective := question.Value
	if isDD {
		effective *= 2
	}

	s.q = &openQuestion{
		question:       question,
		categoryTitle:  categoryTitle,
		dailyDouble:    isDD,
		mandatory:      isMandatory,
		effectiveValue: effective,
		answeringIdx:   s.activeIdx,
		attempted:      make(map[int]bool),
		eliminated:     make(map[string]bool),
		status:         domain.StatusUnanswered,
		timeLeft:       s.rules.CountdownTicks,
	}

	var events []domain.Event
	if isDD {
		s.q.inSplash = true
		events = append(events, domain.Event{Kind: domain.EventDailyDouble})
	} else if isMandatory {
		s.q.inSplash = true
		events = append(events, domain.Event{Kind: domain.EventMandatory})
	}
	s.broadcastLocked(events...)
	s.armLocked()
}

// ChooseOption evaluates an answer for the current answerer. Intents during a
// splash, after reveal, for eliminated options, or for text that is not one of
// the question's options are ignored.
func (s *Session) ChooseOption(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.q
	if s.phase != domain.PhasePlaying || q == nil || q.revealed || q.inSplash {
		return
	}
	if q.eliminated[option] {
		return
	}
	known := false
	for _, opt := range q.question.Options {
		if opt == option {
			known = true
			break
		}
	}
	if !known {
		return
	}

	if option != q.question.Answer {
		s.applyPenaltyLocked(false)
		q.eliminated[option] = true
		q.eliminatedList = append(q.eliminatedList, option)
		s.advanceAnswererLocked(domain.Event{Kind: domain.EventWrong})
		return
	}

	p := &s.players[q.answeringIdx]
	p.Streak++
	streakActive := p.Streak >= s.rules.StreakThreshold

	speedBonus := 0
	if q.timeLeft >= s.rules.SpeedBonusCutoff {
		speedBonus = int(math.Floor(float64(q.effectiveValue) * s.rules.SpeedBonusRate))
	}
	baseEarned := q.effectiveValue + speedBonus
	totalEarned := baseEarned
	if streakActive {
		totalEarned = int(math.Floor(float64(baseEarned) * s.rules.StreakMultiplier))
	}
	p.Score += totalEarned

	q.status = domain.StatusCorrect
	q.revealed = true
	q.breakdown = &domain.ScoreBreakdown{
		Base:         q.effectiveValue,
		SpeedBonus:   speedBonus,
		StreakActive: streakActive,
		TotalEarned:  totalEarned,
	}
	s.broadcastLocked(domain.Event{Kind: domain.EventCorrect})
	s.armLocked()
}

// PassOrTimeout resolves the current answerer's turn as a pass. It is also
// what the countdown fires when the window runs out.
func (s *Session) PassOrTimeout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passOrTimeoutLocked()
}

func (s *Session) passOrTimeoutLocked() {
	q := s.q
	if s.phase != domain.PhasePlaying || q == nil || q.revealed || q.inSplash {
		return
	}
	s.applyPenaltyLocked(true)
	s.advanceAnswererLocked(domain.Event{Kind: domain.EventWrong})
}

// applyPenaltyLocked implements the penalty rules. A mandatory question
// punishes the turn-holding player with double the effective value whether
// they guessed wrong or passed; everyone else pays the effective value for a
// wrong guess and nothing for a pass. Any penalty event breaks the streak,
// even a zero-penalty pass.
func (s *Session) applyPenaltyLocked(isPass bool) {
	q := s.q
	isMainPlayer := q.answeringIdx == s.activeIdx

	penalty := 0
	if q.mandatory && isMainPlayer {
		penalty = q.effectiveValue * 2
	} else if !isPass {
		penalty = q.effectiveValue
	}

	p := &s.players[q.answeringIdx]
	p.Streak = 0
	if penalty > 0 {
		p.Score -= penalty
	}
}

// advanceAnswererLocked records the attempt and hands the question to the
// next player, or reveals it as failed once everyone has tried. Eliminated
// options stay eliminated across answerers.
func (s *Session) advanceAnswererLocked(events ...domain.Event) {
	q := s.q
	if !q.attempted[q.answeringIdx] {
		q.attempted[q.answeringIdx] = true
		q.attemptedOrder = append(q.attemptedOrder, q.answeringIdx)
	}

	if len(q.attemptedOrder) >= len(s.players) {
		q.status = domain.StatusFailed
		q.revealed = true
		s.broadcastLocked(events...)
		s.armLocked()
		return
	}

	q.answeringIdx = (q.answeringIdx + 1) % len(s.players)
	q.timeLeft = s.rules.CountdownTicks
	s.broadcastLocked(events...)
	s.armLocked()
}

// FinishQuestion dismisses a revealed question: its id is permanently locked,
// board selection rotates to the next player, and the session ends once every
// cell has been answered.
func (s *Session) FinishQuestion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.q
	if s.phase != domain.PhasePlaying || q == nil || !q.revealed {
		return
	}
	s.answered[q.question.ID] = true
	s.q = nil
	s.activeIdx = (s.activeIdx + 1) % len(s.players)

	var events []domain.Event
	if len(s.answered) == s.totalQuestionsLocked() {
		s.phase = domain.PhaseOver
		events = append(events, domain.Event{Kind: domain.EventSessionOver})
	}
	s.broadcastLocked(events...)
	s.armLocked()
}

// Reset discards all session state and returns to setup defaults.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = domain.PhaseSetup
	s.playerCount = s.rules.DefaultPlayers
	s.names = nil
	s.categoryIDs = nil
	s.categories = nil
	s.dailyDoubles = nil
	s.mandatories = nil
	s.answered = nil
	s.players = nil
	s.activeIdx = 0
	s.q = nil
	s.epoch++ // invalidate any pending timer
	s.broadcastLocked()
}

// Tick advances the countdown by one tick. Production sessions call this from
// the scheduled timer; manual sessions call it directly. Reaching zero fires
// the pass-or-timeout transition exactly once, since the transition itself
// re-arms (and thereby invalidates) the timer.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

func (s *Session) tickLocked() {
	q := s.q
	if s.phase != domain.PhasePlaying || q == nil || q.revealed || q.inSplash || q.timeLeft <= 0 {
		return
	}
	q.timeLeft--
	if q.timeLeft <= 0 {
		s.passOrTimeoutLocked()
		return
	}
	s.broadcastLocked(domain.Event{Kind: domain.EventTick, TimeLeft: q.timeLeft})
	s.armLocked()
}

// EndSplash closes the daily-double/mandatory splash and lets the countdown
// run. Production sessions schedule this; manual sessions call it directly.
func (s *Session) EndSplash() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endSplashLocked()
}

func (s *Session) endSplashLocked() {
	q := s.q
	if q == nil || !q.inSplash {
		return
	}
	q.inSplash = false
	s.broadcastLocked()
	s.armLocked()
}

// armLocked bumps the timer epoch and, when real-time scheduling is enabled,
// schedules the next autonomous transition for the current gating predicate:
// question open, not revealed, not in a splash.
func (s *Session) armLocked() {
	s.epoch++
	if s.schedule == nil {
		return
	}
	q := s.q
	if s.phase != domain.PhasePlaying || q == nil || q.revealed {
		return
	}
	epoch := s.epoch
	if q.inSplash {
		d := s.rules.DailyDoubleSplash
		if q.mandatory {
			d = s.rules.MandatorySplash
		}
		s.schedule(d, func() { s.expireSplash(epoch) })
		return
	}
	s.schedule(s.rules.TickInterval, func() { s.expireTick(epoch) })
}

func (s *Session) expireTick(epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	s.tickLocked()
}

func (s *Session) expireSplash(epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	s.endSplashLocked()
}

func (s *Session) findQuestionLocked(questionID string) (domain.Question, string, bool) {
	for _, cat := range s.categories {
		for _, q := range cat.Questions {
			if q.ID == questionID {
				return q, cat.Title, true
			}
		}
	}
	return domain.Question{}, "", false
}

func (s *Session) totalQuestionsLocked() int {
	total := 0
	for _, cat := range s.categories {
		total += len(cat.Questions)
	}
	return total
}

// Snapshot returns the current read-only projection.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel receiving an update after every transition.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Update, func()) {
	ch := make(chan domain.Update, 16)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := domain.Update{Session: s.snapshotLocked()}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// IsIdle reports whether no subscriber is attached to the session.
func (s *Session) IsIdle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers) == 0
}

func (s *Session) broadcastLocked(events ...domain.Event) {
	update := domain.Update{Events: events, Session: s.snapshotLocked()}
	for ch := range s.subscribers {
		select {
		case ch <- update:
		default:
			// Drop the oldest pending update so slow clients never block a transition.
			select {
			case <-ch:
			default:
			}
			ch <- update
		}
	}
}

func (s *Session) snapshotLocked() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		GameID: s.id,
		Phase:  s.phase,
		Setup: domain.SetupView{
			PlayerCount: s.playerCount,
			Names:       append([]string(nil), s.names...),
			CategoryIDs: append([]string(nil), s.categoryIDs...),
		},
		Players:           append([]domain.Player(nil), s.players...),
		ActivePlayerIndex: s.activeIdx,
		UpdatedAt:         s.now(),
	}

	for _, cat := range s.categories {
		col := domain.BoardColumn{CategoryID: cat.ID, Title: cat.Title}
		for _, q := range cat.Questions {
			col.Cells = append(col.Cells, domain.BoardCell{
				QuestionID: q.ID,
				Value:      q.Value,
				Answered:   s.answered[q.ID],
			})
		}
		snap.Board = append(snap.Board, col)
	}

	if q := s.q; q != nil {
		view := &domain.QuestionView{
			QuestionID:        q.question.ID,
			CategoryTitle:     q.categoryTitle,
			Prompt:            q.question.Prompt,
			Options:           append([]string(nil), q.question.Options...),
			DailyDouble:       q.dailyDouble,
			Mandatory:         q.mandatory,
			EffectiveValue:    q.effectiveValue,
			AnsweringIndex:    q.answeringIdx,
			AttemptedIndices:  append([]int(nil), q.attemptedOrder...),
			EliminatedOptions: append([]string(nil), q.eliminatedList...),
			Status:            q.status,
			TimeLeft:          q.timeLeft,
			InSplash:          q.inSplash,
			Revealed:          q.revealed,
			Breakdown:         q.breakdown,
		}
		if q.revealed {
			view.Answer = q.question.Answer
		}
		snap.Question = view
	}

	if s.phase == domain.PhaseOver {
		snap.Standings = s.standingsLocked()
	}
	return snap
}

// standingsLocked ranks players by score descending; ties keep the original
// join order (stable sort), which is the documented tie-break.
func (s *Session) standingsLocked() []domain.Standing {
	ranked := append([]domain.Player(nil), s.players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	standings := make([]domain.Standing, len(ranked))
	for i, p := range ranked {
		standings[i] = domain.Standing{Rank: i + 1, PlayerID: p.ID, Name: p.Name, Score: p.Score}
	}
	return standings
}
