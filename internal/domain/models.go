package domain

import "time"

// Phase is the lifecycle stage of a game session.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhaseOver    Phase = "over"
)

// QuestionStatus tracks how the open question resolved.
type QuestionStatus string

const (
	StatusUnanswered QuestionStatus = "unanswered"
	StatusCorrect    QuestionStatus = "correct"
	StatusFailed     QuestionStatus = "failed"
)

// Question is an immutable board question with four options.
type Question struct {
	ID         string   `json:"id"`
	Value      int      `json:"value"`
	Prompt     string   `json:"prompt"`
	Answer     string   `json:"answer"`
	Options    []string `json:"options"`
	CategoryID string   `json:"categoryId,omitempty"`
}

// Category groups questions under a board column, one per point tier.
type Category struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Catalog is the full static question bank players pick categories from.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// CategorySummary is the setup-screen view of a catalog category.
type CategorySummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
}

// Player holds mutable per-session player state. Score may go negative.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Streak int    `json:"streak"`
}

// ScoreBreakdown explains the points awarded for a correct answer.
type ScoreBreakdown struct {
	Base         int  `json:"base"`
	SpeedBonus   int  `json:"speedBonus"`
	StreakActive bool `json:"streakActive"`
	TotalEarned  int  `json:"totalEarned"`
}

// BoardCell is one selectable value tile on the board.
type BoardCell struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
	Answered   bool   `json:"answered"`
}

// BoardColumn is one category column of the board.
type BoardColumn struct {
	CategoryID string      `json:"categoryId"`
	Title      string      `json:"title"`
	Cells      []BoardCell `json:"cells"`
}

// QuestionView is the client-facing projection of the open question.
// The correct answer is withheld until the question is revealed.
type QuestionView struct {
	QuestionID        string          `json:"questionId"`
	CategoryTitle     string          `json:"categoryTitle"`
	Prompt            string          `json:"prompt"`
	Options           []string        `json:"options"`
	DailyDouble       bool            `json:"dailyDouble"`
	Mandatory         bool            `json:"mandatory"`
	EffectiveValue    int             `json:"effectiveValue"`
	AnsweringIndex    int             `json:"answeringIndex"`
	AttemptedIndices  []int           `json:"attemptedIndices"`
	EliminatedOptions []string        `json:"eliminatedOptions"`
	Status            QuestionStatus  `json:"status"`
	TimeLeft          int             `json:"timeLeft"`
	InSplash          bool            `json:"inSplash"`
	Revealed          bool            `json:"revealed"`
	Answer            string          `json:"answer,omitempty"`
	Breakdown         *ScoreBreakdown `json:"breakdown,omitempty"`
}

// SetupView echoes the pending setup inputs back to clients.
type SetupView struct {
	PlayerCount int      `json:"playerCount"`
	Names       []string `json:"names"`
	CategoryIDs []string `json:"categoryIds"`
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank     int    `json:"rank"`
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// SessionSnapshot is the read-only projection of a game session after a
// transition. Rendering layers consume snapshots; they never mutate state.
type SessionSnapshot struct {
	GameID            string        `json:"gameId"`
	Phase             Phase         `json:"phase"`
	Setup             SetupView     `json:"setup"`
	Players           []Player      `json:"players,omitempty"`
	ActivePlayerIndex int           `json:"activePlayerIndex"`
	Board             []BoardColumn `json:"board,omitempty"`
	Question          *QuestionView `json:"question,omitempty"`
	Standings         []Standing    `json:"standings,omitempty"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
