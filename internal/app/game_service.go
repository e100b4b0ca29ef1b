package app

import (
	"context"

	"jeoparty-service/internal/domain"
)

// SessionRepository abstracts how game sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	GetOrCreate(gameID string) *Session
	Get(gameID string) (*Session, bool)
	DeleteIfIdle(gameID string)
}

// CatalogRepository loads the question catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// GameService contains the game session use cases.
type GameService struct {
	sessions SessionRepository
	catalog  CatalogRepository
}

func NewGameService(sessions SessionRepository, catalog CatalogRepository) *GameService {
	return &GameService{sessions: sessions, catalog: catalog}
}

// Categories lists the catalog for the setup screen.
func (s *GameService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.CategorySummary, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		summaries = append(summaries, domain.CategorySummary{
			ID:            cat.ID,
			Title:         cat.Title,
			QuestionCount: len(cat.Questions),
		})
	}
	return summaries, nil
}

// Configure records setup inputs for a game, creating the session on first use.
func (s *GameService) Configure(_ context.Context, gameID string, playerCount int, names, categoryIDs []string) error {
	session := s.sessions.GetOrCreate(gameID)
	return session.Configure(playerCount, names, categoryIDs)
}

// Start resolves the configured category ids against the catalog and begins
// play. Unknown ids are skipped; selection order is preserved.
func (s *GameService) Start(ctx context.Context, gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}

	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]domain.Category, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		byID[cat.ID] = cat
	}

	var selected []domain.Category
	for _, id := range session.Snapshot().Setup.CategoryIDs {
		if cat, ok := byID[id]; ok {
			selected = append(selected, cat)
		}
	}
	if len(selected) == 0 {
		return domain.ErrCatalogEmpty
	}
	return session.Start(selected)
}

// SelectCell opens a board cell for the active player.
func (s *GameService) SelectCell(_ context.Context, gameID, questionID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.SelectCell(questionID)
	return nil
}

// ChooseOption submits an answer for the current answerer.
func (s *GameService) ChooseOption(_ context.Context, gameID, option string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.ChooseOption(option)
	return nil
}

// PassOrTimeout passes the current answerer's turn.
func (s *GameService) PassOrTimeout(_ context.Context, gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.PassOrTimeout()
	return nil
}

// FinishQuestion dismisses a revealed question and advances the game.
func (s *GameService) FinishQuestion(_ context.Context, gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.FinishQuestion()
	return nil
}

// Reset returns a session to the setup screen with inputs cleared.
func (s *GameService) Reset(_ context.Context, gameID string) error {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	session.Reset()
	return nil
}

// Snapshot returns the current projection of a game.
func (s *GameService) Snapshot(_ context.Context, gameID string) (domain.SessionSnapshot, error) {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrGameNotFound
	}
	return session.Snapshot(), nil
}

// Subscribe returns a channel that receives an update after every transition.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, gameID string) (<-chan domain.Update, func(), error) {
	session := s.sessions.GetOrCreate(gameID)
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Leave drops the session once its last subscriber is gone.
func (s *GameService) Leave(_ context.Context, gameID string) {
	session, ok := s.sessions.Get(gameID)
	if !ok {
		return
	}
	if session.IsIdle() {
		s.sessions.DeleteIfIdle(gameID)
	}
}
