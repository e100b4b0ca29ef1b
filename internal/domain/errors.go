package domain

import "errors"

var (
	// ErrGameNotFound is returned when a game session has not been initialized.
	ErrGameNotFound = errors.New("game session not found")
	// ErrNoCategoriesSelected is the setup validation error for an empty category pick.
	ErrNoCategoriesSelected = errors.New("no categories selected")
	// ErrNotConfigured is returned when start is requested before configure.
	ErrNotConfigured = errors.New("session not configured")
	// ErrSessionStarted is returned when setup intents arrive after the game began.
	ErrSessionStarted = errors.New("session already started")
	// ErrCatalogEmpty indicates the question catalog could not be loaded or has no content.
	ErrCatalogEmpty = errors.New("question catalog is empty")
)
