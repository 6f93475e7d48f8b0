package factory

import (
	"time"

	"github.com/oldthorntonians/matchday/internal/dependencies/mocks"
	"github.com/oldthorntonians/matchday/internal/services/auth"
	"github.com/oldthorntonians/matchday/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp(authCfg auth.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	if authCfg.Secret == "" {
		authCfg.Secret = "test-secret"
	}

	app := newWithDependencies(store, mockClock, mockRandom, authCfg)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
