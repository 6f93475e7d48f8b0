package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldthorntonians/matchday/internal/api"
	"github.com/oldthorntonians/matchday/internal/factory"
	"github.com/oldthorntonians/matchday/internal/services/auth"
)

const adminEmail = "admin@example.com"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "matchday-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/matchday")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{
		AuthConfig: auth.Config{
			Secret:      "e2e-test-secret",
			AdminEmails: []string{adminEmail},
		},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		ProfileService: app.ProfileService,
		RosterService:  app.RosterService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type profileResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	DefaultTeam string `json:"defaultTeam"`
	Position    string `json:"position"`
}

type playerSnapshotResponse struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Available bool   `json:"available"`
}

type gameResponse struct {
	ID                 string                   `json:"id"`
	GameName           string                   `json:"gameName"`
	GameClosed         bool                     `json:"gameClosed"`
	PlayersAvailable   []playerSnapshotResponse `json:"playersAvailable"`
	PlayersUnavailable []playerSnapshotResponse `json:"playersUnavailable"`
	FinalTeam          []playerSnapshotResponse `json:"finalTeam"`
}

type gameListResponse struct {
	Games []gameResponse `json:"games"`
}

type registrationResponse struct {
	GameID   string                 `json:"gameId"`
	Player   playerSnapshotResponse `json:"player"`
	List     string                 `json:"list"`
	GameName string                 `json:"gameName"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_UserCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register a new user
	output, err := cli.run("user", "register",
		"--name", "Alice Smith",
		"--email", "alice@example.com",
		"--password", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "Alice Smith", authResp.User.Name)
	assert.Equal(t, "alice@example.com", authResp.User.Email)
	assert.False(t, authResp.User.Admin)
	assert.NotEmpty(t, authResp.Token)

	// Get me (token should be saved in token file)
	output, err = cli.run("user", "me")
	require.NoError(t, err, "output: %s", output)

	var me userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, authResp.User.ID, me.ID)
	assert.Equal(t, "Alice Smith", me.Name)

	// Log in again with the same credentials
	output, err = cli.run("user", "login",
		"--email", "alice@example.com",
		"--password", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var loginResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loginResp))
	assert.Equal(t, authResp.User.ID, loginResp.User.ID)
	assert.NotEmpty(t, loginResp.Token)
}

func TestCLI_ProfileCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("user", "register",
		"--name", "Bob Jones",
		"--email", "bob@example.com",
		"--password", "hunter22")
	require.NoError(t, err, "output: %s", output)

	// Create profile; position defaults when omitted
	output, err = cli.run("profile", "create", "--team", "2nd XI")
	require.NoError(t, err, "output: %s", output)

	var prof profileResponse
	require.NoError(t, json.Unmarshal([]byte(output), &prof))
	assert.Equal(t, "2nd XI", prof.DefaultTeam)
	assert.Equal(t, "NK", prof.Position)

	// Update position
	output, err = cli.run("profile", "update", "--position", "GK")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &prof))
	assert.Equal(t, "2nd XI", prof.DefaultTeam)
	assert.Equal(t, "GK", prof.Position)

	// Fetch own profile
	output, err = cli.run("profile", "me")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &prof))
	assert.Equal(t, "Bob Jones", prof.Name)
	assert.Equal(t, "GK", prof.Position)
}

func TestCLI_GameFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register the admin
	output, err := cli.run("user", "register",
		"--name", "Club Admin",
		"--email", adminEmail,
		"--password", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var adminAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &adminAuth))
	require.True(t, adminAuth.User.Admin)
	adminToken := adminAuth.Token

	// Register a regular player with a profile; this leaves the player's
	// token in the token file for subsequent commands
	output, err = cli.run("user", "register",
		"--name", "Carol Player",
		"--email", "carol@example.com",
		"--password", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var playerAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &playerAuth))

	output, err = cli.run("profile", "create", "--team", "1st XI", "--position", "CF")
	require.NoError(t, err, "output: %s", output)

	// Admin creates a game
	gameDate := time.Now().AddDate(0, 0, 7).Format(time.DateOnly)
	output, err = cli.runWithToken(adminToken, "game", "create",
		"--date", gameDate,
		"--name", "Saturday League")
	require.NoError(t, err, "output: %s", output)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "Saturday League", game.GameName)
	assert.False(t, game.GameClosed)
	require.NotEmpty(t, game.ID)

	// Regular user cannot create games
	_, err = cli.run("game", "create", "--date", gameDate, "--name", "Rogue Game")
	require.Error(t, err)

	// Player registers as available
	output, err = cli.run("game", "availability", game.ID)
	require.NoError(t, err, "output: %s", output)

	var reg registrationResponse
	require.NoError(t, json.Unmarshal([]byte(output), &reg))
	assert.Equal(t, game.ID, reg.GameID)
	assert.Equal(t, "playersAvailable", reg.List)
	assert.Equal(t, "Carol Player", reg.Player.Name)
	assert.True(t, reg.Player.Available)

	// Game shows up in the recent list with the registration applied
	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)

	var list gameListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Games, 1)
	assert.Len(t, list.Games[0].PlayersAvailable, 1)
	assert.Empty(t, list.Games[0].PlayersUnavailable)

	// Player flips to unavailable
	output, err = cli.run("game", "availability", game.ID, "--available=false")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &reg))
	assert.Equal(t, "playersUnavailable", reg.List)

	// And back to available before the close
	output, err = cli.run("game", "availability", game.ID)
	require.NoError(t, err, "output: %s", output)

	// Admin closes registration, locking in the final team
	output, err = cli.runWithToken(adminToken, "game", "close", game.ID)
	require.NoError(t, err, "output: %s", output)

	var closed gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &closed))
	assert.True(t, closed.GameClosed)
	require.Len(t, closed.FinalTeam, 1)
	assert.Equal(t, "Carol Player", closed.FinalTeam[0].Name)

	// Late registrations are rejected
	_, err = cli.run("game", "availability", game.ID, "--available=false")
	require.Error(t, err)

	// Admin planning view still shows both lists
	output, err = cli.runWithToken(adminToken, "game", "plan", game.ID)
	require.NoError(t, err, "output: %s", output)

	var plan gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &plan))
	assert.Len(t, plan.PlayersAvailable, 1)

	// Reopening keeps the locked-in team
	output, err = cli.runWithToken(adminToken, "game", "open", game.ID)
	require.NoError(t, err, "output: %s", output)

	var reopened gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &reopened))
	assert.False(t, reopened.GameClosed)
	assert.Len(t, reopened.FinalTeam, 1)

	// Admin deletes the game
	_, err = cli.runWithToken(adminToken, "game", "delete", game.ID)
	require.NoError(t, err)

	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Empty(t, list.Games)
}
