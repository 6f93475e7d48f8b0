package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"msg": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Profile:
		o.printProfile(v)
	case []Profile:
		for _, p := range v {
			o.printProfile(p)
		}
	case Game:
		o.printGame(v)
	case GameList:
		for _, g := range v.Games {
			o.printGameLine(g)
		}
	case Registration:
		o.printRegistration(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s <%s>\n", u.Name, u.Email)
	fmt.Printf("  ID:    %s\n", u.ID)
	fmt.Printf("  Admin: %t\n", u.Admin)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Println("Token saved.")
}

func (o *Output) printProfile(p Profile) {
	name := p.Name
	if name == "" {
		name = p.UserID
	}
	fmt.Printf("%s: team %s, position %s\n", name, p.DefaultTeam, p.Position)
}

func (o *Output) printGame(g Game) {
	o.printGameLine(g)
	fmt.Printf("  Available (%d):\n", len(g.PlayersAvailable))
	for _, p := range g.PlayersAvailable {
		fmt.Printf("    %s (%s)\n", p.Name, p.Position)
	}
	fmt.Printf("  Unavailable (%d):\n", len(g.PlayersUnavailable))
	for _, p := range g.PlayersUnavailable {
		fmt.Printf("    %s (%s)\n", p.Name, p.Position)
	}
	fmt.Printf("  Final team (%d):\n", len(g.FinalTeam))
	for _, p := range g.FinalTeam {
		fmt.Printf("    %s (%s)\n", p.Name, p.Position)
	}
}

func (o *Output) printGameLine(g Game) {
	state := "open"
	if g.GameClosed {
		state = "closed"
	}
	fmt.Printf("%s  %s  [%s]  %s\n", g.ID, g.GameDate.Format(time.DateOnly), state, g.GameName)
}

func (o *Output) printRegistration(r Registration) {
	fmt.Printf("%s registered in %s for %s\n", r.Player.Name, r.List, r.GameName)
}

// Response types mirrored from the API

// User response type
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// AuthResult combines user and token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Profile response type
type Profile struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DefaultTeam string `json:"defaultTeam"`
	Position    string `json:"position"`
}

// PlayerSnapshot response type
type PlayerSnapshot struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	DefaultTeam string `json:"defaultTeam"`
	Available   bool   `json:"available"`
}

// Game response type
type Game struct {
	ID                 string           `json:"id"`
	GameDate           time.Time        `json:"gameDate"`
	GameName           string           `json:"gameName"`
	PlayersAvailable   []PlayerSnapshot `json:"playersAvailable"`
	PlayersUnavailable []PlayerSnapshot `json:"playersUnavailable"`
	FinalTeam          []PlayerSnapshot `json:"finalTeam"`
	GameClosed         bool             `json:"gameClosed"`
}

// GameList response type
type GameList struct {
	Games []Game `json:"games"`
}

// Registration response type
type Registration struct {
	GameID   string         `json:"gameId"`
	Player   PlayerSnapshot `json:"player"`
	List     string         `json:"list"`
	GameName string         `json:"gameName"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
