package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	uuid "github.com/satori/go.uuid"
)

// Game phases.
const (
	PhasePlaying = "playing"
	PhaseEnded   = "ended"
)

// SystemId tags event-log entries not attributable to a player.
const SystemId = "system"

var playerColors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

// Rules holds the policy flags and tunables. Flags exist where the official
// rule is ambiguous or deliberately house-ruled.
type Rules struct {
	FreeParkingPayout bool          // pot pays out to whoever lands on Free Parking
	ReshuffleOnWrap   bool          // reshuffle decks on exhaustion instead of wrapping
	JailFine          int           // fee to leave jail
	GoSalary          int           // credit for passing Go
	AuctionRoundCap   int           // full bidding rounds before the auction force-ends
	DecisionTimeout   time.Duration // per-decision deadline at every suspension point
}

func DefaultRules() Rules {
	return Rules{
		FreeParkingPayout: true,
		ReshuffleOnWrap:   false,
		JailFine:          50,
		GoSalary:          200,
		AuctionRoundCap:   20,
		DecisionTimeout:   30 * time.Second,
	}
}

// PlayerConfig configures one seat at game creation.
type PlayerConfig struct {
	Name     string
	Model    string // remote model id, informational
	Provider DecisionProvider
}

// Game is the aggregate session state. It is owned by a single control flow:
// Run/PlayTurn is the only writer, so the core needs no locking. The event
// log is the only member read concurrently by the server layer.
type Game struct {
	Id     string
	Rules  Rules
	Spaces []*models.Property

	Players     []*models.Player
	Current     int
	Doubles     int
	LastRoll    models.DiceRoll
	FreeParking int
	Turn        int
	Phase       string
	Winner      string
	Auction     *models.AuctionState

	Chance *CardDeck
	Chest  *CardDeck
	Dice   Roller
	Log    *EventLog

	// OnTurn, when set, is called after every seat change with the new
	// current player's id. Used by the server layer to mirror the turn
	// pointer; must not mutate game state.
	OnTurn func(turn int, playerId string)

	providers map[string]DecisionProvider

	// lastSnap is the published turn-boundary snapshot. The engine writes
	// it, the server layer reads it; the mutex is the only thing they share.
	snapMu   sync.RWMutex
	lastSnap Snapshot
}

// NewGame builds a session from a player-configuration list. The seed drives
// dice and both deck shuffles; equal seeds replay identical games.
func NewGame(id string, configs []PlayerConfig, seed int64, rules Rules) *Game {
	if len(configs) < 2 {
		panic("a game needs at least two players")
	}
	if id == "" {
		id = uuid.NewV4().String()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		Id:        id,
		Rules:     rules,
		Spaces:    board.LoadProperties(),
		Turn:      1,
		Phase:     PhasePlaying,
		Chance:    NewCardDeck(ChanceCards(), rng, rules.ReshuffleOnWrap),
		Chest:     NewCardDeck(ChestCards(), rng, rules.ReshuffleOnWrap),
		Dice:      NewDice(rng),
		Log:       NewEventLog(),
		providers: make(map[string]DecisionProvider),
	}

	for i, config := range configs {
		player := &models.Player{
			Id:      uuid.NewV4().String(),
			Name:    config.Name,
			Color:   playerColors[i%len(playerColors)],
			Balance: 1500,
			Model:   config.Model,
		}
		g.Players = append(g.Players, player)
		if config.Provider != nil {
			g.providers[player.Id] = config.Provider
		}
	}

	g.Log.Add(g.Turn, SystemId, "Game started!")
	g.publishSnapshot()
	return g
}

// Run processes turns until a single player remains or ctx is canceled.
func (g *Game) Run(ctx context.Context) {
	for g.Phase == PhasePlaying {
		select {
		case <-ctx.Done():
			return
		default:
		}
		g.PlayTurn(ctx)
	}
}

func (g *Game) playerById(id string) *models.Player {
	for _, player := range g.Players {
		if player.Id == id {
			return player
		}
	}
	return nil
}

func (g *Game) playerName(id string) string {
	if player := g.playerById(id); player != nil {
		return player.Name
	}
	return id
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *models.Player {
	return g.Players[g.Current]
}

func (g *Game) activePlayers() []*models.Player {
	var active []*models.Player
	for _, player := range g.Players {
		if !player.Bankrupt {
			active = append(active, player)
		}
	}
	return active
}

func (g *Game) space(pos int) *models.Property {
	property, err := board.GetByPos(pos, g.Spaces)
	if err != nil {
		panic(err)
	}
	return property
}

// nextTurn advances to the next non-bankrupt player, resets the doubles
// counter and bumps the turn counter.
func (g *Game) nextTurn() {
	if len(g.activePlayers()) <= 1 {
		g.checkWinner()
		return
	}
	next := g.Current
	for {
		next = (next + 1) % len(g.Players)
		if !g.Players[next].Bankrupt {
			break
		}
	}
	g.Current = next
	g.Doubles = 0
	g.Turn++
	if g.OnTurn != nil {
		g.OnTurn(g.Turn, g.Players[next].Id)
	}
}

func (g *Game) checkWinner() {
	active := g.activePlayers()
	if len(active) == 1 && g.Phase == PhasePlaying {
		g.Phase = PhaseEnded
		g.Winner = active[0].Id
		g.Log.Add(g.Turn, active[0].Id, active[0].Name+" won the game!")
	}
}

// Snapshot is the read-only session view served to HTTP/socket consumers.
type Snapshot struct {
	Id          string               `json:"id"`
	Turn        int                  `json:"turn"`
	Phase       string               `json:"phase"`
	Winner      string               `json:"winner,omitempty"`
	Current     int                  `json:"current"`
	FreeParking int                  `json:"free_parking"`
	LastRoll    models.DiceRoll      `json:"last_roll"`
	Players     []models.Player      `json:"players"`
	Spaces      []models.Property    `json:"spaces"`
	Auction     *models.AuctionState `json:"auction,omitempty"`
}

// Snapshot returns the last turn-boundary snapshot. Safe to call from any
// goroutine while the engine runs; the engine republishes after every turn.
func (g *Game) Snapshot() Snapshot {
	g.snapMu.RLock()
	defer g.snapMu.RUnlock()
	snap := g.lastSnap
	snap.Players = append([]models.Player(nil), g.lastSnap.Players...)
	snap.Spaces = append([]models.Property(nil), g.lastSnap.Spaces...)
	if g.lastSnap.Auction != nil {
		auction := *g.lastSnap.Auction
		snap.Auction = &auction
	}
	return snap
}

// publishSnapshot copies the visible state and swaps it in for readers.
// Called only from the engine's control flow, between mutations.
func (g *Game) publishSnapshot() {
	snap := Snapshot{
		Id:          g.Id,
		Turn:        g.Turn,
		Phase:       g.Phase,
		Winner:      g.Winner,
		Current:     g.Current,
		FreeParking: g.FreeParking,
		LastRoll:    g.LastRoll,
	}
	for _, player := range g.Players {
		snap.Players = append(snap.Players, *player)
	}
	for _, space := range g.Spaces {
		snap.Spaces = append(snap.Spaces, *space)
	}
	if g.Auction != nil {
		auction := *g.Auction
		snap.Auction = &auction
	}
	g.snapMu.Lock()
	g.lastSnap = snap
	g.snapMu.Unlock()
}
