package engine

import (
	"context"
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// scriptedRoller replays a fixed roll sequence, repeating the last entry.
type scriptedRoller struct {
	rolls []models.DiceRoll
	next  int
}

func (s *scriptedRoller) Roll() models.DiceRoll {
	i := s.next
	if i >= len(s.rolls) {
		i = len(s.rolls) - 1
	}
	s.next++
	return s.rolls[i]
}

func roll(die1, die2 int) models.DiceRoll {
	return models.DiceRoll{Die1: die1, Die2: die2, Doubles: die1 == die2}
}

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	if len(names) == 0 {
		names = []string{"alice", "bob"}
	}
	var configs []PlayerConfig
	for _, name := range names {
		configs = append(configs, PlayerConfig{Name: name})
	}
	return NewGame("test-game", configs, 42, DefaultRules())
}

// scriptProvider answers with the given actions in order, repeating the last.
func scriptProvider(actions ...string) DecisionProvider {
	next := 0
	return DecisionFunc(func(_ context.Context, _ models.DecisionRequest) (models.Decision, error) {
		i := next
		if i >= len(actions) {
			i = len(actions) - 1
		}
		next++
		return models.Decision{Action: actions[i], Reasoning: "scripted", Confidence: 1}, nil
	})
}

func TestNewGameRequiresTwoPlayers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a one-player game")
		}
	}()
	NewGame("solo", []PlayerConfig{{Name: "alone"}}, 1, DefaultRules())
}

func TestNewGameSetsUpSeats(t *testing.T) {
	g := newTestGame(t, "alice", "bob", "carol")
	if len(g.Players) != 3 {
		t.Fatalf("got %d players", len(g.Players))
	}
	for _, player := range g.Players {
		if player.Balance != 1500 {
			t.Errorf("%s starts with $%d, want $1500", player.Name, player.Balance)
		}
		if player.Pos != 0 || player.Bankrupt || player.InJail {
			t.Errorf("%s has wrong initial state: %+v", player.Name, player)
		}
	}
	if g.Turn != 1 || g.Phase != PhasePlaying {
		t.Errorf("turn=%d phase=%q", g.Turn, g.Phase)
	}
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	configs := []PlayerConfig{{Name: "a"}, {Name: "b"}}
	g1 := NewGame("g1", configs, 7, DefaultRules())
	g2 := NewGame("g2", configs, 7, DefaultRules())
	for i := 0; i < 20; i++ {
		r1, r2 := g1.Dice.Roll(), g2.Dice.Roll()
		if r1 != r2 {
			t.Fatalf("roll %d diverged: %v vs %v", i, r1, r2)
		}
	}
	for i := 0; i < g1.Chance.Len(); i++ {
		c1, c2 := g1.Chance.Draw(), g2.Chance.Draw()
		if c1.Text != c2.Text {
			t.Fatalf("chance draw %d diverged: %q vs %q", i, c1.Text, c2.Text)
		}
	}
}

func TestNextTurnSkipsBankrupt(t *testing.T) {
	g := newTestGame(t, "alice", "bob", "carol")
	g.Players[1].Bankrupt = true
	g.nextTurn()
	if g.CurrentPlayer().Name != "carol" {
		t.Fatalf("current is %s, want carol", g.CurrentPlayer().Name)
	}
	if g.Turn != 2 {
		t.Errorf("turn=%d, want 2", g.Turn)
	}
}

func TestNextTurnFiresCallback(t *testing.T) {
	g := newTestGame(t)
	var gotTurn int
	var gotId string
	g.OnTurn = func(turn int, playerId string) {
		gotTurn = turn
		gotId = playerId
	}
	g.nextTurn()
	if gotTurn != 2 || gotId != g.Players[1].Id {
		t.Fatalf("callback got turn=%d id=%q", gotTurn, gotId)
	}
}

func TestCheckWinnerEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.Players[1].Bankrupt = true
	g.checkWinner()
	if g.Phase != PhaseEnded {
		t.Fatalf("phase=%q, want ended", g.Phase)
	}
	if g.Winner != g.Players[0].Id {
		t.Errorf("winner=%q, want %q", g.Winner, g.Players[0].Id)
	}
}

func TestSnapshotConcurrentWithRun(t *testing.T) {
	g := newTestGame(t)
	g.Dice = &scriptedRoller{rolls: []models.DiceRoll{roll(1, 2)}}
	a := g.Players[0]
	a.Pos = 1
	a.Balance = 100 // first landing is Income Tax, which bankrupts them

	done := make(chan struct{})
	go func() {
		g.Run(context.Background())
		close(done)
	}()

	// hammer reads while the engine goroutine plays the game out
	for running := true; running; {
		snap := g.Snapshot()
		if len(snap.Players) != 2 || len(snap.Spaces) != 40 {
			t.Errorf("torn snapshot: %d players, %d spaces", len(snap.Players), len(snap.Spaces))
			break
		}
		select {
		case <-done:
			running = false
		default:
		}
	}
	<-done

	final := g.Snapshot()
	if final.Phase != PhaseEnded || final.Winner != g.Players[1].Id {
		t.Errorf("final snapshot: phase=%q winner=%q", final.Phase, final.Winner)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Players[0].Balance = 0
	snap.Spaces[1].Owner = "nobody"
	if g.Players[0].Balance != 1500 {
		t.Error("snapshot mutation leaked into player state")
	}
	if g.Spaces[1].Owner != "" {
		t.Error("snapshot mutation leaked into board state")
	}
	if len(snap.Spaces) != 40 {
		t.Errorf("snapshot has %d spaces", len(snap.Spaces))
	}
}
