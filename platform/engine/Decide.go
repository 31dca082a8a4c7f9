package engine

import (
	"context"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// DecisionProvider is whoever chooses the next action for a player: a local
// heuristic, a remote agent, or test input. Implementations may block; the
// engine bounds every call with Rules.DecisionTimeout and substitutes a safe
// default on timeout, error or an illegal token. Decide must not touch game
// state.
type DecisionProvider interface {
	Decide(ctx context.Context, req models.DecisionRequest) (models.Decision, error)
}

// DecisionFunc adapts a plain function to DecisionProvider.
type DecisionFunc func(ctx context.Context, req models.DecisionRequest) (models.Decision, error)

func (f DecisionFunc) Decide(ctx context.Context, req models.DecisionRequest) (models.Decision, error) {
	return f(ctx, req)
}

// fallbackAction is the conservative default per decision kind.
func fallbackAction(kind string) string {
	switch kind {
	case models.DecideJail:
		return models.OptRoll
	case models.DecideBuy:
		return models.OptAuction
	case models.DecideAuction:
		return models.OptPass
	case models.DecideBuild:
		return models.OptSkip
	}
	return models.OptPass
}

type decideResult struct {
	decision models.Decision
	err      error
}

// decide asks the player's provider for one choice. The caller seeds req
// with Kind, Options, Detail and any kind-specific context; the state
// snapshot is filled in here. This is the single suspension point wrapper:
// at most one call is outstanding at any instant, results arriving after the
// deadline are discarded, and the returned action is always a member of
// req.Options.
func (g *Game) decide(ctx context.Context, player *models.Player, req models.DecisionRequest) models.Decision {
	options := req.Options
	fallback := models.Decision{
		Action:     fallbackAction(req.Kind),
		Reasoning:  "fallback decision",
		Confidence: 0.1,
	}

	provider := g.providers[player.Id]
	if provider == nil {
		return fallback
	}

	g.fillSnapshot(&req, player)
	cctx, cancel := context.WithTimeout(ctx, g.Rules.DecisionTimeout)
	defer cancel()

	ch := make(chan decideResult, 1)
	go func() {
		decision, err := provider.Decide(cctx, req)
		ch <- decideResult{decision, err}
	}()

	var decision models.Decision
	select {
	case res := <-ch:
		if res.err != nil {
			g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s decision failed (%v), using default %q", player.Name, res.err, fallback.Action))
			return fallback
		}
		decision = res.decision
	case <-cctx.Done():
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s decision timed out, using default %q", player.Name, fallback.Action))
		return fallback
	}

	if !containsOption(options, decision.Action) {
		decision.Action = options[0]
		decision.Reasoning += " (action corrected to valid option)"
	}
	// confidence is defined on [0,1]; clamp whatever the provider sent
	if decision.Confidence < 0 {
		decision.Confidence = 0
	} else if decision.Confidence > 1 {
		decision.Confidence = 1
	}
	return decision
}

func containsOption(options []string, action string) bool {
	for _, option := range options {
		if option == action {
			return true
		}
	}
	return false
}

// fillSnapshot copies the state fields a provider is allowed to see.
func (g *Game) fillSnapshot(req *models.DecisionRequest, player *models.Player) {
	req.Turn = g.Turn
	req.Player = *player
	req.SpaceName = g.space(player.Pos).Name
	req.FreeParking = g.FreeParking
	if g.LastRoll.Total() > 0 {
		roll := g.LastRoll
		req.LastRoll = &roll
	}
	for _, property := range g.PlayerProperties(player.Id) {
		req.Owned = append(req.Owned, models.PropertySummary{
			Name:     property.Name,
			Position: property.Position,
			Houses:   property.Houses,
			HasHotel: property.HasHotel,
		})
	}
	for _, other := range g.activePlayers() {
		if other.Id == player.Id {
			continue
		}
		req.Opponents = append(req.Opponents, models.OpponentSummary{
			Name:       other.Name,
			Balance:    other.Balance,
			Properties: len(other.Properties),
		})
	}
}
