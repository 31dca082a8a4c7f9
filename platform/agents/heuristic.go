package agents

import (
	"context"
	"math/rand"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Heuristic is the local rule-of-thumb decision provider. It answers
// immediately and never errors; randomness comes from its own seeded source
// so games replay deterministically.
type Heuristic struct {
	rng *rand.Rand
}

func NewHeuristic(seed int64) *Heuristic {
	return &Heuristic{rng: rand.New(rand.NewSource(seed))}
}

func (h *Heuristic) Decide(_ context.Context, req models.DecisionRequest) (models.Decision, error) {
	switch req.Kind {
	case models.DecideJail:
		return h.jail(req), nil
	case models.DecideBuy:
		return h.buy(req), nil
	case models.DecideAuction:
		return h.auction(req), nil
	case models.DecideBuild:
		return h.build(req), nil
	}
	return models.Decision{Action: req.Options[0], Reasoning: "unknown decision kind", Confidence: 0.1}, nil
}

func (h *Heuristic) jail(req models.DecisionRequest) models.Decision {
	if has(req.Options, models.OptUseCard) {
		return decision(models.OptUseCard, "using get out of jail card", 0.9)
	}
	if has(req.Options, models.OptPay) && h.rng.Float64() > 0.5 {
		return decision(models.OptPay, "paying the fine to keep moving", 0.6)
	}
	return decision(models.OptRoll, "trying for doubles", 0.5)
}

func (h *Heuristic) buy(req models.DecisionRequest) models.Decision {
	if req.Player.Balance >= req.Price*2 || h.rng.Float64() > 0.3 {
		return decision(models.OptBuy, "good value", 0.7)
	}
	return decision(models.OptAuction, "saving money", 0.6)
}

func (h *Heuristic) auction(req models.DecisionRequest) models.Decision {
	// bid while the price stays under list value, most of the time
	if h.rng.Float64() > 0.4 {
		for _, option := range req.Options {
			if strings.HasPrefix(option, "bid_") && req.CurrentBid < req.Price {
				return decision(option, "still below list price", 0.5)
			}
		}
	}
	return decision(models.OptPass, "too rich for me", 0.6)
}

func (h *Heuristic) build(req models.DecisionRequest) models.Decision {
	// keep a cash reserve before sinking money into houses
	if req.Player.Balance >= 500 {
		for _, option := range req.Options {
			if strings.HasPrefix(option, "build_") {
				return decision(option, "developing the monopoly", 0.7)
			}
		}
	}
	return decision(models.OptSkip, "keeping cash reserves", 0.6)
}

func decision(action, reasoning string, confidence float64) models.Decision {
	return models.Decision{Action: action, Reasoning: reasoning, Confidence: confidence}
}

func has(options []string, want string) bool {
	for _, option := range options {
		if option == want {
			return true
		}
	}
	return false
}
