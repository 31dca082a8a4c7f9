package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// ActionKind is the typed form of a decision token. String tokens from
// providers are parsed and validated once at the boundary; everything
// downstream switches on the kind and reads typed payloads.
type ActionKind int

const (
	ActRoll ActionKind = iota
	ActPay
	ActUseCard
	ActBuy
	ActAuction
	ActPass
	ActSkip
	ActBid
	ActBuild
)

// Action carries the kind plus the payload of parameterized tokens.
type Action struct {
	Kind   ActionKind
	Amount int // bid amount
	Pos    int // build position
}

var errBadToken = errors.New("unknown action token")

// ParseAction converts an option token into a typed Action. Range checks on
// Amount/Pos remain with the caller, which knows the game context.
func ParseAction(token string) (Action, error) {
	switch token {
	case models.OptRoll:
		return Action{Kind: ActRoll}, nil
	case models.OptPay:
		return Action{Kind: ActPay}, nil
	case models.OptUseCard:
		return Action{Kind: ActUseCard}, nil
	case models.OptBuy:
		return Action{Kind: ActBuy}, nil
	case models.OptAuction:
		return Action{Kind: ActAuction}, nil
	case models.OptPass:
		return Action{Kind: ActPass}, nil
	case models.OptSkip:
		return Action{Kind: ActSkip}, nil
	}
	if amount, ok := parseSuffix(token, "bid_"); ok {
		return Action{Kind: ActBid, Amount: amount}, nil
	}
	if pos, ok := parseSuffix(token, "build_"); ok {
		return Action{Kind: ActBuild, Pos: pos}, nil
	}
	return Action{}, errBadToken
}

func parseSuffix(token, prefix string) (int, bool) {
	if !strings.HasPrefix(token, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(token, prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// BidToken and BuildToken build the parameterized option tokens.
func BidToken(amount int) string {
	return "bid_" + strconv.Itoa(amount)
}

func BuildToken(pos int) string {
	return "build_" + strconv.Itoa(pos)
}
