package models

// Decision kinds presented to a decision provider.
const (
	DecideJail    = "jail"
	DecideBuy     = "buyOrAuction"
	DecideAuction = "auctionBid"
	DecideBuild   = "build"
)

// Plain option tokens. Parameterized tokens are "bid_<amount>" and
// "build_<position>".
const (
	OptRoll    = "roll"
	OptPay     = "pay"
	OptUseCard = "useCard"
	OptBuy     = "buy"
	OptAuction = "auction"
	OptPass    = "pass"
	OptSkip    = "skip"
)

// PropertySummary is the owned-property view handed to providers.
type PropertySummary struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Houses   int    `json:"houses"`
	HasHotel bool   `json:"has_hotel"`
}

// OpponentSummary is the reduced view of the other players.
type OpponentSummary struct {
	Name       string `json:"name"`
	Balance    int    `json:"balance"`
	Properties int    `json:"properties"`
}

// DecisionRequest is the full payload for one provider call: a read-only
// state snapshot, the decision kind and the closed set of legal options.
type DecisionRequest struct {
	Kind    string   `json:"kind"`
	Options []string `json:"options"`
	Detail  string   `json:"detail"` // human-readable description of the choice

	Turn        int               `json:"turn"`
	Player      Player            `json:"player"`
	Owned       []PropertySummary `json:"owned"`
	Opponents   []OpponentSummary `json:"opponents"`
	SpaceName   string            `json:"space_name"`
	LastRoll    *DiceRoll         `json:"last_roll,omitempty"`
	FreeParking int               `json:"free_parking"`

	// Kind-specific context.
	Price      int `json:"price,omitempty"`       // buyOrAuction, auctionBid
	CurrentBid int `json:"current_bid,omitempty"` // auctionBid
}

// Decision is the provider response shape. Confidence is in [0,1].
type Decision struct {
	Action     string  `json:"action"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}
