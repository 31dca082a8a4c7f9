package models

// Game is a lobby row (postgres). Session state is in-memory only.
type Game struct {
	Id     string
	Name   string
	Status string
}

type GameCreateDto struct {
	Name string
}

type VerifyGameDto struct {
	Code    string
	User_id string
}

// AuctionState tracks the single running auction for one property.
type AuctionState struct {
	Position      int      `json:"position"`
	Bid           int      `json:"bid"`
	HighestBidder string   `json:"highest_bidder,omitempty"`
	Participants  []string `json:"participants"`
	BidderIndex   int      `json:"bidder_index"`
}

// CurrentBidder returns the id of the participant whose turn it is to bid.
func (a *AuctionState) CurrentBidder() string {
	if len(a.Participants) == 0 {
		return ""
	}
	return a.Participants[a.BidderIndex%len(a.Participants)]
}

// LogEntry is one event-log record, turn-tagged and timestamped.
type LogEntry struct {
	Turn      int    `json:"turn"`
	PlayerId  string `json:"player_id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
