package models

// Card actions.
const (
	CardMoveTo      = "moveTo"
	CardMoveSpaces  = "moveSpaces"
	CardPayBank     = "payBank"
	CardCollectBank = "collectBank"
	CardPayEach     = "payEach"
	CardCollectEach = "collectEach"
	CardGoToJail    = "goToJail"
	CardJailCard    = "jailCard"
	CardRepairs     = "repairs"
)

// Relocation destinations with special meaning for moveTo cards.
const (
	DestNearestRailroad = -1
	DestNearestUtility  = -2
)

// Card is one typed deck effect. Value is the dollar amount for money cards,
// Dest the board position for moveTo (or a DestNearest* marker), and the
// spaces delta for moveSpaces is carried in Value (may be negative).
type Card struct {
	Text     string `json:"text"`
	Action   string `json:"action"`
	Value    int    `json:"value,omitempty"`
	Dest     int    `json:"dest,omitempty"`
	PerHouse int    `json:"per_house,omitempty"`
	PerHotel int    `json:"per_hotel,omitempty"`
}
