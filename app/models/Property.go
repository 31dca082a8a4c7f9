package models

// Space types as stored in the board catalog.
const (
	SpaceProperty    = "property"
	SpaceRailroad    = "railroad"
	SpaceUtility     = "utility"
	SpaceTax         = "tax"
	SpaceChance      = "chance"
	SpaceChest       = "chest"
	SpaceGo          = "go"
	SpaceJail        = "jail"
	SpaceFreeParking = "freeparking"
	SpaceGoToJail    = "gotojail"
)

// Property is one board space. Catalog fields come from the embedded board
// JSON; Owner/Houses/HasHotel/Mortgaged are the mutable session state and are
// only ever touched by the engine's ledger.
type Property struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Group     string `json:"group,omitempty"`
	Position  int    `json:"position"`
	Price     int    `json:"price,omitempty"`
	Rent      []int  `json:"rent,omitempty"`
	HouseCost int    `json:"housecost,omitempty"`
	HotelCost int    `json:"hotelcost,omitempty"`
	Mortgage  int    `json:"mortgage,omitempty"`
	Tax       int    `json:"tax,omitempty"`

	Owner     string `json:"owner,omitempty"`
	Houses    int    `json:"houses,omitempty"`
	HasHotel  bool   `json:"has_hotel,omitempty"`
	Mortgaged bool   `json:"mortgaged,omitempty"`
}

// Ownable reports whether the space can be bought, rented and auctioned.
func (p *Property) Ownable() bool {
	switch p.Type {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	}
	return false
}
