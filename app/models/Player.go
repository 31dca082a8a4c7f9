package models

// Player is the in-session player record, owned exclusively by the engine.
// Lobby membership is the Member row below (postgres).
type Player struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Balance    int    `json:"balance"`
	Pos        int    `json:"pos"`
	Properties []int  `json:"properties"`
	InJail     bool   `json:"in_jail"`
	JailTurns  int    `json:"jail_turns"`
	JailCards  int    `json:"jail_cards"`
	Bankrupt   bool   `json:"bankrupt"`
	Model      string `json:"model,omitempty"` // remote agent model id, empty for local players
}

// Member is a lobby membership row.
type Member struct {
	User_id  string
	Game_id  string
	Username string
	Model    string
}

type DiceRoll struct {
	Die1    int  `json:"die1"`
	Die2    int  `json:"die2"`
	Doubles bool `json:"doubles"`
}

func (r DiceRoll) Total() int {
	return r.Die1 + r.Die2
}
