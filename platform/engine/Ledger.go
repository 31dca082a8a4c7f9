package engine

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// The ledger is the sole mutator of cash and ownership. Every method either
// fully applies and logs, or rejects without touching state.

// Pay debits the player iff affordable. The money leaves the game (bank).
func (g *Game) Pay(playerId string, amount int) bool {
	player := g.playerById(playerId)
	if player == nil || player.Bankrupt {
		return false
	}
	if player.Balance < amount {
		return false
	}
	player.Balance -= amount
	return true
}

// Credit always succeeds; the bank has unlimited funds.
func (g *Game) Credit(playerId string, amount int) {
	player := g.playerById(playerId)
	if player == nil || player.Bankrupt {
		return
	}
	player.Balance += amount
}

// Transfer moves cash between players atomically. Fails without mutation if
// the payer cannot cover the amount.
func (g *Game) Transfer(fromId, toId string, amount int) bool {
	from := g.playerById(fromId)
	to := g.playerById(toId)
	if from == nil || to == nil {
		return false
	}
	if from.Balance < amount {
		return false
	}
	from.Balance -= amount
	to.Balance += amount
	return true
}

// BuyProperty sells an unowned property to the player at list price.
func (g *Game) BuyProperty(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || !property.Ownable() || property.Owner != "" {
		return false
	}
	if player.Balance < property.Price {
		return false
	}
	player.Balance -= property.Price
	property.Owner = playerId
	player.Properties = append(player.Properties, pos)
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s bought %s for $%d", player.Name, property.Name, property.Price))
	return true
}

// BuildHouse adds one house. Requires ownership, a full color-group
// monopoly, fewer than 4 houses, no hotel and affordability.
func (g *Game) BuildHouse(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId || property.Type != models.SpaceProperty {
		return false
	}
	if property.Houses >= 4 || property.HasHotel || property.Mortgaged {
		return false
	}
	if !g.HasMonopoly(playerId, property.Group) {
		return false
	}
	if player.Balance < property.HouseCost {
		return false
	}
	player.Balance -= property.HouseCost
	property.Houses++
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s built a house on %s", player.Name, property.Name))
	return true
}

// BuildHotel upgrades exactly 4 houses into a hotel.
func (g *Game) BuildHotel(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId || property.Type != models.SpaceProperty {
		return false
	}
	if property.Houses != 4 || property.HasHotel {
		return false
	}
	if player.Balance < property.HotelCost {
		return false
	}
	player.Balance -= property.HotelCost
	property.Houses = 0
	property.HasHotel = true
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s built a hotel on %s", player.Name, property.Name))
	return true
}

// SellHouse refunds half the relevant cost. Selling a hotel reverts the
// property to 4 houses.
func (g *Game) SellHouse(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId {
		return false
	}
	if property.Houses == 0 && !property.HasHotel {
		return false
	}
	var refund int
	if property.HasHotel {
		refund = property.HotelCost / 2
		property.HasHotel = false
		property.Houses = 4
	} else {
		refund = property.HouseCost / 2
		property.Houses--
	}
	player.Balance += refund
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s sold a house from %s for $%d", player.Name, property.Name, refund))
	return true
}

// MortgageProperty pays out the mortgage value. Rejected while structures
// are present.
func (g *Game) MortgageProperty(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId {
		return false
	}
	if property.Mortgaged || property.Houses > 0 || property.HasHotel {
		return false
	}
	property.Mortgaged = true
	player.Balance += property.Mortgage
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s mortgaged %s for $%d", player.Name, property.Name, property.Mortgage))
	return true
}

// UnmortgageProperty repays the mortgage plus 10% interest.
func (g *Game) UnmortgageProperty(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId || !property.Mortgaged {
		return false
	}
	cost := property.Mortgage * 11 / 10
	if player.Balance < cost {
		return false
	}
	player.Balance -= cost
	property.Mortgaged = false
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s unmortgaged %s for $%d", player.Name, property.Name, cost))
	return true
}

// HasMonopoly reports whether the player owns every property in the color
// group. Railroads and utilities never form a monopoly.
func (g *Game) HasMonopoly(playerId string, group string) bool {
	switch group {
	case "", "railroad", "utility":
		return false
	}
	positions := board.GroupPositions(group, g.Spaces)
	if len(positions) == 0 {
		return false
	}
	for _, pos := range positions {
		if g.space(pos).Owner != playerId {
			return false
		}
	}
	return true
}

// ComputeRent returns the rent due on a property for the given dice total.
// Mortgaged or unowned properties yield 0.
func (g *Game) ComputeRent(property *models.Property, diceTotal int) int {
	if property.Owner == "" || property.Mortgaged {
		return 0
	}
	switch property.Type {
	case models.SpaceRailroad:
		owned := g.countOwnedOfType(property.Owner, models.SpaceRailroad)
		if owned < 1 || owned > len(property.Rent) {
			return 25
		}
		return property.Rent[owned-1]
	case models.SpaceUtility:
		owned := g.countOwnedOfType(property.Owner, models.SpaceUtility)
		multiplier := 4
		if owned >= 2 {
			multiplier = 10
		}
		if diceTotal <= 0 {
			diceTotal = 7
		}
		return diceTotal * multiplier
	}
	if property.HasHotel {
		return property.Rent[len(property.Rent)-1]
	}
	if property.Houses > 0 {
		return property.Rent[property.Houses]
	}
	if g.HasMonopoly(property.Owner, property.Group) {
		return property.Rent[0] * 2
	}
	return property.Rent[0]
}

func (g *Game) countOwnedOfType(playerId string, spaceType string) int {
	count := 0
	for _, property := range g.Spaces {
		if property.Type == spaceType && property.Owner == playerId {
			count++
		}
	}
	return count
}

// PlayerProperties returns the properties currently owned by the player.
func (g *Game) PlayerProperties(playerId string) []*models.Property {
	var owned []*models.Property
	for _, property := range g.Spaces {
		if property.Owner == playerId {
			owned = append(owned, property)
		}
	}
	return owned
}

// CanBuildHouse mirrors BuildHouse's preconditions without mutating.
func (g *Game) CanBuildHouse(playerId string, pos int) bool {
	player := g.playerById(playerId)
	property := g.space(pos)
	if player == nil || property.Owner != playerId || property.Type != models.SpaceProperty {
		return false
	}
	if property.Houses >= 4 || property.HasHotel || property.Mortgaged {
		return false
	}
	if player.Balance < property.HouseCost {
		return false
	}
	return g.HasMonopoly(playerId, property.Group)
}

// DeclareBankruptcy removes the player from play. With a creditor, all cash
// and properties transfer as-is; otherwise properties revert to the bank
// with structures and mortgages cleared. Terminal: never undone.
func (g *Game) DeclareBankruptcy(playerId string, creditorId string) {
	player := g.playerById(playerId)
	if player == nil || player.Bankrupt {
		return
	}
	remaining := player.Balance
	owned := player.Properties
	player.Bankrupt = true
	player.Balance = 0
	player.Properties = nil

	if creditor := g.playerById(creditorId); creditor != nil && !creditor.Bankrupt {
		creditor.Balance += remaining
		creditor.Properties = append(creditor.Properties, owned...)
		for _, pos := range owned {
			g.space(pos).Owner = creditorId
		}
		g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s went bankrupt, assets go to %s", player.Name, creditor.Name))
	} else {
		for _, pos := range owned {
			property := g.space(pos)
			property.Owner = ""
			property.Houses = 0
			property.HasHotel = false
			property.Mortgaged = false
		}
		g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s went bankrupt, properties return to the bank", player.Name))
	}
	g.checkWinner()
}
