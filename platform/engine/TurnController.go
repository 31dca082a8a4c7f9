package engine

import (
	"context"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// PlayTurn runs one full roll cycle for the current player:
// roll -> move -> landing resolution -> build phase -> turn end. Jailed
// players get a jail decision instead of a free roll. On doubles (below the
// third) the same player keeps the turn; everything else advances the seat.
func (g *Game) PlayTurn(ctx context.Context) {
	if g.Phase != PhasePlaying {
		return
	}
	defer g.publishSnapshot()
	player := g.CurrentPlayer()
	if player.Bankrupt {
		// turn advancement skips bankrupt seats, so landing here is a bug
		panic("bankrupt player scheduled for a turn")
	}

	if player.InJail {
		g.jailTurn(ctx, player)
		if g.Phase == PhasePlaying && !player.Bankrupt && !player.InJail {
			g.buildPhase(ctx, player)
		}
		g.nextTurn()
		return
	}

	roll := g.Dice.Roll()
	g.LastRoll = roll
	if roll.Doubles {
		g.Doubles++
	} else {
		g.Doubles = 0
	}
	g.logRoll(player, roll)

	if g.Doubles >= 3 {
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s rolled doubles 3 times, going to jail!", player.Name))
		g.sendToJail(player)
		g.nextTurn()
		return
	}

	g.movePlayer(player, roll.Total(), true)
	g.resolveLanding(ctx, player, roll.Total())

	if g.Phase == PhasePlaying && !player.Bankrupt && !player.InJail {
		g.buildPhase(ctx, player)
	}

	if roll.Doubles && g.Phase == PhasePlaying && !player.Bankrupt && !player.InJail {
		return // same player rolls again
	}
	g.nextTurn()
}

func (g *Game) logRoll(player *models.Player, roll models.DiceRoll) {
	suffix := ""
	if roll.Doubles {
		suffix = " (DOUBLES!)"
	}
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s rolled %d + %d = %d%s", player.Name, roll.Die1, roll.Die2, roll.Total(), suffix))
}

// jailTurn handles the JailDecision state: roll for doubles, pay the fine,
// or spend a Get Out of Jail Free card.
func (g *Game) jailTurn(ctx context.Context, player *models.Player) {
	options := []string{models.OptRoll}
	if player.Balance >= g.Rules.JailFine {
		options = append(options, models.OptPay)
	}
	if player.JailCards > 0 {
		options = append(options, models.OptUseCard)
	}
	detail := fmt.Sprintf("You are in jail (turn %d of 3). roll: try for doubles; pay: $%d fine; useCard: spend a Get Out of Jail Free card.",
		player.JailTurns+1, g.Rules.JailFine)

	decision := g.decide(ctx, player, models.DecisionRequest{Kind: models.DecideJail, Options: options, Detail: detail})
	action, err := ParseAction(decision.Action)
	if err != nil {
		action = Action{Kind: ActRoll}
	}
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s chose to %s (%s)", player.Name, decision.Action, decision.Reasoning))

	switch action.Kind {
	case ActPay:
		if g.payJailFine(player) {
			g.rollAndMove(ctx, player)
		}
	case ActUseCard:
		if g.useJailCard(player) {
			g.rollAndMove(ctx, player)
		}
	default: // roll
		roll := g.Dice.Roll()
		g.LastRoll = roll
		g.logRoll(player, roll)
		if roll.Doubles {
			g.releaseFromJail(player)
			g.movePlayer(player, roll.Total(), true)
			g.resolveLanding(ctx, player, roll.Total())
			return
		}
		if player.JailTurns >= 2 {
			// third failed roll: the fine is mandatory
			if g.payJailFine(player) {
				g.movePlayer(player, roll.Total(), true)
				g.resolveLanding(ctx, player, roll.Total())
			} else {
				g.DeclareBankruptcy(player.Id, "")
			}
			return
		}
		player.JailTurns++
	}
}

// rollAndMove is the post-release roll after paying or using a card.
func (g *Game) rollAndMove(ctx context.Context, player *models.Player) {
	roll := g.Dice.Roll()
	g.LastRoll = roll
	g.logRoll(player, roll)
	g.movePlayer(player, roll.Total(), true)
	g.resolveLanding(ctx, player, roll.Total())
}

// movePlayer advances by spaces (may be negative). Passing Go on a positive
// forward move pays the salary.
func (g *Game) movePlayer(player *models.Player, spaces int, passGo bool) {
	newPos := ((player.Pos+spaces)%board.Size + board.Size) % board.Size
	passedGo := passGo && spaces > 0 && player.Pos+spaces >= board.Size
	player.Pos = newPos
	if passedGo {
		g.Credit(player.Id, g.Rules.GoSalary)
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s passed GO and collected $%d", player.Name, g.Rules.GoSalary))
	}
}

// moveTo relocates directly. Salary is paid only when the relocation permits
// it and the move wraps past Go (never when heading to jail).
func (g *Game) moveTo(player *models.Player, pos int, collectGo bool) {
	passedGo := collectGo && pos < player.Pos && pos != board.JailPosition
	player.Pos = pos
	if passedGo {
		g.Credit(player.Id, g.Rules.GoSalary)
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s passed GO and collected $%d", player.Name, g.Rules.GoSalary))
	}
}

// resolveLanding dispatches on the space type at the player's position.
func (g *Game) resolveLanding(ctx context.Context, player *models.Player, diceTotal int) {
	space := g.space(player.Pos)
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s landed on %s", player.Name, space.Name))

	switch space.Type {
	case models.SpaceProperty, models.SpaceRailroad, models.SpaceUtility:
		g.resolveOwnable(ctx, player, space, diceTotal)
	case models.SpaceChance:
		g.applyCard(player, g.Chance.Draw())
	case models.SpaceChest:
		g.applyCard(player, g.Chest.Draw())
	case models.SpaceTax:
		if g.Pay(player.Id, space.Tax) {
			g.FreeParking += space.Tax
			g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s paid $%d in taxes", player.Name, space.Tax))
		} else {
			g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s cannot afford $%d tax!", player.Name, space.Tax))
			g.DeclareBankruptcy(player.Id, "")
		}
	case models.SpaceGoToJail:
		g.sendToJail(player)
	case models.SpaceFreeParking:
		if g.Rules.FreeParkingPayout && g.FreeParking > 0 {
			g.Credit(player.Id, g.FreeParking)
			g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s collected $%d from Free Parking!", player.Name, g.FreeParking))
			g.FreeParking = 0
		}
	}
}

func (g *Game) resolveOwnable(ctx context.Context, player *models.Player, property *models.Property, diceTotal int) {
	if property.Owner == "" {
		if player.Balance >= property.Price {
			g.buyDecision(ctx, player, property)
		} else {
			// cannot afford list price: straight to auction
			g.StartAuction(property.Position)
			g.RunAuction(ctx)
		}
		return
	}
	if property.Owner == player.Id || property.Mortgaged {
		return
	}
	rent := g.ComputeRent(property, diceTotal)
	if g.Transfer(player.Id, property.Owner, rent) {
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s paid $%d rent to %s", player.Name, rent, g.playerName(property.Owner)))
	} else {
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s cannot afford $%d rent!", player.Name, rent))
		g.DeclareBankruptcy(player.Id, property.Owner)
	}
}

// buyDecision is the PendingBuyDecision state, only reached when the player
// can afford the list price. Fallback is auction.
func (g *Game) buyDecision(ctx context.Context, player *models.Player, property *models.Property) {
	options := []string{models.OptBuy, models.OptAuction}
	detail := fmt.Sprintf("Should you buy %s for $%d? You have $%d. Base rent $%d.",
		property.Name, property.Price, player.Balance, baseRent(property))

	decision := g.decide(ctx, player, models.DecisionRequest{
		Kind:    models.DecideBuy,
		Options: options,
		Detail:  detail,
		Price:   property.Price,
	})
	decision.Action = normalizeBuy(decision.Action)
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s decided to %s (%s)", player.Name, decision.Action, decision.Reasoning))

	if decision.Action == models.OptBuy && g.BuyProperty(player.Id, property.Position) {
		return
	}
	g.StartAuction(property.Position)
	g.RunAuction(ctx)
}

func normalizeBuy(action string) string {
	if action == models.OptBuy {
		return models.OptBuy
	}
	return models.OptAuction
}

func baseRent(property *models.Property) int {
	if len(property.Rent) == 0 {
		return 0
	}
	return property.Rent[0]
}

// applyCard executes one drawn card effect through ledger primitives.
func (g *Game) applyCard(player *models.Player, card models.Card) {
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s drew: %q", player.Name, card.Text))

	switch card.Action {
	case models.CardMoveTo:
		dest := card.Dest
		switch dest {
		case models.DestNearestRailroad:
			dest = board.NearestForward(player.Pos, board.RailroadPositions)
		case models.DestNearestUtility:
			dest = board.NearestForward(player.Pos, board.UtilityPositions)
		}
		g.moveTo(player, dest, true)
	case models.CardMoveSpaces:
		g.movePlayer(player, card.Value, card.Value > 0)
	case models.CardPayBank:
		if g.Pay(player.Id, card.Value) {
			g.FreeParking += card.Value
		} else {
			g.DeclareBankruptcy(player.Id, "")
		}
	case models.CardCollectBank:
		g.Credit(player.Id, card.Value)
	case models.CardPayEach:
		for _, other := range g.activePlayers() {
			if other.Id == player.Id {
				continue
			}
			if !g.Transfer(player.Id, other.Id, card.Value) {
				g.DeclareBankruptcy(player.Id, "")
				break
			}
		}
	case models.CardCollectEach:
		for _, other := range g.activePlayers() {
			if other.Id == player.Id {
				continue
			}
			if !g.Transfer(other.Id, player.Id, card.Value) {
				g.DeclareBankruptcy(other.Id, player.Id)
			}
		}
	case models.CardGoToJail:
		g.sendToJail(player)
	case models.CardJailCard:
		player.JailCards++
	case models.CardRepairs:
		total := 0
		for _, property := range g.PlayerProperties(player.Id) {
			if property.HasHotel {
				total += card.PerHotel
			} else {
				total += property.Houses * card.PerHouse
			}
		}
		if total > 0 && !g.Pay(player.Id, total) {
			g.DeclareBankruptcy(player.Id, "")
		}
	}
}

// buildPhase offers the current player one house per turn on a monopolized,
// affordable property. No forced building.
func (g *Game) buildPhase(ctx context.Context, player *models.Player) {
	options := []string{models.OptSkip}
	detail := "You can build houses on: "
	for _, property := range g.Spaces {
		if g.CanBuildHouse(player.Id, property.Position) {
			options = append(options, BuildToken(property.Position))
			detail += fmt.Sprintf("%s ($%d, %d houses); ", property.Name, property.HouseCost, property.Houses)
		}
	}
	if len(options) == 1 {
		return
	}

	decision := g.decide(ctx, player, models.DecisionRequest{Kind: models.DecideBuild, Options: options, Detail: detail})
	action, err := ParseAction(decision.Action)
	if err != nil || action.Kind != ActBuild {
		return
	}
	if g.BuildHouse(player.Id, action.Pos) {
		g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s is building (%s)", player.Name, decision.Reasoning))
	}
}

func (g *Game) sendToJail(player *models.Player) {
	player.Pos = board.JailPosition
	player.InJail = true
	player.JailTurns = 0
	g.Doubles = 0
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s was sent to Jail!", player.Name))
}

func (g *Game) releaseFromJail(player *models.Player) {
	player.InJail = false
	player.JailTurns = 0
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s was released from Jail", player.Name))
}

func (g *Game) payJailFine(player *models.Player) bool {
	if !g.Pay(player.Id, g.Rules.JailFine) {
		return false
	}
	g.releaseFromJail(player)
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s paid $%d to get out of Jail", player.Name, g.Rules.JailFine))
	return true
}

func (g *Game) useJailCard(player *models.Player) bool {
	if player.JailCards == 0 {
		return false
	}
	player.JailCards--
	g.releaseFromJail(player)
	g.Log.Add(g.Turn, player.Id, fmt.Sprintf("%s used a Get Out of Jail Free card", player.Name))
	return true
}
