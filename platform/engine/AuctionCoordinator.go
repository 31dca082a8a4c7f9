package engine

import (
	"context"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Auction bid increments offered to providers.
var bidIncrements = []int{10, 25, 50, 100}

// StartAuction opens bidding on one property among all non-bankrupt players.
func (g *Game) StartAuction(pos int) {
	property := g.space(pos)
	if !property.Ownable() || property.Owner != "" {
		panic("auction started for a non-auctionable property")
	}
	var participants []string
	for _, player := range g.activePlayers() {
		participants = append(participants, player.Id)
	}
	g.Auction = &models.AuctionState{
		Position:     pos,
		Participants: participants,
	}
	g.Log.Add(g.Turn, SystemId, fmt.Sprintf("Auction started for %s", property.Name))
}

// RunAuction drives bidding rounds until one participant remains with a bid,
// everyone passed without bidding, or the round cap trips. Each bidder's
// decision carries its own deadline; invalid bids count as a pass.
func (g *Game) RunAuction(ctx context.Context) {
	if g.Auction == nil {
		return
	}
	property := g.space(g.Auction.Position)
	limit := g.Rules.AuctionRoundCap * len(g.Auction.Participants)

	for steps := 0; g.Auction != nil && steps < limit; steps++ {
		auction := g.Auction
		if len(auction.Participants) == 0 {
			break
		}
		if len(auction.Participants) == 1 && auction.HighestBidder != "" {
			break
		}

		bidder := g.playerById(auction.CurrentBidder())
		if bidder == nil || bidder.Bankrupt {
			g.PassBid(auction.CurrentBidder())
			continue
		}

		options := g.bidOptions(bidder, property, auction.Bid)
		detail := fmt.Sprintf("Auction for %s (value $%d). Current bid: $%d. You have $%d.",
			property.Name, property.Price, auction.Bid, bidder.Balance)
		decision := g.decide(ctx, bidder, models.DecisionRequest{
			Kind:       models.DecideAuction,
			Options:    options,
			Detail:     detail,
			Price:      property.Price,
			CurrentBid: auction.Bid,
		})
		action, err := ParseAction(decision.Action)
		if err != nil || action.Kind != ActBid {
			g.PassBid(bidder.Id)
			continue
		}
		if !g.PlaceBid(bidder.Id, action.Amount) {
			// rejected bid is an implicit pass
			g.PassBid(bidder.Id)
		}
	}
	g.EndAuction()
}

// bidOptions is always pass plus the affordable increments above the
// current bid, capped at twice list price.
func (g *Game) bidOptions(bidder *models.Player, property *models.Property, currentBid int) []string {
	options := []string{models.OptPass}
	maxBid := property.Price * 2
	if bidder.Balance < maxBid {
		maxBid = bidder.Balance
	}
	for _, inc := range bidIncrements {
		if bid := currentBid + inc; bid <= maxBid {
			options = append(options, BidToken(bid))
		}
	}
	return options
}

// PlaceBid accepts a bid iff it beats the current high bid and the bidder
// can cover it, then rotates to the next participant.
func (g *Game) PlaceBid(playerId string, amount int) bool {
	auction := g.Auction
	if auction == nil {
		return false
	}
	bidder := g.playerById(playerId)
	if bidder == nil || auction.CurrentBidder() != playerId {
		return false
	}
	if amount <= auction.Bid || bidder.Balance < amount {
		return false
	}
	auction.Bid = amount
	auction.HighestBidder = playerId
	auction.BidderIndex = (auction.BidderIndex + 1) % len(auction.Participants)
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s bid $%d", bidder.Name, amount))
	return true
}

// PassBid removes the player from the auction. The bidder pointer lands on
// the next remaining participant.
func (g *Game) PassBid(playerId string) {
	auction := g.Auction
	if auction == nil {
		return
	}
	var remaining []string
	for _, id := range auction.Participants {
		if id != playerId {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == len(auction.Participants) {
		return // not a participant
	}
	auction.Participants = remaining
	if len(remaining) > 0 {
		auction.BidderIndex %= len(remaining)
	} else {
		auction.BidderIndex = 0
	}
	g.Log.Add(g.Turn, playerId, fmt.Sprintf("%s passed on the auction", g.playerName(playerId)))
}

// EndAuction settles whatever state the auction reached: the highest bidder
// pays and takes ownership, or the property stays with the bank.
func (g *Game) EndAuction() {
	auction := g.Auction
	if auction == nil {
		return
	}
	g.Auction = nil

	if auction.HighestBidder == "" {
		g.Log.Add(g.Turn, SystemId, "Auction ended with no bids")
		return
	}
	winner := g.playerById(auction.HighestBidder)
	property := g.space(auction.Position)
	if winner == nil || winner.Balance < auction.Bid || property.Owner != "" {
		panic("auction settled into an inconsistent state")
	}
	winner.Balance -= auction.Bid
	property.Owner = winner.Id
	winner.Properties = append(winner.Properties, property.Position)
	g.Log.Add(g.Turn, winner.Id, fmt.Sprintf("%s won the auction for %s with $%d", winner.Name, property.Name, auction.Bid))
}
