package engine

import (
	"context"
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func TestAuctionNoBidsLeavesPropertyWithBank(t *testing.T) {
	g := newTestGame(t) // no providers: everyone falls back to pass

	g.StartAuction(3)
	g.RunAuction(context.Background())

	if g.space(3).Owner != "" {
		t.Fatalf("owner=%q after an auction with no bids", g.space(3).Owner)
	}
	if g.Auction != nil {
		t.Error("auction state not cleared")
	}
	for _, player := range g.Players {
		if player.Balance != 1500 {
			t.Errorf("%s balance=%d changed by a no-bid auction", player.Name, player.Balance)
		}
	}
}

func TestAuctionWinnerPaysExactBid(t *testing.T) {
	g := newTestGame(t)
	a, b := g.Players[0], g.Players[1]
	g.providers[a.Id] = scriptProvider(BidToken(10), models.OptPass)

	g.StartAuction(3)
	g.RunAuction(context.Background())

	if g.space(3).Owner != a.Id {
		t.Fatalf("owner=%q, want the sole bidder", g.space(3).Owner)
	}
	if a.Balance != 1490 {
		t.Errorf("winner balance=%d, want 1490", a.Balance)
	}
	if b.Balance != 1500 {
		t.Errorf("passer balance=%d changed", b.Balance)
	}
	if len(a.Properties) != 1 || a.Properties[0] != 3 {
		t.Errorf("winner portfolio=%v", a.Properties)
	}
}

func TestAuctionOutbidding(t *testing.T) {
	g := newTestGame(t)
	a, b := g.Players[0], g.Players[1]
	g.providers[a.Id] = scriptProvider(BidToken(10), models.OptPass)
	g.providers[b.Id] = scriptProvider(BidToken(35))

	g.StartAuction(3)
	g.RunAuction(context.Background())

	if g.space(3).Owner != b.Id {
		t.Fatalf("owner=%q, want the higher bidder", g.space(3).Owner)
	}
	if b.Balance != 1465 {
		t.Errorf("winner balance=%d, want 1465", b.Balance)
	}
	if a.Balance != 1500 {
		t.Errorf("outbid player balance=%d changed", a.Balance)
	}
}

func TestAuctionRoundCapForcesSettlement(t *testing.T) {
	g := newTestGame(t)
	g.Rules.AuctionRoundCap = 2
	always := DecisionFunc(func(_ context.Context, req models.DecisionRequest) (models.Decision, error) {
		// keep raising by the smallest increment for as long as allowed
		if len(req.Options) > 1 {
			return models.Decision{Action: req.Options[1]}, nil
		}
		return models.Decision{Action: models.OptPass}, nil
	})
	g.providers[g.Players[0].Id] = always
	g.providers[g.Players[1].Id] = always

	g.StartAuction(3)
	g.RunAuction(context.Background())

	if g.Auction != nil {
		t.Fatal("auction still open after the round cap")
	}
	owner := g.space(3).Owner
	if owner == "" {
		t.Fatal("capped auction with standing bids must settle on the highest bidder")
	}
	winner := g.playerById(owner)
	if winner.Balance >= 1500 {
		t.Errorf("winner balance=%d, no payment recorded", winner.Balance)
	}
}

func TestPlaceBidValidation(t *testing.T) {
	g := newTestGame(t)
	a, b := g.Players[0], g.Players[1]
	g.StartAuction(3)

	if g.PlaceBid(b.Id, 10) {
		t.Error("bid accepted out of turn")
	}
	if !g.PlaceBid(a.Id, 10) {
		t.Fatal("opening bid rejected")
	}
	if g.PlaceBid(b.Id, 10) {
		t.Error("bid equal to the current high bid accepted")
	}
	b.Balance = 15
	if g.PlaceBid(b.Id, 20) {
		t.Error("bid above the bidder's balance accepted")
	}
	g.EndAuction()
}

func TestPassRemovesParticipant(t *testing.T) {
	g := newTestGame(t, "alice", "bob", "carol")
	g.StartAuction(3)

	g.PassBid(g.Players[0].Id)
	if len(g.Auction.Participants) != 2 {
		t.Fatalf("participants=%d, want 2", len(g.Auction.Participants))
	}
	g.PassBid(g.Players[0].Id) // already out: no-op
	if len(g.Auction.Participants) != 2 {
		t.Error("double pass removed someone else")
	}
	if g.Auction.CurrentBidder() != g.Players[1].Id {
		t.Errorf("current bidder=%q, want bob", g.Auction.CurrentBidder())
	}
	g.EndAuction()
}

func TestBidOptionsRespectBalanceAndCap(t *testing.T) {
	g := newTestGame(t)
	a := g.Players[0]
	baltic := g.space(3) // $60 list, cap $120

	options := g.bidOptions(a, baltic, 0)
	want := []string{models.OptPass, BidToken(10), BidToken(25), BidToken(50), BidToken(100)}
	if len(options) != len(want) {
		t.Fatalf("options=%v", options)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Fatalf("options=%v, want %v", options, want)
		}
	}

	a.Balance = 20
	options = g.bidOptions(a, baltic, 0)
	if len(options) != 2 || options[1] != BidToken(10) {
		t.Errorf("poor bidder options=%v, want pass and bid_10", options)
	}

	// current bid near the 2x cap leaves nothing to raise
	options = g.bidOptions(g.Players[1], baltic, 115)
	if len(options) != 1 || options[0] != models.OptPass {
		t.Errorf("capped options=%v, want pass only", options)
	}
}

func TestStartAuctionRejectsOwnedProperty(t *testing.T) {
	g := newTestGame(t)
	g.space(3).Owner = g.Players[0].Id
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic auctioning an owned property")
		}
	}()
	g.StartAuction(3)
}
