package engine

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func TestParseActionTokens(t *testing.T) {
	cases := []struct {
		token string
		kind  ActionKind
	}{
		{models.OptRoll, ActRoll},
		{models.OptPay, ActPay},
		{models.OptUseCard, ActUseCard},
		{models.OptBuy, ActBuy},
		{models.OptAuction, ActAuction},
		{models.OptPass, ActPass},
		{models.OptSkip, ActSkip},
	}
	for _, c := range cases {
		action, err := ParseAction(c.token)
		if err != nil || action.Kind != c.kind {
			t.Errorf("ParseAction(%q) = %v, %v", c.token, action, err)
		}
	}
}

func TestParseActionParameterized(t *testing.T) {
	action, err := ParseAction("bid_125")
	if err != nil || action.Kind != ActBid || action.Amount != 125 {
		t.Errorf("bid token: %+v, %v", action, err)
	}
	action, err = ParseAction("build_39")
	if err != nil || action.Kind != ActBuild || action.Pos != 39 {
		t.Errorf("build token: %+v, %v", action, err)
	}
}

func TestParseActionRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "purchase", "bid_", "bid_-5", "bid_abc", "build_x", "BID_10"} {
		if _, err := ParseAction(token); err == nil {
			t.Errorf("ParseAction(%q) accepted", token)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	action, err := ParseAction(BidToken(400))
	if err != nil || action.Amount != 400 {
		t.Errorf("bid round trip: %+v, %v", action, err)
	}
	action, err = ParseAction(BuildToken(11))
	if err != nil || action.Pos != 11 {
		t.Errorf("build round trip: %+v, %v", action, err)
	}
}
