package engine

import (
	"math/rand"
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func TestDeckWrapsInSameOrder(t *testing.T) {
	deck := NewCardDeck(ChanceCards(), rand.New(rand.NewSource(1)), false)

	first := make([]string, deck.Len())
	for i := range first {
		first[i] = deck.Draw().Text
	}
	if deck.Cursor() != 0 {
		t.Fatalf("cursor=%d after a full pass", deck.Cursor())
	}
	for i := range first {
		if got := deck.Draw().Text; got != first[i] {
			t.Fatalf("draw %d after wrap: %q, want %q", i, got, first[i])
		}
	}
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	d1 := NewCardDeck(ChestCards(), rand.New(rand.NewSource(9)), false)
	d2 := NewCardDeck(ChestCards(), rand.New(rand.NewSource(9)), false)
	for i := 0; i < d1.Len(); i++ {
		if d1.Draw().Text != d2.Draw().Text {
			t.Fatal("equal seeds produced different deck orders")
		}
	}
}

func TestDeckReshuffleKeepsCatalog(t *testing.T) {
	deck := NewCardDeck(ChanceCards(), rand.New(rand.NewSource(3)), true)
	counts := make(map[string]int)
	passes := 3
	for i := 0; i < passes*deck.Len(); i++ {
		counts[deck.Draw().Text]++
	}
	for text, n := range counts {
		if n != passes {
			t.Errorf("%q drawn %d times over %d passes", text, n, passes)
		}
	}
}

func TestDeckCatalogs(t *testing.T) {
	chance, chest := ChanceCards(), ChestCards()
	if len(chance) != 15 {
		t.Errorf("chance deck has %d cards", len(chance))
	}
	if len(chest) != 17 {
		t.Errorf("chest deck has %d cards", len(chest))
	}
	for _, deck := range [][]models.Card{chance, chest} {
		jailCards := 0
		for _, card := range deck {
			if card.Action == models.CardJailCard {
				jailCards++
			}
			if card.Action == models.CardRepairs && (card.PerHouse == 0 || card.PerHotel == 0) {
				t.Errorf("repairs card %q missing rates", card.Text)
			}
		}
		if jailCards != 1 {
			t.Errorf("deck carries %d Get Out of Jail Free cards", jailCards)
		}
	}
}
