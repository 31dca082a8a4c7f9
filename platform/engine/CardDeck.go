package engine

import (
	"math/rand"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// CardDeck is a cyclically-drawn deck, shuffled once at game start. By
// default an exhausted deck wraps around and re-deals the same order;
// Rules.ReshuffleOnWrap switches to a reshuffle instead.
type CardDeck struct {
	cards     []models.Card
	cursor    int
	rng       *rand.Rand
	reshuffle bool
}

func NewCardDeck(cards []models.Card, rng *rand.Rand, reshuffle bool) *CardDeck {
	deck := &CardDeck{cards: append([]models.Card(nil), cards...), rng: rng, reshuffle: reshuffle}
	deck.shuffle()
	return deck
}

func (d *CardDeck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *CardDeck) Draw() models.Card {
	card := d.cards[d.cursor]
	d.cursor++
	if d.cursor >= len(d.cards) {
		d.cursor = 0
		if d.reshuffle {
			d.shuffle()
		}
	}
	return card
}

// Cursor exposes the draw position for snapshots.
func (d *CardDeck) Cursor() int {
	return d.cursor
}

func (d *CardDeck) Len() int {
	return len(d.cards)
}

// ChanceCards is the chance deck catalog.
func ChanceCards() []models.Card {
	return []models.Card{
		{Text: "Advance to Go", Action: models.CardMoveTo, Dest: 0},
		{Text: "Advance to Illinois Avenue", Action: models.CardMoveTo, Dest: 24},
		{Text: "Advance to St. Charles Place", Action: models.CardMoveTo, Dest: 11},
		{Text: "Advance to the nearest Railroad", Action: models.CardMoveTo, Dest: models.DestNearestRailroad},
		{Text: "Advance to the nearest Utility", Action: models.CardMoveTo, Dest: models.DestNearestUtility},
		{Text: "Bank pays you dividend of $50", Action: models.CardCollectBank, Value: 50},
		{Text: "Get Out of Jail Free", Action: models.CardJailCard},
		{Text: "Go back 3 spaces", Action: models.CardMoveSpaces, Value: -3},
		{Text: "Go directly to Jail", Action: models.CardGoToJail},
		{Text: "Make general repairs on all your property", Action: models.CardRepairs, PerHouse: 25, PerHotel: 100},
		{Text: "Pay poor tax of $15", Action: models.CardPayBank, Value: 15},
		{Text: "Take a trip to Reading Railroad", Action: models.CardMoveTo, Dest: 5},
		{Text: "Take a walk on the Boardwalk", Action: models.CardMoveTo, Dest: 39},
		{Text: "You have been elected Chairman of the Board, pay each player $50", Action: models.CardPayEach, Value: 50},
		{Text: "Your building loan matures, collect $150", Action: models.CardCollectBank, Value: 150},
	}
}

// ChestCards is the community chest deck catalog.
func ChestCards() []models.Card {
	return []models.Card{
		{Text: "Advance to Go", Action: models.CardMoveTo, Dest: 0},
		{Text: "Bank error in your favor, collect $200", Action: models.CardCollectBank, Value: 200},
		{Text: "Doctor's fees, pay $50", Action: models.CardPayBank, Value: 50},
		{Text: "From sale of stock you get $50", Action: models.CardCollectBank, Value: 50},
		{Text: "Get Out of Jail Free", Action: models.CardJailCard},
		{Text: "Go directly to Jail", Action: models.CardGoToJail},
		{Text: "Grand Opera Night, collect $50 from every player", Action: models.CardCollectEach, Value: 50},
		{Text: "Holiday fund matures, collect $100", Action: models.CardCollectBank, Value: 100},
		{Text: "Income tax refund, collect $20", Action: models.CardCollectBank, Value: 20},
		{Text: "It is your birthday, collect $10 from every player", Action: models.CardCollectEach, Value: 10},
		{Text: "Life insurance matures, collect $100", Action: models.CardCollectBank, Value: 100},
		{Text: "Pay hospital fees of $100", Action: models.CardPayBank, Value: 100},
		{Text: "Pay school fees of $50", Action: models.CardPayBank, Value: 50},
		{Text: "Receive $25 consultancy fee", Action: models.CardCollectBank, Value: 25},
		{Text: "You are assessed for street repairs", Action: models.CardRepairs, PerHouse: 40, PerHotel: 115},
		{Text: "You have won second prize in a beauty contest, collect $10", Action: models.CardCollectBank, Value: 10},
		{Text: "You inherit $100", Action: models.CardCollectBank, Value: 100},
	}
}
