package engine

import (
	"math/rand"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Roller produces dice rolls for a session.
type Roller interface {
	Roll() models.DiceRoll
}

// Dice is the seedable two-die source. All randomness in a session flows
// through the one *rand.Rand passed in, so a fixed seed replays exactly.
type Dice struct {
	rng *rand.Rand
}

func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

func (d *Dice) Roll() models.DiceRoll {
	die1 := d.rng.Intn(6) + 1
	die2 := d.rng.Intn(6) + 1
	return models.DiceRoll{Die1: die1, Die2: die2, Doubles: die1 == die2}
}
