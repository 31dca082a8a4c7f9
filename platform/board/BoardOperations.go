package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"sort"

	"github.com/DedS3t/monopoly-engine/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

// Size is the number of spaces on the board.
const Size = 40

// Positions with fixed meaning.
const (
	GoPosition   = 0
	JailPosition = 10
)

// RailroadPositions and UtilityPositions are fixed by the catalog.
var (
	RailroadPositions = []int{5, 15, 25, 35}
	UtilityPositions  = []int{12, 28}
)

// LoadProperties returns a fresh mutable copy of the full board catalog,
// ordered by position. Each game session gets its own copy.
func LoadProperties() []*models.Property {
	var properties []*models.Property
	if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
		panic(err)
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].Position < properties[j].Position
	})
	if len(properties) != Size {
		panic("board catalog must contain exactly 40 spaces")
	}
	return properties
}

func GetByPos(pos int, properties []*models.Property) (*models.Property, error) {
	if pos < 0 || pos >= len(properties) {
		return nil, errors.New("position out of range")
	}
	return properties[pos], nil
}

// GroupPositions returns the board positions belonging to a color group.
func GroupPositions(group string, properties []*models.Property) []int {
	var positions []int
	for _, property := range properties {
		if property.Group == group && property.Group != "" {
			positions = append(positions, property.Position)
		}
	}
	return positions
}

// NearestForward finds the first of candidates reached moving forward from
// pos, wrapping around the board.
func NearestForward(pos int, candidates []int) int {
	for _, c := range candidates {
		if c > pos {
			return c
		}
	}
	return candidates[0]
}
