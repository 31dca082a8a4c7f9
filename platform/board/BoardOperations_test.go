package board

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
)

func TestLoadPropertiesCatalog(t *testing.T) {
	properties := LoadProperties()
	if len(properties) != Size {
		t.Fatalf("catalog has %d spaces, want %d", len(properties), Size)
	}
	for i, property := range properties {
		if property.Position != i {
			t.Fatalf("index %d holds position %d", i, property.Position)
		}
	}
	if properties[GoPosition].Type != models.SpaceGo {
		t.Errorf("position 0 is %q", properties[GoPosition].Type)
	}
	if properties[JailPosition].Type != models.SpaceJail {
		t.Errorf("position 10 is %q", properties[JailPosition].Type)
	}
	for _, pos := range RailroadPositions {
		if properties[pos].Type != models.SpaceRailroad {
			t.Errorf("position %d is %q, want railroad", pos, properties[pos].Type)
		}
	}
	for _, pos := range UtilityPositions {
		if properties[pos].Type != models.SpaceUtility {
			t.Errorf("position %d is %q, want utility", pos, properties[pos].Type)
		}
	}
}

func TestLoadPropertiesReturnsFreshCopies(t *testing.T) {
	first := LoadProperties()
	first[1].Owner = "someone"
	second := LoadProperties()
	if second[1].Owner != "" {
		t.Fatal("sessions share catalog state")
	}
}

func TestCatalogPricing(t *testing.T) {
	properties := LoadProperties()
	for _, property := range properties {
		switch property.Type {
		case models.SpaceProperty:
			if property.Price <= 0 || len(property.Rent) != 6 {
				t.Errorf("%s: price=%d rent=%v", property.Name, property.Price, property.Rent)
			}
			if property.HouseCost <= 0 || property.Mortgage <= 0 || property.Group == "" {
				t.Errorf("%s: housecost=%d mortgage=%d group=%q", property.Name, property.HouseCost, property.Mortgage, property.Group)
			}
		case models.SpaceRailroad:
			if property.Price != 200 || len(property.Rent) != 4 {
				t.Errorf("%s: price=%d rent=%v", property.Name, property.Price, property.Rent)
			}
		case models.SpaceTax:
			if property.Tax <= 0 {
				t.Errorf("%s: tax=%d", property.Name, property.Tax)
			}
		}
	}
}

func TestGroupPositions(t *testing.T) {
	properties := LoadProperties()
	cases := map[string]int{
		"brown":    2,
		"lightblue": 3,
		"pink":     3,
		"orange":   3,
		"red":      3,
		"yellow":   3,
		"green":    3,
		"darkblue": 2,
	}
	for group, want := range cases {
		if got := GroupPositions(group, properties); len(got) != want {
			t.Errorf("group %s has %d members, want %d", group, len(got), want)
		}
	}
	if got := GroupPositions("", properties); got != nil {
		t.Errorf("empty group matched %v", got)
	}
}

func TestGetByPosBounds(t *testing.T) {
	properties := LoadProperties()
	if _, err := GetByPos(-1, properties); err == nil {
		t.Error("negative position accepted")
	}
	if _, err := GetByPos(Size, properties); err == nil {
		t.Error("out-of-range position accepted")
	}
	property, err := GetByPos(39, properties)
	if err != nil || property.Name != "Boardwalk" {
		t.Errorf("GetByPos(39) = %v, %v", property, err)
	}
}

func TestNearestForward(t *testing.T) {
	cases := []struct {
		pos        int
		candidates []int
		want       int
	}{
		{7, RailroadPositions, 15},
		{22, RailroadPositions, 25},
		{36, RailroadPositions, 5}, // wraps past Go
		{7, UtilityPositions, 12},
		{22, UtilityPositions, 28},
		{36, UtilityPositions, 12},
	}
	for _, c := range cases {
		if got := NearestForward(c.pos, c.candidates); got != c.want {
			t.Errorf("NearestForward(%d, %v) = %d, want %d", c.pos, c.candidates, got, c.want)
		}
	}
}
