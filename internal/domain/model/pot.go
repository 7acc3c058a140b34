package model

import (
	"strings"
	"time"
)

// PotRecord is a single catalogued flower pot. ID is assigned once at
// creation and is the only key used for lookup and removal.
type PotRecord struct {
	ID        string
	Name      string
	Location  string
	Flowers   []string
	CreatedAt time.Time
}

// NewPotRecord validates the raw form input and builds a record with the
// given id. Name and location are trimmed; flowersRaw is parsed with
// ParseFlowers.
func NewPotRecord(id, name, location, flowersRaw string, createdAt time.Time) (PotRecord, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return PotRecord{}, &ValidationError{Fields: missing}
	}

	return PotRecord{
		ID:        id,
		Name:      name,
		Location:  location,
		Flowers:   ParseFlowers(flowersRaw),
		CreatedAt: createdAt,
	}, nil
}

// ParseFlowers splits a comma-separated list, trims every token and drops
// the empty ones. A blank input yields an empty, non-nil slice.
func ParseFlowers(raw string) []string {
	flowers := []string{}
	if strings.TrimSpace(raw) == "" {
		return flowers
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			flowers = append(flowers, token)
		}
	}
	return flowers
}

// FlowerList joins the flowers for display, e.g. "Rosa, Lírio".
func (p PotRecord) FlowerList() string {
	return strings.Join(p.Flowers, ", ")
}

// Clone returns a copy that does not share the Flowers backing array.
func (p PotRecord) Clone() PotRecord {
	flowers := make([]string, len(p.Flowers))
	copy(flowers, p.Flowers)
	p.Flowers = flowers
	return p
}
