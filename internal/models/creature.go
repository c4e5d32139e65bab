package models

import (
	"strings"
	"time"
)

// Trait is a named ability of a creature.
type Trait struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"isHidden"`
}

// BaseStat is a named base statistic of a creature.
type BaseStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Creature is the canonical catalog entry. CatalogID is the natural key,
// ID is the storage surrogate.
type Creature struct {
	ID             int64
	CatalogID      int
	Name           string
	Height         *float64
	Weight         *float64
	BaseExperience *float64
	ImageRef       *string
	Tags           []string
	Traits         []Trait
	BaseStats      []BaseStat
	OwnerRef       *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatTotal returns the sum of all base stats.
func (c Creature) StatTotal() int {
	total := 0
	for _, s := range c.BaseStats {
		total += s.Value
	}
	return total
}

// CreatureSummary is the subset of a creature joined onto roster slots.
type CreatureSummary struct {
	Name     string
	ImageRef *string
	Tags     []string
}

// NormalizeTags trims and lowercases tags, dropping empties and duplicates
// while keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := strings.ToLower(strings.TrimSpace(t))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
