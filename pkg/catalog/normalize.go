package catalog

import (
	"strings"

	"github.com/kubev2v/dexkeeper/internal/models"
)

// Normalize maps a remote record to the canonical creature shape. It never
// fails: missing arrays become empty and missing scalars stay nil.
func Normalize(raw RawCreature) models.Creature {
	c := models.Creature{
		CatalogID:      raw.ID,
		Name:           strings.TrimSpace(raw.Name),
		Height:         nonNegative(raw.Height),
		Weight:         nonNegative(raw.Weight),
		BaseExperience: nonNegative(raw.BaseExperience),
		ImageRef:       pickImage(raw.Sprites),
		Tags:           []string{},
		Traits:         []models.Trait{},
		BaseStats:      []models.BaseStat{},
	}

	tags := make([]string, 0, len(raw.Types))
	for _, t := range raw.Types {
		if t.Type == nil {
			continue
		}
		tags = append(tags, t.Type.Name)
	}
	c.Tags = models.NormalizeTags(tags)

	for _, a := range raw.Abilities {
		if a.Ability == nil || strings.TrimSpace(a.Ability.Name) == "" {
			continue
		}
		c.Traits = append(c.Traits, models.Trait{
			Name:     strings.ToLower(strings.TrimSpace(a.Ability.Name)),
			IsHidden: a.IsHidden,
		})
	}

	for _, s := range raw.Stats {
		if s.Stat == nil || strings.TrimSpace(s.Stat.Name) == "" {
			continue
		}
		c.BaseStats = append(c.BaseStats, models.BaseStat{
			Name:  strings.ToLower(strings.TrimSpace(s.Stat.Name)),
			Value: max(s.BaseStat, 0),
		})
	}

	return c
}

// pickImage prefers the high resolution artwork over the default sprite.
func pickImage(sprites *RawSprites) *string {
	if sprites == nil {
		return nil
	}
	if other := sprites.Other; other != nil && other.OfficialArtwork != nil {
		if ref := nonEmpty(other.OfficialArtwork.FrontDefault); ref != nil {
			return ref
		}
	}
	return nonEmpty(sprites.FrontDefault)
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func nonNegative(f *float64) *float64 {
	if f == nil || *f < 0 {
		return nil
	}
	v := *f
	return &v
}
