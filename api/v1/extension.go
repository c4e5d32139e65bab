package v1

import (
	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/internal/services"
)

// Envelope wraps every successful response body.
type Envelope[T any] struct {
	Data T `json:"data"`
}

func NewCreatureFromModel(c models.Creature) Creature {
	out := Creature{
		Id:             c.ID,
		CatalogId:      c.CatalogID,
		Name:           c.Name,
		Height:         c.Height,
		Weight:         c.Weight,
		BaseExperience: c.BaseExperience,
		ImageRef:       c.ImageRef,
		Tags:           nonNil(c.Tags),
		Traits:         make([]Trait, 0, len(c.Traits)),
		BaseStats:      make([]BaseStat, 0, len(c.BaseStats)),
		StatTotal:      c.StatTotal(),
		OwnerRef:       c.OwnerRef,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, t := range c.Traits {
		out.Traits = append(out.Traits, Trait{Name: t.Name, IsHidden: t.IsHidden})
	}
	for _, s := range c.BaseStats {
		out.BaseStats = append(out.BaseStats, BaseStat{Name: s.Name, Value: s.Value})
	}
	return out
}

func NewCreatureListFromModel(creatures []models.Creature, total int, limit, offset int) CreatureList {
	list := CreatureList{
		Creatures: make([]Creature, 0, len(creatures)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for _, c := range creatures {
		list.Creatures = append(list.Creatures, NewCreatureFromModel(c))
	}
	return list
}

func NewCreaturesFromModel(creatures []models.Creature) []Creature {
	out := make([]Creature, 0, len(creatures))
	for _, c := range creatures {
		out = append(out, NewCreatureFromModel(c))
	}
	return out
}

func NewTrainerFromModel(t models.Trainer) Trainer {
	return Trainer{
		Id:          t.ID,
		Name:        t.Name,
		Hometown:    t.Hometown,
		BadgeCount:  t.BadgeCount,
		Bio:         t.Bio,
		PortraitRef: t.PortraitRef,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTrainersFromModel(trainers []models.Trainer) []Trainer {
	out := make([]Trainer, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, NewTrainerFromModel(t))
	}
	return out
}

func NewTagFromModel(t models.Tag) Tag {
	return Tag{
		Id:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTagsFromModel(tags []models.Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, NewTagFromModel(t))
	}
	return out
}

func NewRosterSlotFromModel(s models.RosterSlot) RosterSlot {
	out := RosterSlot{
		Id:        s.ID,
		CatalogId: s.CatalogID,
		Nickname:  s.Nickname,
		Role:      s.Role,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Creature != nil {
		out.Creature = &RosterCreature{
			Name:     s.Creature.Name,
			ImageRef: s.Creature.ImageRef,
			Tags:     nonNil(s.Creature.Tags),
		}
	}
	return out
}

func NewRosterFromModel(slots []models.RosterSlot) []RosterSlot {
	out := make([]RosterSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewRosterSlotFromModel(s))
	}
	return out
}

func NewTagInsightsFromModel(in models.TagInsights) TagInsights {
	out := TagInsights{
		Total: in.Total,
		Tags:  make([]TagStats, 0, len(in.Tags)),
		Pairs: make([]TagPair, 0, len(in.Pairs)),
	}
	for _, t := range in.Tags {
		out.Tags = append(out.Tags, TagStats{
			Tag:               t.Tag,
			Creatures:         t.Creatures,
			AvgBaseExperience: t.AvgBaseExperience,
			AvgStatTotal:      t.AvgStatTotal,
		})
	}
	for _, p := range in.Pairs {
		out.Pairs = append(out.Pairs, TagPair{First: p.First, Second: p.Second, Creatures: p.Creatures})
	}
	return out
}

func NewSeedReportFromModel(r models.SeedReport) SeedReport {
	return SeedReport{
		RunId:      r.RunID,
		Tags:       r.Tags,
		Trainers:   r.Trainers,
		Creatures:  r.Creatures,
		Attempts:   r.Attempts,
		DurationMs: r.Duration.Milliseconds(),
	}
}

func NewImportJobFromModel(j models.ImportJob) ImportJob {
	var state ImportJobState
	switch j.State {
	case models.ImportJobStateRunning:
		state = ImportJobStateRunning
	case models.ImportJobStateCompleted:
		state = ImportJobStateCompleted
	case models.ImportJobStateError:
		state = ImportJobStateError
	default:
		state = ImportJobStateIdle
	}

	out := ImportJob{
		State:      state,
		StartedAt:  j.StartedAt,
		FinishedAt: j.FinishedAt,
	}
	if j.Report != nil {
		report := NewSeedReportFromModel(*j.Report)
		out.Report = &report
	}
	if j.Error != nil {
		msg := j.Error.Error()
		out.Error = &msg
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ToService converts the request body into the service input. Validation is
// left to the service.
func (in CreatureInput) ToService() services.CreatureInput {
	return services.CreatureInput{
		CatalogID:      in.CatalogId,
		Name:           in.Name,
		Height:         in.Height,
		Weight:         in.Weight,
		BaseExperience: in.BaseExperience,
		ImageRef:       in.ImageRef,
		Tags:           in.Tags,
		Traits:         traitInputs(in.Traits),
		BaseStats:      baseStatInputs(in.BaseStats),
		OwnerRef:       in.OwnerRef,
	}
}

// ToService keeps absent fields nil so the service leaves them unchanged.
func (p CreaturePatch) ToService() services.CreaturePatch {
	out := services.CreaturePatch{
		Name:           p.Name,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		ImageRef:       p.ImageRef,
		Traits:         traitInputs(p.Traits),
		BaseStats:      baseStatInputs(p.BaseStats),
		OwnerRef:       p.OwnerRef,
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, *p.Tags...)
	}
	return out
}

func (in TrainerInput) ToService() services.TrainerInput {
	return services.TrainerInput{
		Name:        in.Name,
		Hometown:    in.Hometown,
		BadgeCount:  in.BadgeCount,
		Bio:         in.Bio,
		PortraitRef: in.PortraitRef,
	}
}

func (in TagInput) ToService() services.TagInput {
	return services.TagInput{
		Name:        in.Name,
		Color:       in.Color,
		Description: in.Description,
	}
}

func (in RosterSlotInput) ToService() services.RosterSlotInput {
	return services.RosterSlotInput{
		CatalogID: in.CatalogId,
		Nickname:  in.Nickname,
		Role:      in.Role,
		Notes:     in.Notes,
	}
}

func traitInputs(traits *[]Trait) []services.TraitInput {
	if traits == nil {
		return nil
	}
	out := make([]services.TraitInput, 0, len(*traits))
	for _, t := range *traits {
		out = append(out, services.TraitInput{Name: t.Name, IsHidden: t.IsHidden})
	}
	return out
}

func baseStatInputs(stats *[]BaseStat) []services.BaseStatInput {
	if stats == nil {
		return nil
	}
	out := make([]services.BaseStatInput, 0, len(*stats))
	for _, s := range *stats {
		out = append(out, services.BaseStatInput{Name: s.Name, Value: s.Value})
	}
	return out
}
