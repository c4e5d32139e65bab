package catalog

// Summary is one entry of a catalog page.
type Summary struct {
	Name      string
	DetailRef string
}

type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pagePayload struct {
	Count   int        `json:"count"`
	Next    *string    `json:"next"`
	Results []NamedRef `json:"results"`
}

// RawCreature is the detail record as served by the remote catalog. Every
// nested structure is optional.
type RawCreature struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         *float64         `json:"height"`
	Weight         *float64         `json:"weight"`
	BaseExperience *float64         `json:"base_experience"`
	Sprites        *RawSprites      `json:"sprites"`
	Types          []RawTypeSlot    `json:"types"`
	Abilities      []RawAbilitySlot `json:"abilities"`
	Stats          []RawStatSlot    `json:"stats"`
}

type RawSprites struct {
	FrontDefault *string          `json:"front_default"`
	Other        *RawOtherSprites `json:"other"`
}

type RawOtherSprites struct {
	OfficialArtwork *RawArtwork `json:"official-artwork"`
}

type RawArtwork struct {
	FrontDefault *string `json:"front_default"`
}

type RawTypeSlot struct {
	Slot int       `json:"slot"`
	Type *NamedRef `json:"type"`
}

type RawAbilitySlot struct {
	Ability  *NamedRef `json:"ability"`
	IsHidden bool      `json:"is_hidden"`
	Slot     int       `json:"slot"`
}

type RawStatSlot struct {
	BaseStat int       `json:"base_stat"`
	Effort   int       `json:"effort"`
	Stat     *NamedRef `json:"stat"`
}
