package catalog_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dexkeeper/internal/models"
	"github.com/kubev2v/dexkeeper/pkg/catalog"
)

var _ = Describe("Normalize", func() {
	decode := func(payload string) catalog.RawCreature {
		var raw catalog.RawCreature
		Expect(json.Unmarshal([]byte(payload), &raw)).To(Succeed())
		return raw
	}

	// Given a complete detail record
	// When we normalize it
	// Then every field should map to the canonical shape
	It("should map a complete record", func() {
		// Act
		c := catalog.Normalize(decode(bulbasaur))

		// Assert
		Expect(c.CatalogID).To(Equal(1))
		Expect(c.Name).To(Equal("bulbasaur"))
		Expect(*c.Height).To(Equal(7.0))
		Expect(*c.BaseExperience).To(Equal(64.0))
		Expect(*c.ImageRef).To(Equal("https://img.example/art/1.png"))
		Expect(c.Tags).To(Equal([]string{"grass", "poison"}))
		Expect(c.Traits).To(Equal([]models.Trait{
			{Name: "overgrow", IsHidden: false},
			{Name: "chlorophyll", IsHidden: true},
		}))
		Expect(c.BaseStats).To(Equal([]models.BaseStat{{Name: "hp", Value: 45}, {Name: "attack", Value: 49}}))
		Expect(c.OwnerRef).To(BeNil())
	})

	It("should fall back to the default sprite", func() {
		c := catalog.Normalize(decode(`{"id": 2, "name": "ivysaur", "sprites": {"front_default": "https://img.example/2.png", "other": {}}}`))

		Expect(*c.ImageRef).To(Equal("https://img.example/2.png"))
	})

	// Given a record without sprites, types, abilities or stats
	// When we normalize it
	// Then arrays should be empty and optional scalars nil
	It("should tolerate missing optional data", func() {
		// Act
		c := catalog.Normalize(decode(`{"id": 3, "name": "venusaur"}`))

		// Assert
		Expect(c.ImageRef).To(BeNil())
		Expect(c.Height).To(BeNil())
		Expect(c.Tags).NotTo(BeNil())
		Expect(c.Tags).To(BeEmpty())
		Expect(c.Traits).To(BeEmpty())
		Expect(c.BaseStats).To(BeEmpty())
	})

	It("should skip nil references and clamp negative stats", func() {
		c := catalog.Normalize(decode(`{
			"id": 4,
			"name": "charmander",
			"types": [{"slot": 1}, {"slot": 2, "type": {"name": " FIRE "}}, {"slot": 3, "type": {"name": "fire"}}],
			"abilities": [{"is_hidden": true}],
			"stats": [{"base_stat": -5, "stat": {"name": "speed"}}, {"base_stat": 10}]
		}`))

		Expect(c.Tags).To(Equal([]string{"fire"}))
		Expect(c.Traits).To(BeEmpty())
		Expect(c.BaseStats).To(Equal([]models.BaseStat{{Name: "speed", Value: 0}}))
	})
})
