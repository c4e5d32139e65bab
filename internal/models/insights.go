package models

type TagStats struct {
	Tag               string
	Creatures         int
	AvgBaseExperience *float64
	AvgStatTotal      *float64
}

type TagPair struct {
	First     string
	Second    string
	Creatures int
}

type TagInsights struct {
	Total int
	Tags  []TagStats
	Pairs []TagPair
}
