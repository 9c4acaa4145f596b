// Package classify maps free-text message content to the business sector
// it most likely concerns. Pure keyword matching, no external calls.
package classify

import (
	"strings"

	"com.hawanagroup.socialbridge/internal/model"
)

type rule struct {
	sector   model.Sector
	keywords []string
}

// rules is evaluated top to bottom, first match wins. The order is a
// contract: education beats hospitality beats investment when a message
// mixes keywords from several sectors.
var rules = []rule{
	{
		sector: model.SectorEducation,
		keywords: []string{
			"school", "academy", "course", "class", "tuition",
			"admission", "enroll", "student", "exam", "semester",
			"curriculum", "teacher", "lesson",
		},
	},
	{
		sector: model.SectorHospitality,
		keywords: []string{
			"menu", "food", "table", "book", "order", "reservation",
			"reserve", "delivery", "cafe", "restaurant", "eat",
			"catering", "dish", "breakfast", "lunch", "dinner", "drink",
		},
	},
	{
		sector: model.SectorInvestment,
		keywords: []string{
			"invest", "stock", "share", "portfolio", "fund",
			"dividend", "trading", "profit", "broker", "wealth",
			"savings",
		},
	},
}

// Classify is total: it always returns a valid sector, falling back to
// model.DefaultSector when nothing matches (including empty input).
func Classify(text string) model.Sector {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.sector
			}
		}
	}
	return model.DefaultSector
}
