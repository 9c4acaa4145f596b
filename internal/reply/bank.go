// Package reply holds the canned auto-response copy for each business
// sector and picks the right block for an inbound message.
package reply

import (
	"strings"

	"com.hawanagroup.socialbridge/internal/model"
)

type Intent string

const (
	IntentMenu    Intent = "menu"
	IntentOrder   Intent = "order"
	IntentHours   Intent = "hours"
	IntentDefault Intent = "default"
)

type intentRule struct {
	intent   Intent
	keywords []string
	body     string
}

// Bank is built once at boot and never mutated afterwards, so it is safe
// for any number of concurrent readers.
type Bank struct {
	rules    map[model.Sector][]intentRule
	defaults map[model.Sector]string
}

func NewBank() *Bank {
	return &Bank{
		rules: map[model.Sector][]intentRule{
			model.SectorHospitality: {
				{
					intent:   IntentMenu,
					keywords: []string{"menu", "food", "eat", "dish", "drink", "breakfast", "lunch", "dinner"},
					body:     hospitalityMenu,
				},
				{
					intent:   IntentOrder,
					keywords: []string{"book", "reservation", "reserve", "table", "order", "catering"},
					body:     hospitalityReservation,
				},
				{
					intent:   IntentHours,
					keywords: []string{"delivery", "deliver", "hours", "open", "time", "when"},
					body:     hospitalityHours,
				},
			},
			model.SectorEducation: {
				{
					intent:   IntentMenu,
					keywords: []string{"course", "program", "curriculum", "subject", "class"},
					body:     educationCourses,
				},
				{
					intent:   IntentOrder,
					keywords: []string{"enroll", "admission", "register", "apply", "join"},
					body:     educationEnrolment,
				},
				{
					intent:   IntentHours,
					keywords: []string{"schedule", "hours", "time", "when", "semester", "term"},
					body:     educationSchedule,
				},
			},
			model.SectorInvestment: {
				{
					intent:   IntentMenu,
					keywords: []string{"plan", "product", "portfolio", "option", "fund"},
					body:     investmentPlans,
				},
				{
					intent:   IntentOrder,
					keywords: []string{"invest", "account", "open", "start", "deposit"},
					body:     investmentOnboarding,
				},
				{
					intent:   IntentHours,
					keywords: []string{"hours", "time", "when", "contact", "call"},
					body:     investmentContact,
				},
			},
		},
		defaults: map[model.Sector]string{
			model.SectorHospitality: hospitalityWelcome,
			model.SectorEducation:   educationWelcome,
			model.SectorInvestment:  investmentWelcome,
		},
	}
}

// Render picks the reply body for a message already classified into a
// sector. Deterministic over static data and never empty: every sector
// carries a default welcome block.
func (b *Bank) Render(sector model.Sector, text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range b.rules[sector] {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.body
			}
		}
	}
	if body, ok := b.defaults[sector]; ok {
		return body
	}
	return b.defaults[model.DefaultSector]
}
