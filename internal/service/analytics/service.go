// Package analytics provides the per-sector metrics snapshot behind a
// Provider interface. The only implementation here is a sample-data
// generator; a real analytics backend would replace it without touching
// anything else.
package analytics

import (
	"math/rand"
	"time"

	"com.hawanagroup.socialbridge/internal/model"
)

type Provider interface {
	Snapshot(sector model.Sector) *model.AnalyticsSnapshot
}

type sampleProvider struct {
	now func() time.Time
}

func NewSampleProvider() *sampleProvider {
	return &sampleProvider{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot fabricates plausible numbers. Do not build anything on these
// values; they exist so the dashboard endpoints have a shape to return.
func (p *sampleProvider) Snapshot(sector model.Sector) *model.AnalyticsSnapshot {
	followers := 1200 + rand.Intn(9000)
	impressions := followers * (3 + rand.Intn(9))
	return &model.AnalyticsSnapshot{
		Sector:      sector,
		Followers:   followers,
		Impressions: impressions,
		Engagements: impressions / (4 + rand.Intn(16)),
		Messages:    20 + rand.Intn(400),
		GeneratedAt: p.now(),
	}
}
