package model

type Sector string

const (
	SectorEducation   Sector = "education"
	SectorHospitality Sector = "hospitality"
	SectorInvestment  Sector = "investment"
)

// DefaultSector is where unclassifiable traffic lands. Callers depend on
// this being a real sector rather than an "unknown" state.
const DefaultSector = SectorHospitality

var sectors = map[Sector]bool{
	SectorEducation:   true,
	SectorHospitality: true,
	SectorInvestment:  true,
}

func ParseSector(value string) (Sector, error) {
	sector := Sector(value)
	if !sectors[sector] {
		return "", ErrorUnknownSector
	}
	return sector, nil
}

type Platform string

const (
	PlatformMessaging Platform = "messaging"
	PlatformSocial    Platform = "social"
	PlatformMedia     Platform = "media"
	PlatformPixel     Platform = "pixel"
)
