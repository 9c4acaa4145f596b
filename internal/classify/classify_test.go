package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"com.hawanagroup.socialbridge/internal/model"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	t.Run("education keywords win", func(t *testing.T) {
		assert.Equal(model.SectorEducation, Classify("what courses do you offer"))
		assert.Equal(model.SectorEducation, Classify("ADMISSION requirements please"))
		assert.Equal(model.SectorEducation, Classify("is my student enrolled"))
	})

	t.Run("hospitality keywords", func(t *testing.T) {
		assert.Equal(model.SectorHospitality, Classify("show me the menu"))
		assert.Equal(model.SectorHospitality, Classify("do you do delivery"))
	})

	t.Run("investment keywords", func(t *testing.T) {
		assert.Equal(model.SectorInvestment, Classify("I want to invest"))
		assert.Equal(model.SectorInvestment, Classify("how is my portfolio doing"))
	})

	t.Run("education outranks hospitality", func(t *testing.T) {
		// "catering" is a hospitality keyword, "school" an education one.
		assert.Equal(model.SectorEducation, Classify("I need catering for my school"))
	})

	t.Run("hospitality outranks investment", func(t *testing.T) {
		assert.Equal(model.SectorHospitality, Classify("is ordering food a good investment"))
	})

	t.Run("no match falls back", func(t *testing.T) {
		assert.Equal(model.DefaultSector, Classify("hello there"))
		assert.Equal(model.DefaultSector, Classify("xyzzy"))
	})

	t.Run("empty input falls back", func(t *testing.T) {
		assert.Equal(model.DefaultSector, Classify(""))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(model.SectorHospitality, Classify("BOOK A TABLE"))
	})
}
