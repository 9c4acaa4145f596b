package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"com.hawanagroup.socialbridge/internal/model"
)

type memoryConfig struct{}

func (memoryConfig) DataDirectory() string { return "" }

func TestInteractionStore(t *testing.T) {
	assert := assert.New(t)

	store, err := NewInteractionStore(memoryConfig{})
	assert.Nil(err)
	defer store.Close()

	now := time.Now().UTC()

	t.Run("Record", func(t *testing.T) {
		record := &model.InteractionRecord{
			SenderID:  "15550000001",
			Sector:    model.SectorHospitality,
			Direction: model.DirectionInbound,
			Body:      "can I book a table",
			Timestamp: now,
		}
		err := store.Record(record)
		assert.Nil(err)
		assert.NotEmpty(record.ID)
	})

	t.Run("RecentBySender", func(t *testing.T) {
		err := store.Record(&model.InteractionRecord{
			SenderID:  "15550000001",
			Sector:    model.SectorHospitality,
			Direction: model.DirectionOutbound,
			Body:      "Hawana Cafe Reservation",
			Timestamp: now.Add(time.Second),
		})
		assert.Nil(err)

		records, err := store.RecentBySender("15550000001", 10)
		assert.Nil(err)
		assert.Len(records, 2)
		assert.Equal(model.DirectionOutbound, records[0].Direction)
	})

	t.Run("CountBySector", func(t *testing.T) {
		count, err := store.CountBySector(model.SectorHospitality)
		assert.Nil(err)
		assert.Equal(2, count)

		count, err = store.CountBySector(model.SectorInvestment)
		assert.Nil(err)
		assert.Equal(0, count)
	})

	t.Run("unknown sender yields empty slice", func(t *testing.T) {
		records, err := store.RecentBySender("nobody", 10)
		assert.Nil(err)
		assert.Empty(records)
	})
}

func TestOperatorStore(t *testing.T) {
	assert := assert.New(t)

	store, err := NewOperatorStore(memoryConfig{})
	assert.Nil(err)
	defer store.Close()

	operator := &model.Operator{
		ID:        model.OperatorID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Status:    model.OperatorStatusActive,
		Handle:    "admin",
		Email:     "ops@hawanagroup.example",
		Password:  "not-a-real-hash",
	}

	t.Run("Create", func(t *testing.T) {
		assert.Nil(store.Create(operator))
	})

	t.Run("FetchByEmail", func(t *testing.T) {
		fetched, err := store.FetchByEmail(operator.Email)
		assert.Nil(err)
		assert.Equal(operator.ID, fetched.ID)
		assert.Equal(operator.Handle, fetched.Handle)
	})

	t.Run("missing operator", func(t *testing.T) {
		_, err := store.FetchByEmail("nobody@hawanagroup.example")
		assert.ErrorIs(err, model.ErrorOperatorNotFound)
	})
}
