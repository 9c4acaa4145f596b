package store

import (
	"fmt"
	"path"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"com.hawanagroup.socialbridge/internal/model"
)

type Config interface {
	DataDirectory() string
}

// InteractionStore keeps the audit trail of inbound and outbound
// messages. With no data directory configured it runs on an in-memory
// database, which is what the tests use.
type InteractionStore struct {
	db *sqlx.DB
}

func NewInteractionStore(config Config) (*InteractionStore, error) {
	dsn := "file:interactions.db?mode=memory&cache=shared"
	if dir := config.DataDirectory(); dir != "" {
		dsn = "file:" + path.Join(dir, "interactions.db")
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &InteractionStore{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return store, nil
}

func (s *InteractionStore) Close() error {
	return s.db.Close()
}

func (s *InteractionStore) createTables() error {
	_, err := s.db.Exec(`create table if not exists interaction(
		ID        text not null primary key,
		SenderID  text not null,
		Sector    text not null,
		Direction tinyint not null default 0,
		Body      text not null,
		Timestamp DATETIME not null
	)`)
	if err != nil {
		return fmt.Errorf("creating interaction table: %w", err)
	}
	return nil
}

func (s *InteractionStore) Record(record *model.InteractionRecord) error {
	if record.ID == "" {
		record.ID = model.CreateID()
	}

	res, err := s.db.NamedExec(`insert into interaction
		(ID, SenderID, Sector, Direction, Body, Timestamp)
		values(:ID, :SenderID, :Sector, :Direction, :Body, :Timestamp)`, record)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *InteractionStore) RecentBySender(senderID string, limit int) ([]model.InteractionRecord, error) {
	records := []model.InteractionRecord{}
	err := s.db.Select(&records,
		`select * from interaction where SenderID = ? order by Timestamp desc limit ?`,
		senderID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching interactions: %w", err)
	}
	return records, nil
}

func (s *InteractionStore) CountBySector(sector model.Sector) (int, error) {
	var count int
	err := s.db.Get(&count, `select count(*) from interaction where Sector = ?`, sector)
	if err != nil {
		return 0, fmt.Errorf("counting interactions: %w", err)
	}
	return count, nil
}
