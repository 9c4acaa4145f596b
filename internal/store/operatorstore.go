package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"com.hawanagroup.socialbridge/internal/model"
)

// OperatorStore holds the operator accounts that may use the send façade.
type OperatorStore struct {
	db *sqlx.DB
}

func NewOperatorStore(config Config) (*OperatorStore, error) {
	dsn := "file:operators.db?mode=memory&cache=shared"
	if dir := config.DataDirectory(); dir != "" {
		dsn = "file:" + path.Join(dir, "operators.db")
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &OperatorStore{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return store, nil
}

func (s *OperatorStore) Close() error {
	return s.db.Close()
}

func (s *OperatorStore) createTables() error {
	_, err := s.db.Exec(`create table if not exists operator(
		ID             text not null primary key,
		CreatedAt      DATETIME not null,
		UpdatedAt      DATETIME null,
		LastLoggedInAt DATETIME null,
		LoginAttempts  tinyint not null default 0,
		Status         tinyint not null default 0,
		Handle         text not null,
		Email          text not null unique,
		Password       text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating operator table: %w", err)
	}
	return nil
}

func (s *OperatorStore) Create(operator *model.Operator) error {
	res, err := s.db.NamedExec(`insert into operator
		(ID, CreatedAt, Status, Handle, Email, Password)
		values(:ID, :CreatedAt, :Status, :Handle, :Email, :Password)`, operator)
	if err != nil {
		return fmt.Errorf("inserting operator: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *OperatorStore) FetchByEmail(email string) (*model.Operator, error) {
	operator := &model.Operator{}
	err := s.db.Get(operator, `select * from operator where Email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorOperatorNotFound
		}
		return nil, fmt.Errorf("fetching operator: %w", err)
	}
	return operator, nil
}
