package model

import "time"

type OperatorID string

type OperatorStatus int

const (
	OperatorStatusPending OperatorStatus = iota
	OperatorStatusActive
	OperatorStatusLocked
	OperatorStatusDeleted
)

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Operator struct {
	ID             OperatorID     `db:"ID"`
	CreatedAt      time.Time      `db:"CreatedAt"`
	UpdatedAt      *time.Time     `db:"UpdatedAt"`
	LastLoggedInAt *time.Time     `db:"LastLoggedInAt"`
	LoginAttempts  int            `db:"LoginAttempts"`
	Status         OperatorStatus `db:"Status"`
	Handle         string         `db:"Handle"`
	Email          string         `db:"Email"`
	Password       string         `db:"Password"`
}
