package postgres

import "errors"

var (
	errNilPostgresClient = errors.New("postgres client is nil")
	errDuplicateKey      = errors.New("duplicate key")
)
