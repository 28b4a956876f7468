package postgres

import (
	"database/sql"

	"rentdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		MessageRepository: NewMessageRepository(db),
	}
}
