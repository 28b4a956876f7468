package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

const timestampLayout = "2006-01-02 15:04:05"

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	logger.EnterMethod("messageRepository.Create", "userID", msg.UserID, "sender", msg.Sender)

	query := `INSERT INTO messages (user_id, sender, content)
	          VALUES ($1, $2, $3) RETURNING id, timestamp`
	logger.DatabaseCall("INSERT", "messages", "userID", msg.UserID)

	var created time.Time
	err := r.db.QueryRowContext(ctx, query, msg.UserID, msg.Sender, msg.Content).Scan(&msg.ID, &created)
	logger.DatabaseResult("INSERT", 1, err, "messageID", msg.ID)

	if err != nil {
		logger.ExitMethodWithError("messageRepository.Create", err, "userID", msg.UserID)
		return err
	}
	msg.Timestamp = created.Format(timestampLayout)
	logger.ExitMethod("messageRepository.Create", "messageID", msg.ID)
	return nil
}

func (r *messageRepository) ListByUser(ctx context.Context, userID string, limit, offset int32) ([]domain.Message, error) {
	query := `SELECT id, user_id, sender, content, timestamp
	          FROM messages WHERE user_id = $1 ORDER BY timestamp ASC, id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		var created time.Time
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.Content, &created); err != nil {
			return nil, err
		}
		m.Timestamp = created.Format(timestampLayout)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
