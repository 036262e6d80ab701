package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// TopicRepo provides methods for topic operations. It runs against whichever
// DBTX it was constructed with, so the same repo code serves both plain reads
// and the conversation writer's transaction.
type TopicRepo struct {
	db DBTX
}

// NewTopicRepo creates a new TopicRepo.
func NewTopicRepo(db DBTX) *TopicRepo {
	return &TopicRepo{db: db}
}

// Create inserts a new topic.
func (r *TopicRepo) Create(ctx context.Context, topic *Topic) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO topics (id, account_id, name, doc_space_id) VALUES (?, ?, ?, ?)`,
		topic.ID, topic.AccountID, topic.Name, topic.DocSpaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert topic: %w", err)
	}
	return nil
}

// GetByID gets a topic by its id. Returns ErrNotFound if absent.
func (r *TopicRepo) GetByID(ctx context.Context, id string) (*Topic, error) {
	var topic Topic
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, doc_space_id, created_at, updated_at FROM topics WHERE id = ?`,
		id,
	).Scan(&topic.ID, &topic.AccountID, &topic.Name, &topic.DocSpaceID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query topic: %w", err)
	}

	if topic.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if topic.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &topic, nil
}

// CountByAccount returns the number of topics owned by an account.
func (r *TopicRepo) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM topics WHERE account_id = ?`, accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	return count, nil
}

// ListByAccount returns an account's topics, most recently updated first.
func (r *TopicRepo) ListByAccount(ctx context.Context, accountID string) ([]Topic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, name, doc_space_id, created_at, updated_at
		 FROM topics WHERE account_id = ? ORDER BY updated_at DESC, rowid DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var topics []Topic
	for rows.Next() {
		var topic Topic
		var createdAt, updatedAt string
		if err := rows.Scan(&topic.ID, &topic.AccountID, &topic.Name, &topic.DocSpaceID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		if topic.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		if topic.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}

	return topics, nil
}

// Rename updates a topic's display name. Returns ErrNotFound if the topic
// does not exist.
func (r *TopicRepo) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE topics SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return fmt.Errorf("failed to rename topic: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rename result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Touch bumps a topic's updated_at so listings order by recent activity.
func (r *TopicRepo) Touch(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE topics SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to touch topic: %w", err)
	}
	return nil
}

// Delete removes a topic; messages and file references cascade.
func (r *TopicRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM topics WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
