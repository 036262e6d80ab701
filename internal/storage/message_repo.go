package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MessageRepo provides methods for message and file-reference operations.
type MessageRepo struct {
	db DBTX
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db DBTX) *MessageRepo {
	return &MessageRepo{db: db}
}

// Insert appends a message to its topic. When msg.File is set, the file
// reference row is inserted in the same call.
func (r *MessageRepo) Insert(ctx context.Context, msg *Message) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, topic_id, role, content) VALUES (?, ?, ?, ?)`,
		msg.ID, msg.TopicID, msg.Role, msg.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	if msg.File != nil {
		msg.File.MessageID = msg.ID
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO files (id, message_id, name, kind, code) VALUES (?, ?, ?, ?, ?)`,
			msg.File.ID, msg.File.MessageID, msg.File.Name, msg.File.Kind, msg.File.Code,
		)
		if err != nil {
			return fmt.Errorf("failed to insert file reference: %w", err)
		}
	}

	return nil
}

// CountByTopic returns the number of messages in a topic.
func (r *MessageRepo) CountByTopic(ctx context.Context, topicID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE topic_id = ?`, topicID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// CountFilesByAccount returns the number of file-bearing messages across all
// of an account's topics.
func (r *MessageRepo) CountFilesByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM files f
		 JOIN messages m ON m.id = f.message_id
		 JOIN topics t ON t.id = m.topic_id
		 WHERE t.account_id = ?`,
		accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return count, nil
}

// ListByTopic returns a topic's messages in insertion order, with file
// references attached where present.
func (r *MessageRepo) ListByTopic(ctx context.Context, topicID string) ([]Message, error) {
	return r.listByTopic(ctx, topicID, "ASC", 0)
}

// ListRecentByTopic returns up to limit messages, most recent first. The
// retrieval pipeline uses this as disambiguating context for reformulation.
func (r *MessageRepo) ListRecentByTopic(ctx context.Context, topicID string, limit int) ([]Message, error) {
	return r.listByTopic(ctx, topicID, "DESC", limit)
}

func (r *MessageRepo) listByTopic(ctx context.Context, topicID, order string, limit int) ([]Message, error) {
	query := fmt.Sprintf(
		`SELECT m.id, m.topic_id, m.role, m.content, m.created_at,
		        f.id, f.name, f.kind, f.code
		 FROM messages m
		 LEFT JOIN files f ON f.message_id = m.id
		 WHERE m.topic_id = ?
		 ORDER BY m.created_at %s, m.rowid %s`, order, order)

	args := []any{topicID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var messages []Message
	for rows.Next() {
		var msg Message
		var createdAt string
		var fileID, fileName, fileKind, fileCode sql.NullString

		if err := rows.Scan(&msg.ID, &msg.TopicID, &msg.Role, &msg.Content, &createdAt,
			&fileID, &fileName, &fileKind, &fileCode); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if msg.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		if fileID.Valid {
			msg.File = &FileRef{
				ID:        fileID.String,
				MessageID: msg.ID,
				Name:      fileName.String,
				Kind:      fileKind.String,
				Code:      fileCode.String,
			}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// ListFileRefsByTopic returns all file references in a topic. Topic deletion
// uses this to remove the backing objects from storage.
func (r *MessageRepo) ListFileRefsByTopic(ctx context.Context, topicID string) ([]FileRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT f.id, f.message_id, f.name, f.kind, f.code
		 FROM files f
		 JOIN messages m ON m.id = f.message_id
		 WHERE m.topic_id = ?`,
		topicID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list file references: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var refs []FileRef
	for rows.Next() {
		var ref FileRef
		if err := rows.Scan(&ref.ID, &ref.MessageID, &ref.Name, &ref.Kind, &ref.Code); err != nil {
			return nil, fmt.Errorf("failed to scan file reference: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file references: %w", err)
	}

	return refs, nil
}
