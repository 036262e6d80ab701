package chat

import (
	"context"
	"errors"
	"strings"

	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/storage"
)

// ListTopics returns an account's topics, most recently active first.
func (s *service) ListTopics(ctx context.Context, accountID string) ([]storage.Topic, error) {
	if accountID == "" {
		return nil, invalidInput("account id is required")
	}

	topics, err := storage.NewTopicRepo(s.db).ListByAccount(ctx, accountID)
	if err != nil {
		return nil, upstream("failed to list topics", err)
	}
	return topics, nil
}

// GetMessages returns a topic's messages in insertion order, with signed
// download URLs attached for messages that carry a file.
func (s *service) GetMessages(ctx context.Context, accountID, topicID string) ([]TopicMessage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	topic, err := s.ownedTopic(ctx, accountID, topicID)
	if err != nil {
		return nil, err
	}

	messages, err := storage.NewMessageRepo(s.db).ListByTopic(ctx, topicID)
	if err != nil {
		return nil, upstream("failed to list messages", err)
	}

	out := make([]TopicMessage, 0, len(messages))
	for _, msg := range messages {
		tm := TopicMessage{Message: msg}
		if msg.File != nil {
			url, err := s.objects.SignedURL(ctx, objectPath(topic.DocSpaceID, msg.File))
			if err != nil {
				logger.WarnContext(ctx, "failed to sign file url", "file_id", msg.File.ID, "error", err)
			} else {
				tm.FileURL = url
			}
		}
		out = append(out, tm)
	}
	return out, nil
}

// RenameTopic updates a topic's display name.
func (s *service) RenameTopic(ctx context.Context, accountID, topicID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidInput("topic name cannot be empty")
	}

	if _, err := s.ownedTopic(ctx, accountID, topicID); err != nil {
		return err
	}

	if err := storage.NewTopicRepo(s.db).Rename(ctx, topicID, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("topic not found")
		}
		return upstream("failed to rename topic", err)
	}
	return nil
}

// DeleteTopic removes the topic row (messages and file references cascade),
// then cleans up the backing objects and the indexed document space. Cleanup
// failures after the commit are logged, not surfaced; the rows are gone.
func (s *service) DeleteTopic(ctx context.Context, accountID, topicID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return upstream("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	topics := storage.NewTopicRepo(tx)
	topic, err := topics.GetByID(ctx, topicID)
	if errors.Is(err, storage.ErrNotFound) {
		return notFound("topic not found")
	}
	if err != nil {
		return upstream("failed to load topic", err)
	}
	if topic.AccountID != accountID {
		return unauthorized("topic belongs to a different account")
	}

	refs, err := storage.NewMessageRepo(tx).ListFileRefsByTopic(ctx, topicID)
	if err != nil {
		return upstream("failed to list file references", err)
	}

	if err := topics.Delete(ctx, topicID); err != nil {
		return upstream("failed to delete topic", err)
	}
	if err := tx.Commit(); err != nil {
		return upstream("failed to commit topic deletion", err)
	}

	for _, ref := range refs {
		if err := s.objects.DeleteObject(ctx, objectPath(topic.DocSpaceID, &ref)); err != nil {
			logger.WarnContext(ctx, "failed to delete stored object", "file_id", ref.ID, "error", err)
		}
	}
	if err := s.vectors.DeleteByScope(ctx, s.userCollection, topic.DocSpaceID); err != nil {
		logger.WarnContext(ctx, "failed to delete indexed documents", "doc_space_id", topic.DocSpaceID, "error", err)
	}

	logger.InfoContext(ctx, "topic deleted", "topic_id", topicID, "files_removed", len(refs))
	return nil
}

// ownedTopic loads a topic and verifies the requesting account owns it.
func (s *service) ownedTopic(ctx context.Context, accountID, topicID string) (*storage.Topic, error) {
	if accountID == "" {
		return nil, invalidInput("account id is required")
	}
	if topicID == "" {
		return nil, invalidInput("topic id is required")
	}

	topic, err := storage.NewTopicRepo(s.db).GetByID(ctx, topicID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("topic not found")
	}
	if err != nil {
		return nil, upstream("failed to load topic", err)
	}
	if topic.AccountID != accountID {
		return nil, unauthorized("topic belongs to a different account")
	}
	return topic, nil
}
