package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func insertTestMessage(t *testing.T, repo *MessageRepo, topicID string, role Role, content string, file *FileRef) *Message {
	t.Helper()
	msg := &Message{
		ID:      uuid.New().String(),
		TopicID: topicID,
		Role:    role,
		Content: content,
		File:    file,
	}
	if err := repo.Insert(context.Background(), msg); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return msg
}

func TestMessageRepo_InsertAndList(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	topic := newTestTopic("acct-1")
	if err := topicRepo.Create(ctx, topic); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	insertTestMessage(t, repo, topic.ID, RoleUser, "what is photosynthesis?", nil)
	insertTestMessage(t, repo, topic.ID, RoleAssistant, "Photosynthesis is...", nil)
	insertTestMessage(t, repo, topic.ID, RoleUser, "and respiration?", &FileRef{
		ID:   uuid.New().String(),
		Name: "bio-notes.md",
		Kind: "md",
		Code: uuid.New().String(),
	})

	messages, err := repo.ListByTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("ListByTopic() error = %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("ListByTopic() returned %d messages, want 3", len(messages))
	}

	// Insertion order preserved
	if messages[0].Content != "what is photosynthesis?" || messages[2].Content != "and respiration?" {
		t.Errorf("messages out of insertion order: %q ... %q", messages[0].Content, messages[2].Content)
	}
	if messages[0].File != nil || messages[1].File != nil {
		t.Error("unexpected file reference on fileless messages")
	}
	if messages[2].File == nil || messages[2].File.Name != "bio-notes.md" {
		t.Errorf("third message file = %+v, want bio-notes.md", messages[2].File)
	}
}

func TestMessageRepo_ListRecentByTopic(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	topic := newTestTopic("acct-1")
	if err := topicRepo.Create(ctx, topic); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		insertTestMessage(t, repo, topic.ID, RoleUser, fmt.Sprintf("message %d", i), nil)
	}

	recent, err := repo.ListRecentByTopic(ctx, topic.ID, 3)
	if err != nil {
		t.Fatalf("ListRecentByTopic() error = %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("ListRecentByTopic() returned %d messages, want 3", len(recent))
	}
	if recent[0].Content != "message 4" {
		t.Errorf("most recent = %q, want message 4", recent[0].Content)
	}
	if recent[2].Content != "message 2" {
		t.Errorf("oldest of window = %q, want message 2", recent[2].Content)
	}
}

func TestMessageRepo_CountByTopic(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	topic := newTestTopic("acct-1")
	other := newTestTopic("acct-1")
	if err := topicRepo.Create(ctx, topic); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := topicRepo.Create(ctx, other); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	insertTestMessage(t, repo, topic.ID, RoleUser, "a", nil)
	insertTestMessage(t, repo, topic.ID, RoleAssistant, "b", nil)
	insertTestMessage(t, repo, other.ID, RoleUser, "c", nil)

	count, err := repo.CountByTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("CountByTopic() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountByTopic() = %d, want 2", count)
	}
}

func TestMessageRepo_CountFilesByAccount(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	// Two topics for acct-1, one for acct-2, files spread across them.
	topicA := newTestTopic("acct-1")
	topicB := newTestTopic("acct-1")
	topicC := newTestTopic("acct-2")
	for _, topic := range []*Topic{topicA, topicB, topicC} {
		if err := topicRepo.Create(ctx, topic); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	newFile := func(name string) *FileRef {
		return &FileRef{ID: uuid.New().String(), Name: name, Kind: "pdf", Code: uuid.New().String()}
	}
	insertTestMessage(t, repo, topicA.ID, RoleUser, "a", newFile("a.pdf"))
	insertTestMessage(t, repo, topicB.ID, RoleUser, "b", newFile("b.pdf"))
	insertTestMessage(t, repo, topicB.ID, RoleUser, "no file", nil)
	insertTestMessage(t, repo, topicC.ID, RoleUser, "c", newFile("c.pdf"))

	count, err := repo.CountFilesByAccount(ctx, "acct-1")
	if err != nil {
		t.Fatalf("CountFilesByAccount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountFilesByAccount() = %d, want 2 (files in other accounts must not count)", count)
	}
}

func TestMessageRepo_ListFileRefsByTopic(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	topic := newTestTopic("acct-1")
	if err := topicRepo.Create(ctx, topic); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ref := &FileRef{ID: uuid.New().String(), Name: "slides.pptx", Kind: "pptx", Code: uuid.New().String()}
	insertTestMessage(t, repo, topic.ID, RoleUser, "see slides", ref)
	insertTestMessage(t, repo, topic.ID, RoleAssistant, "got it", nil)

	refs, err := repo.ListFileRefsByTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("ListFileRefsByTopic() error = %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("ListFileRefsByTopic() returned %d refs, want 1", len(refs))
	}
	if refs[0].Code != ref.Code || refs[0].Name != "slides.pptx" {
		t.Errorf("ref = %+v, want code %s name slides.pptx", refs[0], ref.Code)
	}
}

func TestMessageRepo_Insert_TransactionRollback(t *testing.T) {
	db := openTestDB(t)
	topicRepo := NewTopicRepo(db)
	ctx := context.Background()

	topic := newTestTopic("acct-1")
	if err := topicRepo.Create(ctx, topic); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	txRepo := NewMessageRepo(tx)
	if err := txRepo.Insert(ctx, &Message{
		ID: uuid.New().String(), TopicID: topic.ID, Role: RoleUser, Content: "staged",
	}); err != nil {
		t.Fatalf("Insert() in tx error = %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	count, err := NewMessageRepo(db).CountByTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("CountByTopic() error = %v", err)
	}
	if count != 0 {
		t.Errorf("rolled-back message visible: count = %d, want 0", count)
	}
}
