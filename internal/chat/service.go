package chat

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"database/sql"
	"log/slog"

	"studyhall-api/internal/config"
	"studyhall-api/internal/retrieval"
	"studyhall-api/internal/storage"
	"studyhall-api/internal/websearch"
)

// AnswerEngine runs the retrieval pipeline for one question.
type AnswerEngine interface {
	Answer(ctx context.Context, req retrieval.Request) (retrieval.Answer, error)
}

// Namer generates display names for new topics.
type Namer interface {
	Name(ctx context.Context, question, answer string) string
}

// ObjectStore is the slice of object storage the conversation writer needs.
type ObjectStore interface {
	StageLocal(ctx context.Context, remotePath, localPath string) (string, error)
	RenamePersist(ctx context.Context, fromPath, toPath string) (string, error)
	DeleteLocal(path string) error
	SignedURL(ctx context.Context, path string) (string, error)
	DeleteObject(ctx context.Context, path string) error
}

// DocumentIndexer chunks and embeds an uploaded document into a collection.
type DocumentIndexer interface {
	IndexDocument(ctx context.Context, collection, title, sourcePath, scopeID string) error
}

// VectorCleaner removes a document space from a collection when its topic is
// deleted.
type VectorCleaner interface {
	DeleteByScope(ctx context.Context, collection, scopeID string) error
}

// FileUpload references a document the client staged in object storage.
type FileUpload struct {
	Name string
	// StagedPath is the object-storage path of the staged upload.
	StagedPath string
}

// ConverseRequest is one chat turn. An empty TopicID opens a new topic.
type ConverseRequest struct {
	AccountID string
	TopicID   string
	Message   string
	File      *FileUpload
}

// ConverseResponse carries the answer and everything retrieval produced.
type ConverseResponse struct {
	TopicID        string
	TopicName      string
	Answer         string
	CanonicalQuery string
	Queries        []string
	UserDocuments  []retrieval.Document
	EducationDocs  []retrieval.Document
	WebAnswer      string
	WebDocuments   []websearch.Document
	// WebStatus is "false" when web search was skipped, "true" when it
	// contributed, or an error description when it failed.
	WebStatus string
	FileName  string
	FileURL   string
}

// TopicMessage is a persisted message with a signed download URL for its
// attachment, when one exists.
type TopicMessage struct {
	storage.Message
	FileURL string
}

// Service is the chat subsystem's API surface.
type Service interface {
	// Converse answers one question and persists the resulting turn pair.
	Converse(ctx context.Context, req ConverseRequest) (ConverseResponse, error)
	// ListTopics returns an account's topics, most recently active first.
	ListTopics(ctx context.Context, accountID string) ([]storage.Topic, error)
	// GetMessages returns a topic's messages in insertion order.
	GetMessages(ctx context.Context, accountID, topicID string) ([]TopicMessage, error)
	// RenameTopic updates a topic's display name.
	RenameTopic(ctx context.Context, accountID, topicID, name string) error
	// DeleteTopic removes a topic, its messages, its stored objects and its
	// indexed document space.
	DeleteTopic(ctx context.Context, accountID, topicID string) error
}

type service struct {
	db             *sql.DB
	engine         AnswerEngine
	namer          Namer
	objects        ObjectStore
	indexer        DocumentIndexer
	vectors        VectorCleaner
	userCollection string
	stagingDir     string
	limits         config.Limits
	logger         *slog.Logger
}

// NewService creates the chat service.
func NewService(
	db *sql.DB,
	engine AnswerEngine,
	namer Namer,
	objects ObjectStore,
	indexer DocumentIndexer,
	vectors VectorCleaner,
	userCollection string,
	stagingDir string,
	limits config.Limits,
) Service {
	return &service{
		db:             db,
		engine:         engine,
		namer:          namer,
		objects:        objects,
		indexer:        indexer,
		vectors:        vectors,
		userCollection: userCollection,
		stagingDir:     stagingDir,
		limits:         limits,
		logger:         slog.Default(),
	}
}
