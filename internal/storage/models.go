package storage

import "time"

// Role identifies which side of the conversation produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Topic represents one conversation thread owned by an account.
// DocSpaceID is the opaque partition key scoping the topic's uploaded documents
// in the vector index; it never changes after creation.
type Topic struct {
	ID         string
	AccountID  string
	Name       string
	DocSpaceID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Message represents one turn within a topic. File is non-nil when an uploaded
// document accompanied the message.
type Message struct {
	ID        string
	TopicID   string
	Role      Role
	Content   string
	CreatedAt time.Time
	File      *FileRef
}

// FileRef is the metadata of a document uploaded with a message. Code is the
// opaque storage code used to build the object-store path.
type FileRef struct {
	ID        string
	MessageID string
	Name      string
	Kind      string
	Code      string
	CreatedAt time.Time
}
