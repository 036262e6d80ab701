package chat

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/llm"
	"studyhall-api/internal/retrieval"
	"studyhall-api/internal/storage"
)

// historyLimit is how many prior messages feed reformulation and synthesis.
const historyLimit = 10

// placeholderTopicName holds a new topic's row until the real name is
// generated at persist time.
const placeholderTopicName = "New conversation"

// Converse runs one chat turn: quota checks, optional file staging, the
// retrieval pipeline, then an all-or-nothing persist of the user and
// assistant messages. The transaction spans the whole turn so quota reads and
// the writes they guard see the same state.
func (s *service) Converse(ctx context.Context, req ConverseRequest) (ConverseResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.AccountID == "" {
		return ConverseResponse{}, invalidInput("account id is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return ConverseResponse{}, invalidInput("message cannot be empty")
	}
	if req.File != nil && (req.File.Name == "" || req.File.StagedPath == "") {
		return ConverseResponse{}, invalidInput("file name and staged path are required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ConverseResponse{}, upstream("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	topics := storage.NewTopicRepo(tx)
	messages := storage.NewMessageRepo(tx)

	topic, newTopic, err := s.resolveTopic(ctx, topics, messages, req)
	if err != nil {
		return ConverseResponse{}, err
	}

	var fileRef *storage.FileRef
	if req.File != nil {
		fileRef, err = s.stageFile(ctx, messages, req, topic.DocSpaceID)
		if err != nil {
			return ConverseResponse{}, err
		}
	}

	var history []llm.Message
	if !newTopic {
		recent, err := messages.ListRecentByTopic(ctx, topic.ID, historyLimit)
		if err != nil {
			return ConverseResponse{}, upstream("failed to load conversation history", err)
		}
		history = toLLMHistory(recent)
	}

	retrievalReq := retrieval.Request{
		Question:   req.Message,
		DocSpaceID: topic.DocSpaceID,
		History:    history,
		HasFile:    req.File != nil,
	}
	if req.File != nil {
		retrievalReq.FileName = req.File.Name
	}

	answer, err := s.engine.Answer(ctx, retrievalReq)
	if err != nil {
		return ConverseResponse{}, upstream("failed to answer question", err)
	}

	userMsg := &storage.Message{
		ID:      uuid.NewString(),
		TopicID: topic.ID,
		Role:    storage.RoleUser,
		Content: req.Message,
		File:    fileRef,
	}
	if err := messages.Insert(ctx, userMsg); err != nil {
		return ConverseResponse{}, classifyWriteError("failed to persist user message", err)
	}

	assistantMsg := &storage.Message{
		ID:      uuid.NewString(),
		TopicID: topic.ID,
		Role:    storage.RoleAssistant,
		Content: answer.Text,
	}
	if err := messages.Insert(ctx, assistantMsg); err != nil {
		return ConverseResponse{}, classifyWriteError("failed to persist assistant message", err)
	}

	if newTopic {
		topic.Name = s.namer.Name(ctx, answer.CanonicalQuery, answer.Text)
		if err := topics.Rename(ctx, topic.ID, topic.Name); err != nil {
			return ConverseResponse{}, upstream("failed to name topic", err)
		}
	} else if err := topics.Touch(ctx, topic.ID); err != nil {
		return ConverseResponse{}, upstream("failed to update topic activity", err)
	}

	if err := tx.Commit(); err != nil {
		return ConverseResponse{}, upstream("failed to commit conversation", err)
	}

	logger.InfoContext(ctx, "conversation turn persisted",
		"topic_id", topic.ID,
		"new_topic", newTopic,
		"has_file", req.File != nil,
		"web", answer.Web.Status(),
	)

	resp := ConverseResponse{
		TopicID:        topic.ID,
		TopicName:      topic.Name,
		Answer:         answer.Text,
		CanonicalQuery: answer.CanonicalQuery,
		Queries:        answer.Queries,
		UserDocuments:  answer.UserDocuments,
		EducationDocs:  answer.EducationDocs,
		WebAnswer:      answer.WebAnswer,
		WebDocuments:   answer.WebDocuments,
		WebStatus:      answer.Web.Status(),
	}
	if fileRef != nil {
		resp.FileName = fileRef.Name
		url, err := s.objects.SignedURL(ctx, objectPath(topic.DocSpaceID, fileRef))
		if err != nil {
			// The turn is committed; a missing download link is not worth failing it
			logger.WarnContext(ctx, "failed to sign file url", "error", err)
		} else {
			resp.FileURL = url
		}
	}
	return resp, nil
}

// resolveTopic loads the target topic or creates a new one, enforcing the
// topic and message quotas against the transaction's view.
func (s *service) resolveTopic(ctx context.Context, topics *storage.TopicRepo, messages *storage.MessageRepo, req ConverseRequest) (*storage.Topic, bool, error) {
	if req.TopicID == "" {
		count, err := topics.CountByAccount(ctx, req.AccountID)
		if err != nil {
			return nil, false, upstream("failed to count topics", err)
		}
		if count >= s.limits.MaxTopicsPerAccount {
			return nil, false, quotaExceeded(fmt.Sprintf("topic limit of %d reached", s.limits.MaxTopicsPerAccount))
		}

		topic := &storage.Topic{
			ID:         uuid.NewString(),
			AccountID:  req.AccountID,
			Name:       placeholderTopicName,
			DocSpaceID: uuid.NewString(),
		}
		if err := topics.Create(ctx, topic); err != nil {
			return nil, false, classifyWriteError("failed to create topic", err)
		}
		return topic, true, nil
	}

	topic, err := topics.GetByID(ctx, req.TopicID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, notFound("topic not found")
	}
	if err != nil {
		return nil, false, upstream("failed to load topic", err)
	}
	if topic.AccountID != req.AccountID {
		return nil, false, unauthorized("topic belongs to a different account")
	}

	count, err := messages.CountByTopic(ctx, topic.ID)
	if err != nil {
		return nil, false, upstream("failed to count messages", err)
	}
	if count >= s.limits.MaxMessagesPerTopic {
		return nil, false, quotaExceeded(fmt.Sprintf("message limit of %d reached", s.limits.MaxMessagesPerTopic))
	}
	return topic, false, nil
}

// stageFile enforces the file quota, pulls the staged upload to local disk,
// indexes it into the topic's document space and moves the object to its
// persistent path. The local copy is removed whether or not any step fails.
func (s *service) stageFile(ctx context.Context, messages *storage.MessageRepo, req ConverseRequest, docSpaceID string) (*storage.FileRef, error) {
	logger := contextutil.LoggerFromContext(ctx)

	count, err := messages.CountFilesByAccount(ctx, req.AccountID)
	if err != nil {
		return nil, upstream("failed to count files", err)
	}
	if count >= s.limits.MaxFilesPerAccount {
		return nil, quotaExceeded(fmt.Sprintf("file limit of %d reached", s.limits.MaxFilesPerAccount))
	}

	ref := &storage.FileRef{
		ID:   uuid.NewString(),
		Name: req.File.Name,
		Kind: fileKind(req.File.Name),
		Code: uuid.NewString(),
	}

	localPath := filepath.Join(s.stagingDir, ref.Code+filepath.Ext(req.File.Name))
	local, err := s.objects.StageLocal(ctx, req.File.StagedPath, localPath)
	if err != nil {
		return nil, upstream("failed to stage uploaded file", err)
	}
	defer func() {
		if err := s.objects.DeleteLocal(local); err != nil {
			logger.WarnContext(ctx, "failed to remove local staging copy", "path", local, "error", err)
		}
	}()

	if err := s.indexer.IndexDocument(ctx, s.userCollection, req.File.Name, local, docSpaceID); err != nil {
		return nil, upstream("failed to index uploaded file", err)
	}

	if _, err := s.objects.RenamePersist(ctx, req.File.StagedPath, objectPath(docSpaceID, ref)); err != nil {
		return nil, upstream("failed to persist uploaded file", err)
	}

	return ref, nil
}

// objectPath builds the persistent object key for a file reference.
func objectPath(docSpaceID string, ref *storage.FileRef) string {
	return docSpaceID + "/" + ref.Code + filepath.Ext(ref.Name)
}

// fileKind classifies an upload by extension, with a fallback for anything
// unrecognized.
func fileKind(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return "markdown"
	case ".txt":
		return "text"
	case ".pdf":
		return "pdf"
	default:
		return "other"
	}
}

// toLLMHistory converts persisted messages, most recent first, into model
// messages in chronological order.
func toLLMHistory(recent []storage.Message) []llm.Message {
	history := make([]llm.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		role := llm.RoleUser
		if msg.Role == storage.RoleAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: msg.Content})
	}
	return history
}
