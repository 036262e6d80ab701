package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/config"
	"studyhall-api/internal/http"
	"studyhall-api/internal/indexer"
	"studyhall-api/internal/llm"
	"studyhall-api/internal/objectstore"
	"studyhall-api/internal/retrieval"
	"studyhall-api/internal/storage"
	"studyhall-api/internal/vectorstore"
	"studyhall-api/internal/websearch"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx := context.Background()

	// Initialize Qdrant vector store and make sure both collections exist
	// with the configured vector size
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	for _, collection := range []string{cfg.UserDocsCollection, cfg.EducationCollection} {
		if err := vectorStore.EnsureCollection(ctx, collection, cfg.QdrantVectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection %s: %v", collection, err)
		}
	}
	slog.Info("Qdrant collections ready",
		"user_documents", cfg.UserDocsCollection,
		"education", cfg.EducationCollection,
		"vector_size", cfg.QdrantVectorSize,
	)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Object storage for uploaded documents
	objects, err := objectstore.NewS3Store(ctx, objectstore.Options{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		AccessKeyID:  cfg.S3AccessKeyID,
		SecretKey:    cfg.S3SecretKey,
		Endpoint:     cfg.S3Endpoint,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Fatalf("Failed to create object store: %v", err)
	}

	// Retrieval pipeline
	llmClient := llm.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModelName)
	retriever := retrieval.NewVectorRetriever(embedder, vectorStore, map[retrieval.Index]string{
		retrieval.IndexUserDocuments: cfg.UserDocsCollection,
		retrieval.IndexEducation:     cfg.EducationCollection,
	})
	webSearcher := websearch.NewSerperClient(cfg.SerperAPIKey)
	engine := retrieval.NewEngine(llmClient, retriever, webSearcher)
	slog.Info("Retrieval engine initialized")

	// Chat service over the retrieval pipeline
	indexerPipeline := indexer.NewPipeline(embedder, vectorStore)
	chatService := chat.NewService(
		db,
		engine,
		retrieval.NewTopicNamer(llmClient),
		objects,
		indexerPipeline,
		vectorStore,
		cfg.UserDocsCollection,
		os.TempDir(),
		cfg.Limits,
	)

	router := http.NewRouter(&http.Deps{
		ChatService: chatService,
		DB:          db,
		Vectors:     vectorStore,
		Collections: []string{cfg.UserDocsCollection, cfg.EducationCollection},
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
