package indexer

// Chunk is one embeddable slice of an uploaded document.
type Chunk struct {
	// Index is the chunk's position within the document (starts at 0).
	Index int
	// Section is the heading path for markdown sources ("# H1 > ## H2"),
	// or empty for plain-text sources.
	Section string
	// Text is the chunk content.
	Text string
}
