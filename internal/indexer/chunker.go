package indexer

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	minChunkSize = 50
	maxChunkSize = 700 // Max runes per chunk, sized for the embedding model's context window
)

// DocumentChunker splits uploaded documents into embeddable chunks.
// Markdown sources are chunked along their heading hierarchy via goldmark AST
// parsing; any other text source falls back to paragraph chunking.
type DocumentChunker struct {
	parser goldmark.Markdown
}

// NewDocumentChunker creates a new document chunker.
func NewDocumentChunker() *DocumentChunker {
	return &DocumentChunker{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// ChunkDocument splits content into chunks. filename selects the strategy:
// .md/.markdown go through the AST chunker, everything else is treated as
// plain text.
func (c *DocumentChunker) ChunkDocument(content []byte, filename string) ([]Chunk, error) {
	if len(content) == 0 {
		return []Chunk{}, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return c.chunkMarkdown(content), nil
	default:
		return c.chunkPlainText(string(content)), nil
	}
}

func (c *DocumentChunker) chunkMarkdown(content []byte) []Chunk {
	reader := text.NewReader(content)
	doc := c.parser.Parser().Parse(reader)

	chunks := c.buildChunks(doc, content)
	return c.applySizeConstraints(chunks)
}

// chunkPlainText splits on blank lines and then re-applies the same size
// constraints the markdown path uses.
func (c *DocumentChunker) chunkPlainText(content string) []Chunk {
	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")

	var chunks []Chunk
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Text: p})
	}
	if len(chunks) == 0 {
		return []Chunk{}
	}

	return c.applySizeConstraints(chunks)
}

// headingInfo tracks heading level and text for building section paths.
type headingInfo struct {
	level int
	text  string
}

// buildChunks walks the AST and starts a new chunk at every heading.
func (c *DocumentChunker) buildChunks(doc ast.Node, content []byte) []Chunk {
	var chunks []Chunk
	var current *Chunk
	var headingStack []headingInfo

	appendText := func(s string) {
		if current == nil {
			// Content before the first heading
			current = &Chunk{Index: len(chunks)}
		}
		current.Text += s
	}
	breakLine := func() {
		if current != nil && len(current.Text) > 0 && !strings.HasSuffix(current.Text, "\n") {
			current.Text += "\n"
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			// Pop headings of equal or deeper level, push this one
			for len(headingStack) > 0 && headingStack[len(headingStack)-1].level >= node.Level {
				headingStack = headingStack[:len(headingStack)-1]
			}
			headingStack = append(headingStack, headingInfo{
				level: node.Level,
				text:  extractTextFromNode(node, content),
			})

			if current != nil && len(strings.TrimSpace(current.Text)) > 0 {
				chunks = append(chunks, *current)
			}
			current = &Chunk{
				Index:   len(chunks),
				Section: buildSectionPath(headingStack),
			}
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			appendText(string(node.Segment.Value(content)))
		case *ast.String:
			appendText(string(node.Value))
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			breakLine()
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				appendText(string(seg.Value(content)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.List, *ast.ListItem:
			breakLine()
		default:
			// Table rows from the table extension render as "a | b | c" lines
			kindName := n.Kind().String()
			if strings.Contains(kindName, "TableRow") || strings.Contains(kindName, "TableHeader") {
				breakLine()
				appendText(extractTableRowText(n, content) + "\n")
				return ast.WalkSkipChildren, nil
			}
		}
		return ast.WalkContinue, nil
	})

	if current != nil && len(strings.TrimSpace(current.Text)) > 0 {
		chunks = append(chunks, *current)
	}

	// No headings and no text nodes matched: index the raw content as one chunk
	if len(chunks) == 0 {
		chunks = append(chunks, Chunk{Index: 0, Text: string(content)})
	}

	return chunks
}

// buildSectionPath renders the heading stack as "# H1 > ## H2 > ### H3".
func buildSectionPath(stack []headingInfo) string {
	if len(stack) == 0 {
		return ""
	}
	parts := make([]string, len(stack))
	for i, h := range stack {
		parts[i] = fmt.Sprintf("%s %s", strings.Repeat("#", h.level), h.text)
	}
	return strings.Join(parts, " > ")
}

// extractTextFromNode extracts text content from a node and its children.
func extractTextFromNode(n ast.Node, content []byte) string {
	var builder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			builder.Write(v.Segment.Value(content))
		case *ast.String:
			builder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(builder.String())
}

// extractTableRowText joins a table row's cells with pipe separators.
func extractTableRowText(row ast.Node, content []byte) string {
	var builder strings.Builder
	cellCount := 0

	_ = ast.Walk(row, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if strings.Contains(node.Kind().String(), "TableCell") {
			if cellCount > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteString(extractTextFromNode(node, content))
			cellCount++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return builder.String()
}

// applySizeConstraints merges undersized chunks into their successor and
// splits oversized ones. Sizes are measured in runes.
func (c *DocumentChunker) applySizeConstraints(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return chunks
	}

	var result []Chunk
	i := 0
	for i < len(chunks) {
		current := chunks[i]

		for utf8.RuneCountInString(current.Text) < minChunkSize && i+1 < len(chunks) {
			next := chunks[i+1]
			merged := current.Text + "\n\n" + next.Text
			if utf8.RuneCountInString(merged) > maxChunkSize {
				break
			}
			current.Text = merged
			if current.Section == "" {
				current.Section = next.Section
			}
			i++
		}

		if utf8.RuneCountInString(current.Text) > maxChunkSize {
			result = append(result, splitChunk(current)...)
		} else {
			result = append(result, current)
		}
		i++
	}

	for i := range result {
		result[i].Index = i
	}
	return result
}

// splitChunk splits an oversized chunk, preferring paragraph, then line, then
// sentence boundaries before falling back to a hard split.
func splitChunk(chunk Chunk) []Chunk {
	textRunes := []rune(chunk.Text)
	if len(textRunes) <= maxChunkSize {
		return []Chunk{chunk}
	}

	var splits []Chunk
	start := 0
	for start < len(textRunes) {
		end := start + maxChunkSize
		if end >= len(textRunes) {
			splits = append(splits, Chunk{Section: chunk.Section, Text: string(textRunes[start:])})
			break
		}

		window := string(textRunes[start:end])
		splitPoint := end
		if b := strings.LastIndex(window, "\n\n"); b != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:b]) + 2
		} else if b := strings.LastIndex(window, "\n"); b != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:b]) + 1
		} else if b := strings.LastIndex(window, ". "); b != -1 {
			splitPoint = start + utf8.RuneCountInString(window[:b]) + 2
		}

		splits = append(splits, Chunk{Section: chunk.Section, Text: string(textRunes[start:splitPoint])})
		start = splitPoint
	}

	return splits
}
