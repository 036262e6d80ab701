package retrieval

import "testing"

func doc(id string) Document {
	return Document{ID: id, Title: "title-" + id, Source: IndexUserDocuments}
}

func assertOrder(t *testing.T, got []Document, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d documents, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFuseRanked(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]Document
		want  []string
	}{
		{
			name: "document in both lists outranks single appearances",
			// B scores 1/60+1/61, A 1/60, D 1/61, C 1/62
			lists: [][]Document{
				{doc("A"), doc("B"), doc("C")},
				{doc("B"), doc("D")},
			},
			want: []string{"B", "A", "D", "C"},
		},
		{
			name: "single list keeps its order",
			lists: [][]Document{
				{doc("A"), doc("B"), doc("C")},
			},
			want: []string{"A", "B", "C"},
		},
		{
			name: "ties broken by first seen order",
			lists: [][]Document{
				{doc("A")},
				{doc("B")},
			},
			want: []string{"A", "B"},
		},
		{
			name:  "empty input",
			lists: [][]Document{},
			want:  []string{},
		},
		{
			name: "empty lists contribute nothing",
			lists: [][]Document{
				{},
				{doc("A")},
				{},
			},
			want: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOrder(t, fuseRanked(tt.lists), tt.want)
		})
	}
}

func TestFuseRankedKeepsFirstPayload(t *testing.T) {
	first := Document{ID: "A", Title: "first", Text: "first text"}
	second := Document{ID: "A", Title: "second", Text: "second text"}

	fused := fuseRanked([][]Document{{first}, {second}})
	if len(fused) != 1 {
		t.Fatalf("got %d documents, want 1", len(fused))
	}
	if fused[0].Title != "first" || fused[0].Text != "first text" {
		t.Errorf("payload = %+v, want first occurrence", fused[0])
	}
}

func TestTruncate(t *testing.T) {
	docs := make([]Document, 12)
	for i := range docs {
		docs[i] = doc(string(rune('a' + i)))
	}

	if got := truncate(docs, maxUserDocuments); len(got) != 10 {
		t.Errorf("truncate to %d returned %d documents", maxUserDocuments, len(got))
	}
	if got := truncate(docs[:3], maxEducationDocs); len(got) != 3 {
		t.Errorf("truncate below limit returned %d documents, want 3", len(got))
	}
}
