package retrieval_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"studyhall-api/internal/retrieval"
	"studyhall-api/internal/retrieval/mocks"
)

func TestTopicNamerName(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     string
	}{
		{
			name:     "uses generated title",
			response: `{"title": "Photosynthesis basics"}`,
			want:     "Photosynthesis basics",
		},
		{
			name: "falls back on classifier failure",
			err:  errors.New("model overloaded"),
			want: "New conversation",
		},
		{
			name:     "falls back on empty title",
			response: `{"title": "  "}`,
			want:     "New conversation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			model := mocks.NewMockLanguageModel(ctrl)
			model.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, out any) error {
					if tt.err != nil {
						return tt.err
					}
					return json.Unmarshal([]byte(tt.response), out)
				})

			namer := retrieval.NewTopicNamer(model)
			if got := namer.Name(context.Background(), "what is photosynthesis", "Plants convert light into energy."); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
