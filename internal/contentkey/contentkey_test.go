package contentkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name        string
		board       string
		classLevel  string
		stream      string
		subjectName string
		chapterID   string
		expected    string
	}{
		{
			name:        "junior class ignores stream",
			board:       "CBSE",
			classLevel:  "10",
			stream:      "Science",
			subjectName: "Mathematics",
			chapterID:   "ch-1",
			expected:    "nst_content_CBSE_10_Mathematics_ch-1",
		},
		{
			name:        "class 11 appends stream",
			board:       "CBSE",
			classLevel:  "11",
			stream:      "Science",
			subjectName: "Physics",
			chapterID:   "ch-4",
			expected:    "nst_content_CBSE_11-Science_Physics_ch-4",
		},
		{
			name:        "class 12 appends stream",
			board:       "BSEB",
			classLevel:  "12",
			stream:      "Commerce",
			subjectName: "Accountancy",
			chapterID:   "7",
			expected:    "nst_content_BSEB_12-Commerce_Accountancy_7",
		},
		{
			name:        "class 9 with empty stream",
			board:       "CBSE",
			classLevel:  "9",
			stream:      "",
			subjectName: "Science",
			chapterID:   "a",
			expected:    "nst_content_CBSE_9_Science_a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := DeriveKey(tt.board, tt.classLevel, tt.stream, tt.subjectName, tt.chapterID)
			second := DeriveKey(tt.board, tt.classLevel, tt.stream, tt.subjectName, tt.chapterID)

			assert.Equal(t, tt.expected, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestDeriveContentID(t *testing.T) {
	modes := []Mode{ModeMCQ, ModeFree, ModePremium, ModeUltra, ModeVideo}
	seen := make(map[string]Mode)

	for _, mode := range modes {
		id := DeriveContentID("ch-1", mode)
		assert.Equal(t, "ch-1_"+string(mode), id)

		_, dup := seen[id]
		assert.False(t, dup, "content id %s must be unique per mode", id)
		seen[id] = mode
	}
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeMCQ.Valid())
	assert.True(t, ModeVideo.Valid())
	assert.False(t, Mode("AUDIO").Valid())
	assert.False(t, Mode("").Valid())

	assert.True(t, ModePremium.IsPDF())
	assert.False(t, ModeMCQ.IsPDF())
}
