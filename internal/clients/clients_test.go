package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nstapp/content-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterClient_FetchChapters(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chapters", r.URL.Path)
				assert.Equal(t, "CBSE", r.URL.Query().Get("board"))
				assert.Equal(t, "12", r.URL.Query().Get("classLevel"))
				assert.Equal(t, "Science", r.URL.Query().Get("stream"))
				assert.Equal(t, "Physics", r.URL.Query().Get("subject"))
				assert.Equal(t, "English", r.URL.Query().Get("language"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[{"id":"c1","title":"Electrostatics"},{"id":"c2","title":"Current Electricity"}]`))
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedError: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[{"id":`))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewChapterClient(srv.URL, 0)
			profile := models.Profile{Board: "CBSE", ClassLevel: "12", Stream: "Science"}

			chapters, err := client.FetchChapters(context.Background(), profile, models.Subject{ID: "physics", Name: "Physics"}, "English")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, chapters, tt.expectedCount)
			}
		})
	}
}

func TestDocumentClient_GetChapterData(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError bool
		expectedNil   bool
		expectedURL   string
		invalid       bool
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/documents/nst_content_CBSE_10_Science_c1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"freeVideoLink":"https://v/free","premiumVideoLink":"https://v/premium"}`))
			},
			expectedURL: "https://v/premium",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedNil: true,
		},
		{
			name: "null document",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`null`))
			},
			expectedNil: true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectedError: true,
			expectedNil:   true,
		},
		{
			name: "playlist entry without url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"videoPlaylist":[{"title":"Intro","url":""}]}`))
			},
			expectedError: true,
			expectedNil:   true,
			invalid:       true,
		},
		{
			name: "negative price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"price":-10,"freeVideoLink":"https://v/free"}`))
			},
			expectedError: true,
			expectedNil:   true,
			invalid:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewDocumentClient(srv.URL, 0)

			record, err := client.GetChapterData(context.Background(), "nst_content_CBSE_10_Science_c1")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.invalid {
				assert.ErrorIs(t, err, models.ErrContentInvalid)
			}
			if tt.expectedNil {
				assert.Nil(t, record)
			} else {
				require.NotNil(t, record)
				assert.Equal(t, tt.expectedURL, record.VideoURL())
			}
		})
	}
}
