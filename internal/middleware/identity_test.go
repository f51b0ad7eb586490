package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/domain"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantUser   domain.User
	}{
		{
			name:       "gm",
			headers:    map[string]string{HeaderUserID: "u1", HeaderUserRole: "GM", HeaderUserName: "Alice"},
			wantStatus: http.StatusOK,
			wantUser:   domain.User{ID: "u1", Name: "Alice", Role: domain.RoleGM},
		},
		{
			name:       "role defaults to player",
			headers:    map[string]string{HeaderUserID: "u2", HeaderCharacterID: "a9"},
			wantStatus: http.StatusOK,
			wantUser:   domain.User{ID: "u2", Role: domain.RolePlayer, CharacterID: "a9"},
		},
		{
			name:       "missing user",
			headers:    map[string]string{HeaderUserRole: "gm"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown role",
			headers:    map[string]string{HeaderUserID: "u3", HeaderUserRole: "admin"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.User
			h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				got, ok = GetUser(r.Context())
				require.True(t, ok)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, got)
			}
		})
	}
}

func TestConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   bool
	}{
		{"no answer", "/x", "", false},
		{"query true", "/x?confirm=true", "", true},
		{"query false", "/x?confirm=false", "true", false},
		{"header", "/x", "1", true},
		{"garbage", "/x?confirm=yes-please", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var answer bool
			h := Confirmation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var err error
				answer, err = catalog.ConfirmerFrom(r.Context()).Confirm(context.Background(), catalog.Prompt{})
				require.NoError(t, err)
			}))
			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(HeaderConfirm, tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, answer)
		})
	}
}

func TestGetUser_Missing(t *testing.T) {
	_, ok := GetUser(context.Background())
	assert.False(t, ok)
}
