package playlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	testOwnerID    = "6f1c1b5e-98a1-4a6b-9a6b-3f6f3a1d2e01"
	testOtherID    = "7a2d2c6f-aab2-4b7c-8b7c-4a7a4b2e3f02"
	testPlaylistID = "8b3e3d7a-bcc3-4c8d-9c8d-5b8b5c3f4a03"
	testSongID     = "9c4f4e8b-cdd4-4d9e-8d9e-6c9c6d4a5b04"
	testSongID2    = "0d5a5f9c-dee5-4eaf-9eaf-7d0d7e5b6c05"
)

func scanPlaylistRow(name string) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*string) = testPlaylistID
		*dest[1].(*string) = testOwnerID
		*dest[2].(*string) = name
		*dest[3].(*string) = "road songs"
		*dest[4].(*bool) = false
		*dest[5].(*string) = ""
		*dest[6].(*time.Time) = time.Now()
		*dest[7].(*time.Time) = time.Now()
		return nil
	}
}

func songRow(id, title string, duration any) []any {
	return []any{
		id, title, "Artist", "Album", nil, duration,
		"", "Rock", "catalog", time.Now(), time.Now(),
	}
}

func TestHandleCreatePlaylist_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Post("/playlists", srv.handleCreatePlaylist)

	mockDB.QueryRowFunc = func(ctx context.Context, sql string, args ...any) pgx.Row {
		if !strings.Contains(sql, "INSERT INTO playlists") {
			return &MockRow{ScanFunc: func(dest ...any) error {
				return errors.New("unexpected query: " + sql)
			}}
		}
		return &MockRow{ScanFunc: scanPlaylistRow("Road Trip")}
	}

	body, _ := json.Marshal(map[string]any{"name": "Road Trip", "description": "road songs"})
	req := httptest.NewRequest("POST", "/playlists", bytes.NewReader(body))
	req.Header.Set("X-User-Id", testOwnerID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 Created, got %d (%s)", w.Code, w.Body.String())
	}

	var view View
	json.NewDecoder(w.Body).Decode(&view)
	if view.Name != "Road Trip" {
		t.Errorf("Expected name Road Trip, got %s", view.Name)
	}
	if view.TrackCount != 0 || view.TotalDuration != 0 {
		t.Errorf("Expected empty shape, got trackCount=%d totalDuration=%d",
			view.TrackCount, view.TotalDuration)
	}
	if view.Songs == nil || len(view.Songs) != 0 {
		t.Errorf("Expected songs to be an empty array, got %#v", view.Songs)
	}
}

func TestHandleCreatePlaylist_Errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		body     string
		wantCode int
	}{
		{"missing user", "", `{"name":"x"}`, http.StatusUnauthorized},
		{"empty name", testOwnerID, `{"name":"   "}`, http.StatusBadRequest},
		{"bad cover url", testOwnerID, `{"name":"x","coverUrl":"ftp://nope"}`, http.StatusBadRequest},
		{"invalid json", testOwnerID, `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(&MockDB{})
			r := chi.NewRouter()
			r.Post("/playlists", srv.handleCreatePlaylist)

			req := httptest.NewRequest("POST", "/playlists", strings.NewReader(tt.body))
			if tt.userID != "" {
				req.Header.Set("X-User-Id", tt.userID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestHandleGetPlaylist_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Get("/playlists/{id}", srv.handleGetPlaylist)

	mockDB.QueryRowFunc = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &MockRow{ScanFunc: scanPlaylistRow("Road Trip")}
	}
	mockDB.QueryFunc = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		if strings.Contains(sql, "JOIN songs") {
			return &MockRows{
				Data: [][]any{
					songRow(testSongID, "Location", 233),
					songRow(testSongID2, "Vossi Bop", nil),
				},
				Idx: -1,
			}, nil
		}
		return nil, errors.New("unexpected query: " + sql)
	}

	req := httptest.NewRequest("GET", "/playlists/"+testPlaylistID, nil)
	req.Header.Set("X-User-Id", testOwnerID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d (%s)", w.Code, w.Body.String())
	}

	var view View
	json.NewDecoder(w.Body).Decode(&view)
	if view.TrackCount != 2 {
		t.Errorf("Expected trackCount 2, got %d", view.TrackCount)
	}
	if view.TotalDuration != 233 {
		t.Errorf("Expected totalDuration 233 (unknown durations count 0), got %d", view.TotalDuration)
	}
}

func TestHandleGetPlaylist_OwnershipGate(t *testing.T) {
	tests := []struct {
		name       string
		playlistID string
		userID     string
		scanErr    error
		ownerID    string
		wantCode   int
	}{
		{"malformed id", "not-a-uuid", testOwnerID, nil, testOwnerID, http.StatusBadRequest},
		{"not found", testPlaylistID, testOwnerID, pgx.ErrNoRows, testOwnerID, http.StatusNotFound},
		{"non-owner", testPlaylistID, testOtherID, nil, testOwnerID, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDB{}
			srv := NewServer(mockDB)
			r := chi.NewRouter()
			r.Get("/playlists/{id}", srv.handleGetPlaylist)

			mockDB.QueryRowFunc = func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{ScanFunc: func(dest ...any) error {
					if tt.scanErr != nil {
						return tt.scanErr
					}
					return scanPlaylistRow("Road Trip")(dest...)
				}}
			}

			req := httptest.NewRequest("GET", fmt.Sprintf("/playlists/%s", tt.playlistID), nil)
			req.Header.Set("X-User-Id", tt.userID)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleListPlaylists_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Get("/playlists", srv.handleListPlaylists)

	mockDB.QueryFunc = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		if strings.Contains(sql, "JOIN songs") {
			return &MockRows{Idx: -1}, nil
		}
		if strings.Contains(sql, "FROM playlists") && strings.Contains(sql, "owner_id = $1") {
			return &MockRows{
				Data: [][]any{
					{testPlaylistID, testOwnerID, "Road Trip", "", false, "", time.Now(), time.Now()},
				},
				Idx: -1,
			}, nil
		}
		return nil, errors.New("unexpected query: " + sql)
	}

	req := httptest.NewRequest("GET", "/playlists", nil)
	req.Header.Set("X-User-Id", testOwnerID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d (%s)", w.Code, w.Body.String())
	}

	var views []View
	json.NewDecoder(w.Body).Decode(&views)
	if len(views) != 1 {
		t.Fatalf("Expected 1 playlist, got %d", len(views))
	}
	if views[0].ID != testPlaylistID {
		t.Errorf("Expected %s, got %s", testPlaylistID, views[0].ID)
	}
}

func TestHandlePatchPlaylist_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Patch("/playlists/{id}", srv.handlePatchPlaylist)

	var updated bool
	mockDB.BeginTxFunc = func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
		return &MockTx{
			QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{ScanFunc: scanPlaylistRow("Old Name")}
			},
			ExecFunc: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				if strings.Contains(sql, "UPDATE playlists") {
					updated = true
					return pgconn.CommandTag{}, nil
				}
				return pgconn.CommandTag{}, errors.New("unexpected exec: " + sql)
			},
		}, nil
	}
	mockDB.QueryFunc = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return &MockRows{Idx: -1}, nil
	}

	body, _ := json.Marshal(map[string]any{"name": "New Name", "isPublic": true})
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/playlists/%s", testPlaylistID), bytes.NewReader(body))
	req.Header.Set("X-User-Id", testOwnerID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d (%s)", w.Code, w.Body.String())
	}
	if !updated {
		t.Error("Expected an UPDATE to run")
	}

	var view View
	json.NewDecoder(w.Body).Decode(&view)
	if view.Name != "New Name" {
		t.Errorf("Expected New Name, got %s", view.Name)
	}
	if !view.IsPublic {
		t.Error("Expected isPublic true")
	}
	if view.Description != "road songs" {
		t.Errorf("Expected untouched description, got %q", view.Description)
	}
}

func TestHandlePatchPlaylist_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"blank name", `{"name":"  "}`, http.StatusBadRequest},
		{"bad cover url", `{"coverUrl":"javascript:alert(1)"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDB{}
			srv := NewServer(mockDB)
			r := chi.NewRouter()
			r.Patch("/playlists/{id}", srv.handlePatchPlaylist)

			mockDB.QueryRowFunc = func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{ScanFunc: scanPlaylistRow("Road Trip")}
			}

			req := httptest.NewRequest("PATCH", fmt.Sprintf("/playlists/%s", testPlaylistID), strings.NewReader(tt.body))
			req.Header.Set("X-User-Id", testOwnerID)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandlePatchCover_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Patch("/playlists/{id}/cover", srv.handlePatchCover)

	mockDB.QueryRowFunc = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &MockRow{ScanFunc: scanPlaylistRow("Road Trip")}
	}
	mockDB.ExecFunc = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		if !strings.Contains(sql, "SET cover_url") {
			return pgconn.CommandTag{}, errors.New("unexpected exec: " + sql)
		}
		return pgconn.CommandTag{}, nil
	}

	body := `{"coverUrl":"https://example.com/cover.jpg"}`
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/playlists/%s/cover", testPlaylistID), strings.NewReader(body))
	req.Header.Set("X-User-Id", testOwnerID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d (%s)", w.Code, w.Body.String())
	}

	var view View
	json.NewDecoder(w.Body).Decode(&view)
	if view.CoverURL != "https://example.com/cover.jpg" {
		t.Errorf("Expected new cover URL, got %q", view.CoverURL)
	}
}

func TestHandleDeletePlaylist_Success(t *testing.T) {
	mockDB := &MockDB{}
	srv := NewServer(mockDB)
	r := chi.NewRouter()
	r.Delete("/playlists/{id}", srv.handleDeletePlaylist)

	var deleted bool
	mockDB.BeginTxFunc = func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
		return &MockTx{
			QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{ScanFunc: scanPlaylistRow("Road Trip")}
			},
			ExecFunc: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				if strings.Contains(sql, "DELETE FROM playlists") {
					deleted = true
					return pgconn.NewCommandTag("DELETE 1"), nil
				}
				return pgconn.CommandTag{}, errors.New("unexpected exec: " + sql)
			},
		}, nil
	}

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/playlists/%s", testPlaylistID), nil)
	req.Header.Set("X-User-Id", testOwnerID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 No Content, got %d (%s)", w.Code, w.Body.String())
	}
	if !deleted {
		t.Error("Expected a DELETE to run")
	}
}
