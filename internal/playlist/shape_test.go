package playlist

import (
	"testing"

	"hoot-music-api/internal/catalog"
)

func TestShape(t *testing.T) {
	d1, d2 := 233, 190

	tests := []struct {
		name         string
		songs        []catalog.Song
		wantCount    int
		wantDuration int
	}{
		{"empty", []catalog.Song{}, 0, 0},
		{
			"durations summed",
			[]catalog.Song{{Duration: &d1}, {Duration: &d2}},
			2, 423,
		},
		{
			"unknown duration counts zero",
			[]catalog.Song{{Duration: &d1}, {Duration: nil}},
			2, 233,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := shape(Playlist{ID: testPlaylistID}, tt.songs)
			if view.TrackCount != tt.wantCount {
				t.Errorf("trackCount: expected %d, got %d", tt.wantCount, view.TrackCount)
			}
			if view.TotalDuration != tt.wantDuration {
				t.Errorf("totalDuration: expected %d, got %d", tt.wantDuration, view.TotalDuration)
			}
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", true},
		{"https://example.com/cover.jpg", true},
		{"http://example.com", true},
		{"HTTPS://EXAMPLE.COM/X", true},
		{"ftp://example.com", false},
		{"javascript:alert(1)", false},
		{"https://", false},
		{"example.com/cover.jpg", false},
	}

	for _, tt := range tests {
		if got := isHTTPURL(tt.url); got != tt.want {
			t.Errorf("isHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestValidID(t *testing.T) {
	if !validID(testPlaylistID) {
		t.Errorf("expected %s to be a valid id", testPlaylistID)
	}
	for _, bad := range []string{"", "abc", "1234", testPlaylistID + "x"} {
		if validID(bad) {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
