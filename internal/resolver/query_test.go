package resolver

import "testing"

func TestEpisodeString(t *testing.T) {
	tests := []struct {
		name    string
		episode int
		want    string
	}{
		{"single digit", 5, "05"},
		{"one", 1, "01"},
		{"boundary", 10, "10"},
		{"double digit", 12, "12"},
		{"triple digit", 125, "125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EpisodeString(tt.episode); got != tt.want {
				t.Errorf("EpisodeString(%d) = %q, want %q", tt.episode, got, tt.want)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	query, keywords := Queries("Frieren", 5, 1080)

	if query != "Frieren - 05" {
		t.Errorf("query = %q, want %q", query, "Frieren - 05")
	}
	if keywords[0] != "Frieren - 05 [1080p]" {
		t.Errorf("keywords[0] = %q", keywords[0])
	}
	if keywords[1] != "Frieren - 05 (1080p)" {
		t.Errorf("keywords[1] = %q", keywords[1])
	}
}

func TestQueries_Unpadded(t *testing.T) {
	query, keywords := Queries("Frieren", 14, 720)

	if query != "Frieren - 14" {
		t.Errorf("query = %q, want %q", query, "Frieren - 14")
	}
	if keywords[0] != "Frieren - 14 [720p]" {
		t.Errorf("keywords[0] = %q", keywords[0])
	}
}
