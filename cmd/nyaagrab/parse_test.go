package main

import "testing"

func TestParseEpisodeRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"empty", "", 1, 0, false},
		{"single", "7", 7, 7, false},
		{"closed", "3-10", 3, 10, false},
		{"open", "4-", 4, 0, false},
		{"whitespace", " 2-5 ", 2, 5, false},
		{"reversed", "10-3", 0, 0, true},
		{"zero start", "0-5", 0, 0, true},
		{"garbage", "abc", 0, 0, true},
		{"garbage end", "3-x", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseEpisodeRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseEpisodeRange(%q) expected error, got %d-%d", tt.input, start, end)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEpisodeRange(%q) unexpected error: %v", tt.input, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("parseEpisodeRange(%q) = %d, %d, want %d, %d", tt.input, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestJoinEpisodes(t *testing.T) {
	got := joinEpisodes([]int{2, 5, 11})
	if got != "2, 5, 11" {
		t.Errorf("joinEpisodes = %q", got)
	}
}
