package matches

import "testing"

func TestTrailingID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1803600", "1803600"},
		{"https://www.chess.com/club/matches/1803600", "1803600"},
		{"https://www.chess.com/club/matches/1803600/", "1803600"},
		{"https://api.chess.com/pub/match/1869975", "1869975"},
		{"  1803600  ", "1803600"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TrailingID(tt.input); got != tt.want {
			t.Errorf("TrailingID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
