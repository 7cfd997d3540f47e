package matches

import (
	"reflect"
	"testing"
)

func TestParseStatusesAbbreviations(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []Status
		wantDropped []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "full name", input: "finished", want: []Status{StatusFinished}},
		{name: "single letter f", input: "f", want: []Status{StatusFinished}},
		{name: "single letter i", input: "i", want: []Status{StatusInProgress}},
		{name: "single letter r", input: "r", want: []Status{StatusRegistered}},
		{name: "upcoming synonym", input: "u", want: []Status{StatusRegistered}},
		{name: "p resolves by substring", input: "p", want: []Status{StatusInProgress}},
		// A short run of letters with no separators reads as independent
		// one-letter abbreviations.
		{name: "fi alone splits per letter", input: "fi", want: []Status{StatusFinished, StatusInProgress}},
		// With separators each token resolves on its own, so "fi" becomes a
		// prefix of "finished".
		{name: "fi with second token", input: "fi reg", want: []Status{StatusFinished, StatusRegistered}},
		{name: "comma separated", input: "fin,reg", want: []Status{StatusFinished, StatusRegistered}},
		{name: "comma and space", input: "in_progress, finished", want: []Status{StatusInProgress, StatusFinished}},
		{name: "duplicates collapse", input: "ff", want: []Status{StatusFinished}},
		{name: "mixed case", input: "FIN", want: []Status{StatusFinished}},
		{name: "unknown token dropped", input: "xyz", want: nil, wantDropped: []string{"xyz"}},
		{name: "unknown letter dropped", input: "z", want: nil, wantDropped: []string{"z"}},
		{name: "known and unknown", input: "fin zz", want: []Status{StatusFinished}, wantDropped: []string{"zz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := ParseStatuses(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseStatuses(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !reflect.DeepEqual(dropped, tt.wantDropped) {
				t.Fatalf("ParseStatuses(%q) dropped = %v, want %v", tt.input, dropped, tt.wantDropped)
			}
		})
	}
}

func TestParseStatusListPreservesEncounterOrder(t *testing.T) {
	got, dropped := ParseStatusList([]string{"reg", "fin", "reg"})
	want := []Status{StatusRegistered, StatusFinished}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(dropped) != 0 {
		t.Fatalf("unexpected dropped tokens: %v", dropped)
	}
}

func TestDefaultStatuses(t *testing.T) {
	want := []Status{StatusInProgress, StatusRegistered}
	if got := DefaultStatuses(); !reflect.DeepEqual(got, want) {
		t.Fatalf("DefaultStatuses() = %v, want %v", got, want)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range CanonicalStatuses() {
		if !s.Valid() {
			t.Fatalf("canonical status %q reported invalid", s)
		}
	}
	if Status("cancelled").Valid() {
		t.Fatal("unexpected valid status")
	}
}
