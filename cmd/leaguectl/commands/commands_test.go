package commands

import (
	"strings"
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"club":      false,
		"match":     false,
		"player":    false,
		"directory": false,
		"scrape":    false,
	}
	for _, cmd := range rootCmd.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestDirectoryUnknownSeasonFails(t *testing.T) {
	directorySeasonFlag = "Saison 1999"
	defer func() { directorySeasonFlag = "" }()

	if err := directoryCmd.RunE(directoryCmd, nil); err == nil {
		t.Fatal("expected error for unknown season")
	}
}
