package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(store.Settings.Feeds) == 0 {
		t.Error("Expected default feeds, got empty")
	}
	if store.Settings.Feeds[0] != "https://news.ycombinator.com/rss" {
		t.Errorf("Expected default feed, got %s", store.Settings.Feeds[0])
	}
	if store.Settings.Layout.Breakpoint != 100 {
		t.Errorf("Expected default breakpoint 100, got %d", store.Settings.Layout.Breakpoint)
	}
	if store.Settings.KeyMap.Favorite != "f" {
		t.Errorf("Expected default KeyMap.Favorite 'f', got %q", store.Settings.KeyMap.Favorite)
	}
	if store.Settings.KeyMap.Retry != "R" {
		t.Errorf("Expected default KeyMap.Retry 'R', got %q", store.Settings.KeyMap.Retry)
	}
	if store.Settings.Theme.SectionName != "244" {
		t.Errorf("Expected default Theme.SectionName '244', got %q", store.Settings.Theme.SectionName)
	}
	if filepath.Base(store.Settings.FavoritesFile) != "favorites.db" {
		t.Errorf("Expected default favorites db path, got %q", store.Settings.FavoritesFile)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file not created")
	}
}

func TestLoad_ExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := "feeds:\n  - https://example.com/a.xml\n  - https://example.com/b.xml\nlayout:\n  breakpoint: 80\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(store.Settings.Feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(store.Settings.Feeds))
	}
	if store.Settings.Feeds[1] != "https://example.com/b.xml" {
		t.Errorf("Unexpected second feed %q", store.Settings.Feeds[1])
	}
	if store.Settings.Layout.Breakpoint != 80 {
		t.Errorf("Expected breakpoint 80 from file, got %d", store.Settings.Layout.Breakpoint)
	}
}

func TestLoad_NormalizesWhitespaceSeparatedFeeds(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := "feeds:\n  - \"https://a.example/rss https://b.example/rss\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(store.Settings.Feeds) != 2 {
		t.Fatalf("Expected whitespace-separated feeds split into 2, got %v", store.Settings.Feeds)
	}
}
