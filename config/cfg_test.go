package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") returned error: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Profile.Base != ProfileKindUsLetter {
		t.Fatalf("Profile.Base = %v, want usLetter", cfg.Profile.Base)
	}
	if cfg.Vocabulary.RevisionMarker != "*" {
		t.Fatalf("Vocabulary.RevisionMarker = %q, want \"*\"", cfg.Vocabulary.RevisionMarker)
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/cfg.yaml"
	data := []byte(`
version: 1
indent_profile:
  base: 1
vocabulary:
  revision_marker: "#"
logging:
  file:
    level: none
  console:
    level: none
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration(%q) returned error: %v", path, err)
	}
	if cfg.Profile.Base != ProfileKindA4 {
		t.Fatalf("Profile.Base = %v, want a4", cfg.Profile.Base)
	}
	if cfg.Vocabulary.RevisionMarker != "#" {
		t.Fatalf("Vocabulary.RevisionMarker = %q, want \"#\"", cfg.Vocabulary.RevisionMarker)
	}
}

func TestLoadConfigurationRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/cfg.yaml"
	data := []byte("version: 1\nbogus_field: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Fatal("expected error decoding configuration with unknown field")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") returned error: %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Fatalf("dumped config missing version field:\n%s", data)
	}
}

func TestResolveProfileAndVocabulary(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") returned error: %v", err)
	}
	p := cfg.ResolveProfile()
	if p.PageWidth <= 0 {
		t.Fatal("expected positive PageWidth from resolved profile")
	}
	v := cfg.ResolveVocabulary()
	if !v.IsRevisionMarker("*") {
		t.Fatal("expected default revision marker \"*\" to resolve")
	}
}
