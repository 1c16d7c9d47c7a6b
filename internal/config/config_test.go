package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
debug: true
server:
  host: 0.0.0.0
  port: 9090
storage:
  database_path: ./custom/records.db
  vector_index_path: ./custom/legal.idx
  upload_dir: ./custom/uploads
embedding:
  model: nomic-embed-text
  dimensions: 768
llm:
  model: mistral
search:
  chunk_size: 400
  chunk_overlap: 40
  top_k: 8
  languages: [en, hi]
corpus:
  directory: ./corpus
  watch: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not parsed")
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("server config: %+v", cfg.Server)
	}
	if cfg.Embedding.Model != "nomic-embed-text" || cfg.Embedding.Dimensions != 768 {
		t.Errorf("embedding config: %+v", cfg.Embedding)
	}
	if cfg.LLM.Model != "mistral" {
		t.Errorf("llm config: %+v", cfg.LLM)
	}
	if cfg.Search.ChunkSize != 400 || cfg.Search.ChunkOverlap != 40 || cfg.Search.TopK != 8 {
		t.Errorf("search config: %+v", cfg.Search)
	}
	if !cfg.Corpus.Watch {
		t.Error("corpus watch not parsed")
	}

	configDir := filepath.Dir(path)
	if cfg.Storage.DatabasePath != filepath.Join(configDir, "custom/records.db") {
		t.Errorf("database path not expanded relative to config dir: %s", cfg.Storage.DatabasePath)
	}
	if cfg.Corpus.Directory != filepath.Join(configDir, "corpus") {
		t.Errorf("corpus dir not expanded relative to config dir: %s", cfg.Corpus.Directory)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: false\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("default server config: %+v", cfg.Server)
	}
	if cfg.Embedding.Model != "all-minilm" || cfg.Embedding.Dimensions != 384 {
		t.Errorf("default embedding config: %+v", cfg.Embedding)
	}
	if cfg.LLM.Model != "llama3.2" {
		t.Errorf("default llm model: %q", cfg.LLM.Model)
	}
	if cfg.Search.ChunkSize != 500 || cfg.Search.ChunkOverlap != 50 || cfg.Search.TopK != 5 {
		t.Errorf("default search config: %+v", cfg.Search)
	}
	wantLangs := []string{"en", "hi", "mr"}
	if len(cfg.Search.Languages) != len(wantLangs) {
		t.Fatalf("default languages: %v", cfg.Search.Languages)
	}
	for i, l := range wantLangs {
		if cfg.Search.Languages[i] != l {
			t.Errorf("default language %d: got %q, want %q", i, cfg.Search.Languages[i], l)
		}
	}
	wantExts := []string{".pdf", ".txt", ".docx"}
	for i, e := range wantExts {
		if cfg.Corpus.Extensions[i] != e {
			t.Errorf("default extension %d: got %q, want %q", i, cfg.Corpus.Extensions[i], e)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "server: [not a map")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSupportsLanguage(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	for _, lang := range []string{"en", "hi", "mr"} {
		if !cfg.SupportsLanguage(lang) {
			t.Errorf("expected %q to be supported", lang)
		}
	}
	if cfg.SupportsLanguage("fr") {
		t.Error("fr must not be supported by default")
	}
}
