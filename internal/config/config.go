// Package config provides configuration loading and structs for the NyaySetu server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	LLM       LLMConfig       `yaml:"llm"`
	Search    SearchConfig    `yaml:"search"`
	Corpus    CorpusConfig    `yaml:"corpus"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds paths for the record database, vector index, and uploads.
type StorageConfig struct {
	DatabasePath    string `yaml:"database_path"`
	VectorIndexPath string `yaml:"vector_index_path"`
	UploadDir       string `yaml:"upload_dir"`
}

// EmbeddingConfig holds embedding model settings.
type EmbeddingConfig struct {
	OllamaHost string `yaml:"ollama_host"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// LLMConfig holds generative model settings.
type LLMConfig struct {
	OllamaHost string `yaml:"ollama_host"`
	Model      string `yaml:"model"`
}

// SearchConfig holds chunking and retrieval settings.
type SearchConfig struct {
	ChunkSize    int      `yaml:"chunk_size"`
	ChunkOverlap int      `yaml:"chunk_overlap"`
	TopK         int      `yaml:"top_k"`
	Languages    []string `yaml:"languages"`
}

// CorpusConfig holds legal corpus ingestion settings.
type CorpusConfig struct {
	Directory  string   `yaml:"directory"`
	Extensions []string `yaml:"extensions"`
	Watch      bool     `yaml:"watch"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Storage.VectorIndexPath = expandPath(cfg.Storage.VectorIndexPath, configDir)
	cfg.Storage.UploadDir = expandPath(cfg.Storage.UploadDir, configDir)
	if cfg.Corpus.Directory != "" {
		cfg.Corpus.Directory = expandPath(cfg.Corpus.Directory, configDir)
	}

	return &cfg, nil
}

// SupportsLanguage reports whether lang is in the configured language set.
// Unsupported codes are not rejected anywhere; they fall through to English
// prompting. This only drives the /status report.
func (c *Config) SupportsLanguage(lang string) bool {
	for _, l := range c.Search.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
