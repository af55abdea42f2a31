// Package config loads the YAML configuration files that drive the
// system: lifeos.yaml for runtime settings, agents.yaml for the agent
// network, and tasks.yaml for task definitions fed to the go/no-go
// checker. Missing files are not fatal; each loader logs a warning and
// returns an empty section so the system can run on defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/lifeos/pkg/domain"
)

// RedisConfig holds connection settings for the redis document store.
type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Backend string      `yaml:"backend"` // file | memory | redis
	Redis   RedisConfig `yaml:"redis"`

	// EncryptionKey enables at-rest encryption of documents when set.
	// Base64 encoding of a 32 byte AES-256 key.
	EncryptionKey string `yaml:"encryption_key"`

	// FallbackKeys are previous encryption keys, tried in order during
	// decryption so keys can rotate without downtime.
	FallbackKeys []string `yaml:"fallback_keys"`

	// PIIPatterns are regular expressions masked out of document
	// content and metadata before persistence.
	PIIPatterns []string `yaml:"pii_patterns"`
}

// ScheduleConfig holds cron expressions for the routine scheduler.
type ScheduleConfig struct {
	Daily string `yaml:"daily"`
	Wings string `yaml:"wings"`
}

// Config is the top-level runtime configuration (lifeos.yaml).
type Config struct {
	DataDir  string         `yaml:"data_dir"`
	LogLevel string         `yaml:"log_level"`
	Store    StoreConfig    `yaml:"store"`
	HTTPAddr string         `yaml:"http_addr"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// AgentSpec describes one agent in agents.yaml.
type AgentSpec struct {
	Role         string   `yaml:"role"`
	Instructions string   `yaml:"instructions"`
	Capabilities []string `yaml:"capabilities"`
}

// ProtocolSpec describes one protocol in protocols.yaml.
type ProtocolSpec struct {
	Steps        []string         `yaml:"steps"`
	Gate         domain.Gate      `yaml:"gate"`
	Dependencies []DependencySpec `yaml:"dependencies"`
}

// DependencySpec names one dependency edge in protocols.yaml.
type DependencySpec struct {
	Protocol string `yaml:"protocol"`
	Type     string `yaml:"type"` // path | circular | scale
}

// Default returns the configuration used when lifeos.yaml is absent.
func Default() Config {
	return Config{
		DataDir:  filepath.Join(".lifeos", "documents"),
		LogLevel: "info",
		Store:    StoreConfig{Backend: "file"},
		HTTPAddr: ":8080",
		Schedule: ScheduleConfig{
			Daily: "0 6 * * *",
			Wings: "0 * * * *",
		},
	}
}

// Load reads lifeos.yaml from dir. A missing file yields the defaults; a
// parse error is returned to the caller since a present but broken main
// config should not be silently ignored.
func Load(dir string, logger *slog.Logger) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "lifeos.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("configuration file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadAgents reads agents.yaml from dir. Missing or broken files log and
// yield an empty map.
func LoadAgents(dir string, logger *slog.Logger) map[string]AgentSpec {
	agents := map[string]AgentSpec{}
	loadSection(filepath.Join(dir, "agents.yaml"), &agents, logger)
	return agents
}

// LoadProtocols reads protocols.yaml from dir. Missing or broken files
// log and yield an empty map.
func LoadProtocols(dir string, logger *slog.Logger) map[string]ProtocolSpec {
	protocols := map[string]ProtocolSpec{}
	loadSection(filepath.Join(dir, "protocols.yaml"), &protocols, logger)
	return protocols
}

// LoadTasks reads tasks.yaml from dir and decodes each entry into a
// domain.TaskSpec. Missing or broken files log and yield an empty map.
func LoadTasks(dir string, logger *slog.Logger) map[string]domain.TaskSpec {
	raw := map[string]map[string]any{}
	loadSection(filepath.Join(dir, "tasks.yaml"), &raw, logger)

	tasks := make(map[string]domain.TaskSpec, len(raw))
	for name, fields := range raw {
		var spec domain.TaskSpec
		if err := mapstructure.Decode(fields, &spec); err != nil {
			logger.Warn("skipping malformed task", "task", name, "err", err)
			continue
		}
		if spec.Name == "" {
			spec.Name = name
		}
		tasks[name] = spec
	}
	return tasks
}

func loadSection(path string, out any, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("configuration file not found", "path", path)
		} else {
			logger.Warn("failed to read configuration file", "path", path, "err", err)
		}
		return
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		logger.Warn("failed to parse configuration file", "path", path, "err", err)
	}
}
