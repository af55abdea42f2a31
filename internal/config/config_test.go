package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/config"
	"github.com/aretw0/lifeos/internal/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), logging.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "0 6 * * *", cfg.Schedule.Daily)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lifeos.yaml", `
data_dir: /var/lifeos
log_level: debug
http_addr: ":9999"
store:
  backend: redis
  redis:
    address: localhost:6379
    db: 2
`)

	cfg, err := config.Load(dir, logging.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "/var/lifeos", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Address)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	// Untouched sections keep their defaults.
	assert.Equal(t, "0 6 * * *", cfg.Schedule.Daily)
}

func TestLoad_ParseErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lifeos.yaml", "store: [not a map")

	_, err := config.Load(dir, logging.NewNop())
	assert.Error(t, err)
}

func TestLoadAgents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "agents.yaml", `
market_scanner:
  role: Intelligence Scout
  instructions: Scan frontiers for asymmetric opportunities.
  capabilities:
    - frontier_scanning
    - opportunity_detection
`)

	agents := config.LoadAgents(dir, logging.NewNop())
	require.Len(t, agents, 1)
	assert.Equal(t, "Intelligence Scout", agents["market_scanner"].Role)
	assert.Len(t, agents["market_scanner"].Capabilities, 2)
}

func TestLoadAgents_MissingFileYieldsEmpty(t *testing.T) {
	agents := config.LoadAgents(t.TempDir(), logging.NewNop())
	assert.Empty(t, agents)
}

func TestLoadTasks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tasks.yaml", `
weekly_review:
  priority: high
  frequency: weekly
  success_criteria:
    completed: Review finished with notes captured
  inputs: [calendar, journal]
  outputs: [review_notes]
  assigned_agent: planner
bad_task:
  priority: [this, should, be, a, string]
`)

	tasks := config.LoadTasks(dir, logging.NewNop())
	require.Contains(t, tasks, "weekly_review")
	assert.NotContains(t, tasks, "bad_task")

	spec := tasks["weekly_review"]
	assert.Equal(t, "weekly_review", spec.Name)
	assert.Equal(t, "high", spec.Priority)
	assert.Equal(t, "weekly", spec.Frequency)
	assert.Equal(t, []string{"calendar", "journal"}, spec.Inputs)
	assert.Equal(t, "planner", spec.AssignedAgent)
}

func TestLoadProtocols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "protocols.yaml", `
negotiation_protocol:
  steps:
    - Research counterpart position
    - Define walk-away point
    - Anchor first
  gate:
    requires_intel: true
    requires_clear_objective: true
  dependencies:
    - protocol: planning_protocol
      type: path
    - protocol: preparation_protocol
      type: circular
`)

	protocols := config.LoadProtocols(dir, logging.NewNop())
	require.Contains(t, protocols, "negotiation_protocol")

	spec := protocols["negotiation_protocol"]
	assert.Len(t, spec.Steps, 3)
	assert.True(t, spec.Gate["requires_intel"])
	require.Len(t, spec.Dependencies, 2)
	assert.Equal(t, "planning_protocol", spec.Dependencies[0].Protocol)
	assert.Equal(t, "path", spec.Dependencies[0].Type)
}

func TestLoadProtocols_MissingFileYieldsEmpty(t *testing.T) {
	protocols := config.LoadProtocols(t.TempDir(), logging.NewNop())
	assert.Empty(t, protocols)
}
