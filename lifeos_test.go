package lifeos

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/config"
	"github.com/aretw0/lifeos/internal/intel"
	"github.com/aretw0/lifeos/pkg/adapters/memory"
	"github.com/aretw0/lifeos/pkg/domain"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	sys, err := New(t.TempDir(), WithStore(memory.NewStore()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })
	return sys
}

func TestNew_SeedsFoundationalDocuments(t *testing.T) {
	sys := newTestSystem(t)
	ctx := context.Background()

	worldview, err := sys.Documents().Get(ctx, intel.WorldviewDocument)
	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeWorldview, worldview.Type)
	assert.Contains(t, worldview.Content, "Barbell Strategy")

	negotiation, err := sys.Documents().Get(ctx, "Negotiation Heuristics")
	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeHeuristic, negotiation.Type)
}

func TestNew_SeedsAreIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	sys, err := New(t.TempDir(), WithStore(store))
	require.NoError(t, err)

	doc, err := sys.Documents().AddInsight(ctx, intel.WorldviewDocument, "hard-won lesson", "test")
	require.NoError(t, err)
	require.Equal(t, 2, doc.Version)

	sys2, err := New(t.TempDir(), WithStore(store))
	require.NoError(t, err)

	doc, err = sys2.Documents().Get(ctx, intel.WorldviewDocument)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version, "existing documents survive re-initialization")
}

func TestNew_DefaultAgents(t *testing.T) {
	sys := newTestSystem(t)

	names := sys.Agents().Factory().Names()
	assert.Len(t, names, 3)

	for _, name := range names {
		a, err := sys.Agents().Factory().Get(name)
		require.NoError(t, err)
		assert.True(t, a.Connected(), "agent %s should be wired to documents and protocols", name)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "etcd"

	_, err := New(t.TempDir(), WithConfig(cfg))
	assert.Error(t, err)
}

func TestDailyRoutine_FullCycle(t *testing.T) {
	sys := newTestSystem(t)

	result := sys.DailyRoutine(context.Background())

	require.NotNil(t, result.Briefing)
	require.NotNil(t, result.Strategy)
	require.NotNil(t, result.Execution)
	assert.NotEmpty(t, result.Date)
	assert.Greater(t, result.Execution.TotalTasks, 0)
	assert.NotEmpty(t, result.Evolutions)
	assert.Equal(t, "excellent", result.Health["overall_health"])

	assert.Same(t, result, sys.LastRoutine())
}

func TestDailyRoutine_EvolvesWorldview(t *testing.T) {
	sys := newTestSystem(t)
	ctx := context.Background()

	sys.DailyRoutine(ctx)

	doc, err := sys.Documents().Get(ctx, intel.WorldviewDocument)
	require.NoError(t, err)
	assert.Greater(t, doc.Version, 1, "significant frontier changes feed the worldview")
}

func TestCheckWings(t *testing.T) {
	sys := newTestSystem(t)

	reports := sys.CheckWings(context.Background())

	assert.Len(t, reports, 5)
	assert.Contains(t, reports, "financial")
}

func TestScheduler_Wiring(t *testing.T) {
	sys := newTestSystem(t)

	sched := sys.Scheduler()
	require.NoError(t, sched.Start())
	defer sched.Stop()

	assert.True(t, sched.Running())
}

func TestHealth(t *testing.T) {
	sys := newTestSystem(t)

	health := sys.Health()

	assert.Equal(t, 3, health["agent_count"])
	assert.Equal(t, 2, health["document_count"])
	assert.Contains(t, health, "intel_branch")
	assert.Contains(t, health, "wings")
}

func TestNew_EncryptedAndMaskedStore(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Store.Backend = "memory"
	cfg.Store.EncryptionKey = base64.StdEncoding.EncodeToString(key)
	cfg.Store.PIIPatterns = []string{`\b\d{3}-\d{2}-\d{4}\b`}

	sys, err := New(t.TempDir(), WithConfig(cfg))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })

	ctx := context.Background()
	doc, err := sys.Documents().AddInsight(ctx, "Negotiation Heuristics",
		"Recruiter shared SSN 123-45-6789 by mistake", "call_notes")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version)

	stored, err := sys.Documents().Get(ctx, "Negotiation Heuristics")
	require.NoError(t, err)
	assert.NotContains(t, stored.Content, "123-45-6789")
	assert.Contains(t, stored.Content, "***")
}

func TestNew_RejectsBadEncryptionKey(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "memory"
	cfg.Store.EncryptionKey = base64.StdEncoding.EncodeToString([]byte("short"))

	_, err := New(t.TempDir(), WithConfig(cfg))
	assert.ErrorContains(t, err, "32 bytes")
}

func TestNew_RegistersCustomProtocols(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "protocols.yaml"), []byte(`
negotiation_protocol:
  steps:
    - Research counterpart position
    - Anchor first
  gate:
    requires_intel: true
  dependencies:
    - protocol: planning_protocol
      type: path
`), 0644))

	sys, err := New(dir, WithStore(memory.NewStore()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })

	p, err := sys.Protocols().Get("negotiation_protocol")
	require.NoError(t, err)
	assert.Len(t, p.Steps, 2)
	assert.Equal(t, []string{"planning_protocol"}, p.PathDeps())
}
