package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_StartsAtVersionOne(t *testing.T) {
	doc := NewDocument("Worldview Framework", DocTypeWorldview, "# Worldview")

	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, DocTypeWorldview, doc.Type)
	assert.Empty(t, doc.History)
}

func TestSetContent_SnapshotsHistory(t *testing.T) {
	doc := NewDocument("Negotiation Heuristics", DocTypeHeuristic, "v1 content")

	doc.SetContent("v2 content", "test update")

	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, "v2 content", doc.Content)
	require.Len(t, doc.History, 1)
	assert.Equal(t, 1, doc.History[0].Version)
	assert.Equal(t, "v1 content", doc.History[0].Content)
	assert.Equal(t, "test update", doc.History[0].Reason)
}

func TestAppendInsight_SingleVersionBump(t *testing.T) {
	doc := NewDocument("Playbook", DocTypePlaybook, "# Base")

	doc.AppendInsight("Prefer convex payoffs", "book notes")

	assert.Equal(t, 2, doc.Version)
	assert.Contains(t, doc.Content, "Prefer convex payoffs")
	assert.Contains(t, doc.Content, "**Source:** book notes")
	require.Len(t, doc.History, 1)
}

func TestAppendInsight_NoSource(t *testing.T) {
	doc := NewDocument("Playbook", DocTypePlaybook, "")

	doc.AppendInsight("insight", "")

	assert.NotContains(t, doc.Content, "**Source:**")
	assert.Equal(t, "Added insight", doc.History[0].Reason)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := NewDocument("Targets", DocTypeTargets, "hit list")
	doc.SetContent("updated", "why not")
	doc.AddCrossRef("Worldview Framework", "informs")
	doc.MarkUsage("planning session")

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got Document
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, doc.Name, got.Name)
	assert.Equal(t, doc.Version, got.Version)
	assert.Equal(t, doc.Content, got.Content)
	assert.Len(t, got.History, 1)
	assert.Equal(t, []string{"Worldview Framework"}, got.Related())
	assert.Equal(t, 1, got.UsageCount)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "worldview_framework", Slug("Worldview Framework"))
	assert.Equal(t, "a_b", Slug("  A B  "))
}

func TestTaskSpec_IsZero(t *testing.T) {
	assert.True(t, TaskSpec{}.IsZero())
	assert.False(t, TaskSpec{Priority: "high"}.IsZero())
	assert.False(t, TaskSpec{Inputs: []string{"time"}}.IsZero())
}

func TestProtocol_PathDeps(t *testing.T) {
	p := NewProtocol("execution_protocol", []string{"setup"}, Gate{GateRequiresPlanning: true})
	p.AddDependency("planning_protocol", DepPath)
	p.AddDependency("preparation_protocol", DepPath)
	p.AddDependency("review_protocol", DepCircular)

	assert.Equal(t, []string{"planning_protocol", "preparation_protocol"}, p.PathDeps())
	assert.Equal(t, StatusNotStarted, p.Status)
}
