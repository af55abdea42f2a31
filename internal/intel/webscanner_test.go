package intel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/pkg/domain"
)

func TestWebScanner_ExtractsHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/one"> First headline </a>
			<a href="/two">Second headline</a>
			<a href="/three">Third headline</a>
		</body></html>`))
	}))
	defer srv.Close()

	scanner := NewWebScanner(domain.FrontierTechnology, srv.URL)

	updates, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, updates, 2, "only the first two anchors are taken")
	assert.Equal(t, "First headline", updates[0].Description)
	assert.Equal(t, "Second headline", updates[1].Description)
	assert.Equal(t, domain.FrontierTechnology, updates[0].Area)
}

func TestWebScanner_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	scanner := NewWebScanner(domain.FrontierBusiness, srv.URL)

	_, err := scanner.Scan(context.Background())
	assert.Error(t, err)
}

func TestWebScanner_NoAnchors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>nothing to see</p></body></html>`))
	}))
	defer srv.Close()

	scanner := NewWebScanner(domain.FrontierSocial, srv.URL)

	_, err := scanner.Scan(context.Background())
	assert.Error(t, err)
}

func TestWebScanner_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	scanner := NewWebScanner(domain.FrontierEconomics, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.Scan(ctx)
	assert.Error(t, err)
}

func TestWebScanner_DetectorDegradation(t *testing.T) {
	scanner := NewWebScanner(domain.FrontierPolitics, "http://127.0.0.1:1")
	detector := NewFrontierDetector(WithScanner(scanner))

	report := detector.Scan(context.Background())

	updates := report.Updates[domain.FrontierPolitics]
	require.Len(t, updates, 1)
	assert.Contains(t, updates[0].Description, "scan failed")
}
