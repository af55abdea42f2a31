package intel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/aretw0/lifeos/pkg/domain"
)

// WebScanner fetches one page and turns its first headline anchors into
// frontier updates. It is a best-effort live feed; the detector degrades
// its failures to a single "scan failed" entry.
type WebScanner struct {
	domainName string
	url        string
	client     *http.Client
}

// NewWebScanner creates a scanner for the given frontier domain backed by
// the URL. The HTTP client enforces a 10 second timeout.
func NewWebScanner(domainName, url string) *WebScanner {
	return &WebScanner{
		domainName: domainName,
		url:        url,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Domain returns the frontier domain this scanner covers.
func (w *WebScanner) Domain() string { return w.domainName }

// Scan performs one bounded GET and extracts up to two anchor texts as
// updates.
func (w *WebScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", w.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, w.url)
	}

	headlines := anchorTexts(resp.Body, 2)
	if len(headlines) == 0 {
		return nil, fmt.Errorf("no headlines found at %s", w.url)
	}

	updates := make([]domain.FrontierUpdate, 0, len(headlines))
	for _, h := range headlines {
		updates = append(updates, domain.FrontierUpdate{
			Area:         w.domainName,
			Description:  h,
			Significance: 0.5, // Live headlines need human triage.
			Timeline:     "unknown",
		})
	}
	return updates, nil
}

// anchorTexts streams the HTML and collects the first n non-empty anchor
// texts.
func anchorTexts(r io.Reader, n int) []string {
	var texts []string
	tokenizer := html.NewTokenizer(r)
	inAnchor := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed document; keep what we have.
			return texts
		case html.StartTagToken:
			if name, _ := tokenizer.TagName(); string(name) == "a" {
				inAnchor = true
			}
		case html.EndTagToken:
			if name, _ := tokenizer.TagName(); string(name) == "a" {
				inAnchor = false
			}
		case html.TextToken:
			if !inAnchor {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			texts = append(texts, text)
			if len(texts) >= n {
				return texts
			}
		}
	}
}
