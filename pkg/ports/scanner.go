package ports

import (
	"context"

	"github.com/aretw0/lifeos/pkg/domain"
)

// FrontierScanner produces updates for a single frontier domain.
type FrontierScanner interface {
	// Domain returns the frontier domain this scanner covers, one of
	// domain.FrontierDomains.
	Domain() string

	// Scan collects current updates for the domain. Implementations
	// should honor ctx cancellation; network-backed scanners must not
	// block past the context deadline.
	Scan(ctx context.Context) ([]domain.FrontierUpdate, error)
}
