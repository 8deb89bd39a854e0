package browse

import (
	"context"
	"sync"

	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/services/tmdb"
	"github.com/sirupsen/logrus"
)

// PageFetcher retrieves one page of a listing. Implementations never fail;
// an exhausted or broken listing comes back as an empty last page.
type PageFetcher interface {
	FetchPage(ctx context.Context, ep tmdb.Endpoint, page int) models.Page
}

// Mode is how a newly loaded page combines with what is already loaded
type Mode int

const (
	// Append adds the new page after everything loaded so far (grid browsing)
	Append Mode = iota
	// Replace shows only the newest page (carousel window)
	Replace
)

func (m Mode) String() string {
	if m == Replace {
		return "replace"
	}
	return "append"
}

// Pager walks a paginated listing one page at a time.
//
// At most one request is in flight per pager: LoadMore while busy is a
// no-op. Reset and Close start a new generation, and a response belonging to
// an older generation is dropped instead of being applied.
type Pager struct {
	fetcher  PageFetcher
	endpoint tmdb.Endpoint
	mode     Mode
	logger   *logrus.Logger

	mu         sync.Mutex
	items      []models.MediaItem
	page       int // last applied page, 0 before the first load
	totalPages int
	busy       bool
	gen        uint64
	closed     bool
}

// NewPager creates a pager with nothing loaded yet
func NewPager(fetcher PageFetcher, ep tmdb.Endpoint, mode Mode, logger *logrus.Logger) *Pager {
	return &Pager{
		fetcher:    fetcher,
		endpoint:   ep,
		mode:       mode,
		logger:     logger,
		items:      []models.MediaItem{},
		totalPages: 1,
	}
}

// Reset discards everything loaded and loads the first page. It reports
// whether its result was applied; a Reset overtaken by another Reset or by
// Close is not.
func (p *Pager) Reset(ctx context.Context) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.gen++
	gen := p.gen
	p.busy = true
	p.mu.Unlock()

	result := p.fetcher.FetchPage(ctx, p.endpoint, 1)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		p.logDiscard(1)
		return false
	}
	p.items = append([]models.MediaItem{}, result.Items...)
	p.page = 1
	p.totalPages = result.TotalPages
	p.busy = false
	return true
}

// LoadMore fetches the page after the last applied one. It returns false
// without a request when the pager is busy, exhausted or closed, and false
// when the response arrived after a Reset or Close.
func (p *Pager) LoadMore(ctx context.Context) bool {
	p.mu.Lock()
	if p.closed || p.busy || p.page >= p.totalPages {
		p.mu.Unlock()
		return false
	}
	p.busy = true
	gen := p.gen
	next := p.page + 1
	p.mu.Unlock()

	result := p.fetcher.FetchPage(ctx, p.endpoint, next)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		p.logDiscard(next)
		return false
	}

	switch p.mode {
	case Replace:
		p.items = append([]models.MediaItem{}, result.Items...)
	default:
		p.items = append(p.items, result.Items...)
	}
	p.page = next
	p.totalPages = result.TotalPages
	p.busy = false

	p.logger.WithFields(logrus.Fields{
		"endpoint":    p.endpoint.Name,
		"page":        p.page,
		"total_pages": p.totalPages,
		"items":       len(p.items),
	}).Debug("Loaded page")
	return true
}

// Close tears the pager down. Responses still in flight are dropped.
func (p *Pager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.gen++
	p.busy = false
}

// Items returns a copy of the currently loaded items
func (p *Pager) Items() []models.MediaItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.MediaItem, len(p.items))
	copy(out, p.items)
	return out
}

// Page returns the last applied page number, 0 before the first load
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// TotalPages returns the listing's page count as last reported
func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// HasMore reports whether LoadMore would issue a request
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.closed && p.page < p.totalPages
}

// Busy reports whether a request is in flight
func (p *Pager) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

func (p *Pager) logDiscard(page int) {
	p.logger.WithFields(logrus.Fields{
		"endpoint": p.endpoint.Name,
		"page":     page,
	}).Debug("Discarding stale page")
}
