package catalog

import (
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/zjrosen/masthead/internal/log"
)

// DefaultFrequentThreshold is the work count a contributor must exceed to be
// reported by Publication.FrequentContributors.
const DefaultFrequentThreshold = 2

// Length bounds, in Unicode code points, inclusive.
const (
	MinPublicationNameLen = 2
	MaxPublicationNameLen = 16
	MinWorkTitleLen       = 5
	MaxWorkTitleLen       = 50
)

// Option configures a Registry.
type Option func(*Registry)

// WithFrequentThreshold sets the threshold used by
// Publication.FrequentContributors.
func WithFrequentThreshold(n int) Option {
	return func(r *Registry) {
		r.frequentThreshold = n
	}
}

// Registry is the append-only store of publications and works.
//
// Works are additionally indexed by author and by publication as they are
// inserted; the indexes hold works in creation order, so every derived query
// returns exactly what a full scan of the work list would. A single RWMutex
// guards both the append path and every read used by a query.
type Registry struct {
	mu sync.RWMutex

	publications []*Publication
	works        []*Work

	byAuthor      map[*Contributor][]*Work
	byPublication map[*Publication][]*Work

	frequentThreshold int
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byAuthor:          make(map[*Contributor][]*Work),
		byPublication:     make(map[*Publication][]*Work),
		frequentThreshold: DefaultFrequentThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FrequentThreshold returns the default threshold for FrequentContributors.
func (r *Registry) FrequentThreshold() int {
	return r.frequentThreshold
}

// Publications returns every registered publication in creation order.
func (r *Registry) Publications() []*Publication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.publications)
}

// Works returns every registered work in creation order.
func (r *Registry) Works() []*Work {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.works)
}

// TopPublisher returns the publication referenced by the most works.
// Publications without works count as zero. Ties go to the publication
// registered first. Returns false when no publication is registered.
func (r *Registry) TopPublisher() (*Publication, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var top *Publication
	best := -1
	for _, p := range r.publications {
		if n := len(r.byPublication[p]); n > best {
			top, best = p, n
		}
	}
	return top, top != nil
}

// NewContributor creates a contributor bound to this registry.
func (r *Registry) NewContributor(name string) (*Contributor, error) {
	if name == "" {
		return nil, reject(invalid("contributor", "name", "must be a non-empty string"))
	}

	c := &Contributor{id: newContributorID(), name: name, registry: r}
	log.Debug(log.CatCatalog, "contributor created", "id", c.id, "name", name)
	return c, nil
}

// NewPublication creates a publication and appends it to the registry.
func (r *Registry) NewPublication(name, category string) (*Publication, error) {
	if n := utf8.RuneCountInString(name); n < MinPublicationNameLen || n > MaxPublicationNameLen {
		return nil, reject(invalid("publication", "name",
			"must be between %d and %d characters, got %d", MinPublicationNameLen, MaxPublicationNameLen, n))
	}
	if category == "" {
		return nil, reject(invalid("publication", "category", "must be a non-empty string"))
	}

	p := &Publication{id: newPublicationID(), name: name, category: category, registry: r}

	r.mu.Lock()
	r.publications = append(r.publications, p)
	r.mu.Unlock()

	log.Debug(log.CatCatalog, "publication created", "id", p.id, "name", name, "category", category)
	return p, nil
}

// NewWork creates a work joining author and p and appends it to the registry.
// Both author and p must have been created by this registry.
func (r *Registry) NewWork(author *Contributor, p *Publication, title string) (*Work, error) {
	if err := r.checkAuthor(author); err != nil {
		return nil, reject(err)
	}
	if err := r.checkPublication(p); err != nil {
		return nil, reject(err)
	}
	if n := utf8.RuneCountInString(title); n < MinWorkTitleLen || n > MaxWorkTitleLen {
		return nil, reject(invalid("work", "title",
			"must be between %d and %d characters, got %d", MinWorkTitleLen, MaxWorkTitleLen, n))
	}

	w := &Work{id: newWorkID(), author: author, publication: p, title: title}

	r.mu.Lock()
	r.works = append(r.works, w)
	r.byAuthor[author] = append(r.byAuthor[author], w)
	r.byPublication[p] = append(r.byPublication[p], w)
	r.mu.Unlock()

	log.Debug(log.CatCatalog, "work created",
		"id", w.id, "title", title, "author", author.name, "publication", p.name)
	return w, nil
}

func (r *Registry) checkAuthor(c *Contributor) *ValidationError {
	if c == nil {
		return invalid("work", "author", "is required")
	}
	if c.registry != r {
		return invalid("work", "author", "was not created by this registry")
	}
	return nil
}

func (r *Registry) checkPublication(p *Publication) *ValidationError {
	if p == nil {
		return invalid("work", "publication", "is required")
	}
	if p.registry != r {
		return invalid("work", "publication", "was not created by this registry")
	}
	return nil
}

func (r *Registry) worksByAuthor(c *Contributor) []*Work {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byAuthor[c])
}

func (r *Registry) worksByPublication(p *Publication) []*Work {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byPublication[p])
}

func reject(err *ValidationError) error {
	log.Debug(log.CatCatalog, err.Entity+" rejected", "field", err.Field, "reason", err.Reason)
	return err
}
