package catalog

// Contributor produces works. It holds no references to its works; they are
// looked up in the owning registry on every call.
type Contributor struct {
	id       ContributorID
	name     string
	registry *Registry
}

// ID returns the contributor's identifier.
func (c *Contributor) ID() ContributorID {
	return c.id
}

// Name returns the contributor's name.
func (c *Contributor) Name() string {
	return c.name
}

// Works returns the works authored by c, in creation order.
func (c *Contributor) Works() []*Work {
	if c == nil || c.registry == nil {
		return nil
	}
	return c.registry.worksByAuthor(c)
}

// Publications returns the distinct publications c has works in, in order of
// first appearance.
func (c *Contributor) Publications() []*Publication {
	return distinct(c.Works(), (*Work).Publication)
}

// AddWork creates a work by c in p.
func (c *Contributor) AddWork(p *Publication, title string) (*Work, error) {
	if c == nil || c.registry == nil {
		return nil, reject(invalid("work", "author", "was not created by a registry"))
	}
	if err := c.registry.checkPublication(p); err != nil {
		return nil, reject(err)
	}
	return c.registry.NewWork(c, p, title)
}

// TopicAreas returns the distinct categories of the publications c has works
// in. The bool is false when c has no publications.
func (c *Contributor) TopicAreas() ([]string, bool) {
	categories := distinct(c.Publications(), (*Publication).Category)
	if len(categories) == 0 {
		return nil, false
	}
	return categories, true
}

// distinct maps items through key and drops repeats, keeping first-appearance
// order.
func distinct[T any, K comparable](items []T, key func(T) K) []K {
	var out []K
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
