package catalog

// Publication groups works under a name and a category.
type Publication struct {
	id       PublicationID
	name     string
	category string
	registry *Registry
}

// ID returns the publication's identifier.
func (p *Publication) ID() PublicationID {
	return p.id
}

// Name returns the publication's name.
func (p *Publication) Name() string {
	return p.name
}

// Category returns the publication's category.
func (p *Publication) Category() string {
	return p.category
}

// Works returns the works published in p, in creation order.
func (p *Publication) Works() []*Work {
	if p == nil || p.registry == nil {
		return nil
	}
	return p.registry.worksByPublication(p)
}

// Contributors returns the distinct authors of p's works, in order of first
// appearance.
func (p *Publication) Contributors() []*Contributor {
	return distinct(p.Works(), (*Work).Author)
}

// WorkTitles returns the titles of p's works in creation order.
// The bool is false when p has no works.
func (p *Publication) WorkTitles() ([]string, bool) {
	works := p.Works()
	if len(works) == 0 {
		return nil, false
	}
	titles := make([]string, len(works))
	for i, w := range works {
		titles[i] = w.title
	}
	return titles, true
}

// FrequentContributors returns the authors with more works in p than the
// registry's frequent threshold.
func (p *Publication) FrequentContributors() ([]*Contributor, bool) {
	threshold := DefaultFrequentThreshold
	if p != nil && p.registry != nil {
		threshold = p.registry.frequentThreshold
	}
	return p.FrequentContributorsAbove(threshold)
}

// FrequentContributorsAbove returns the authors with strictly more than
// threshold works in p, in order of first appearance. The bool is false when
// no author qualifies.
func (p *Publication) FrequentContributorsAbove(threshold int) ([]*Contributor, bool) {
	works := p.Works()
	counts := make(map[*Contributor]int, len(works))
	for _, w := range works {
		counts[w.author]++
	}

	var frequent []*Contributor
	for _, c := range distinct(works, (*Work).Author) {
		if counts[c] > threshold {
			frequent = append(frequent, c)
		}
	}
	if len(frequent) == 0 {
		return nil, false
	}
	return frequent, true
}
