// Package testutil builds catalog fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/masthead/internal/catalog"
)

type publicationData struct {
	name     string
	category string
}

// workData references its contributor and publication by name.
type workData struct {
	contributor string
	publication string
	title       string
}

// Builder accumulates fixture data and creates it in the correct order.
type Builder struct {
	t            *testing.T
	opts         []catalog.Option
	publications []publicationData
	contributors []string
	works        []workData
}

// Fixture is a built registry with name lookups for its entities.
type Fixture struct {
	t            *testing.T
	Registry     *catalog.Registry
	publications map[string]*catalog.Publication
	contributors map[string]*catalog.Contributor
}

// NewBuilder creates a builder for a fresh registry.
func NewBuilder(t *testing.T, opts ...catalog.Option) *Builder {
	t.Helper()
	return &Builder{t: t, opts: opts}
}

// WithPublication adds a publication.
func (b *Builder) WithPublication(name, category string) *Builder {
	b.publications = append(b.publications, publicationData{name, category})
	return b
}

// WithContributor adds a contributor. Names must be unique within a fixture.
func (b *Builder) WithContributor(name string) *Builder {
	b.contributors = append(b.contributors, name)
	return b
}

// WithWork adds a work by the named contributor in the named publication.
func (b *Builder) WithWork(contributor, publication, title string) *Builder {
	b.works = append(b.works, workData{contributor, publication, title})
	return b
}

// Build creates all accumulated entities and returns the fixture.
func (b *Builder) Build() *Fixture {
	b.t.Helper()
	f := &Fixture{
		t:            b.t,
		Registry:     catalog.NewRegistry(b.opts...),
		publications: make(map[string]*catalog.Publication),
		contributors: make(map[string]*catalog.Contributor),
	}
	// Create in dependency order: publications → contributors → works
	for _, p := range b.publications {
		pub, err := f.Registry.NewPublication(p.name, p.category)
		require.NoError(b.t, err)
		f.publications[p.name] = pub
	}
	for _, name := range b.contributors {
		_, dup := f.contributors[name]
		require.False(b.t, dup, "duplicate contributor %q in fixture", name)
		c, err := f.Registry.NewContributor(name)
		require.NoError(b.t, err)
		f.contributors[name] = c
	}
	for _, w := range b.works {
		_, err := f.Contributor(w.contributor).AddWork(f.Publication(w.publication), w.title)
		require.NoError(b.t, err)
	}
	return f
}

// Publication returns the fixture publication with the given name.
func (f *Fixture) Publication(name string) *catalog.Publication {
	f.t.Helper()
	p, ok := f.publications[name]
	require.True(f.t, ok, "no publication %q in fixture", name)
	return p
}

// Contributor returns the fixture contributor with the given name.
func (f *Fixture) Contributor(name string) *catalog.Contributor {
	f.t.Helper()
	c, ok := f.contributors[name]
	require.True(f.t, ok, "no contributor %q in fixture", name)
	return c
}
