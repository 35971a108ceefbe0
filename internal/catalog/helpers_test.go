package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// === Helper Functions ===

func newTestContributor(t *testing.T, r *Registry, name string) *Contributor {
	t.Helper()
	c, err := r.NewContributor(name)
	require.NoError(t, err)
	return c
}

func newTestPublication(t *testing.T, r *Registry, name, category string) *Publication {
	t.Helper()
	p, err := r.NewPublication(name, category)
	require.NoError(t, err)
	return p
}

func addTestWork(t *testing.T, c *Contributor, p *Publication, title string) *Work {
	t.Helper()
	w, err := c.AddWork(p, title)
	require.NoError(t, err)
	return w
}

// addTestWorks adds n works by c to p with distinct titles.
func addTestWorks(t *testing.T, c *Contributor, p *Publication, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		addTestWork(t, c, p, "Work number "+string(rune('A'+i)))
	}
}

func requireValidation(t *testing.T, err error, entity, field string) {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, entity, verr.Entity)
	require.Equal(t, field, verr.Field)
}
