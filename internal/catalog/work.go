package catalog

// Work is a titled piece by one contributor in one publication.
type Work struct {
	id          WorkID
	author      *Contributor
	publication *Publication
	title       string
}

// ID returns the work's identifier.
func (w *Work) ID() WorkID {
	return w.id
}

// Author returns the contributor who wrote w.
func (w *Work) Author() *Contributor {
	return w.author
}

// Publication returns the publication w appeared in.
func (w *Work) Publication() *Publication {
	return w.publication
}

// Title returns the work's title.
func (w *Work) Title() string {
	return w.title
}
