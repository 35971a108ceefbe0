// Package catalog models contributors, publications and the works that join
// them.
//
// A Registry owns every publication and work created through it. Works are
// the only way a contributor and a publication become related, and every
// relationship query (a contributor's publications, a publication's
// contributors, the top publisher) is derived from the registry's work list:
// there is no denormalized relationship state on the entities themselves.
//
// Entities are immutable once constructed and are never removed. Construction
// either succeeds and registers the entity, or fails with a *ValidationError
// and leaves the registry untouched.
package catalog
