package catalog

import "github.com/google/uuid"

// ContributorID uniquely identifies a contributor (UUID v4).
type ContributorID string

// PublicationID uniquely identifies a publication (UUID v4).
type PublicationID string

// WorkID uniquely identifies a work (UUID v4).
type WorkID string

func newContributorID() ContributorID { return ContributorID(uuid.New().String()) }
func newPublicationID() PublicationID { return PublicationID(uuid.New().String()) }
func newWorkID() WorkID               { return WorkID(uuid.New().String()) }

func (id ContributorID) String() string { return string(id) }
func (id PublicationID) String() string { return string(id) }
func (id WorkID) String() string        { return string(id) }

// IsValid returns true if the ID is a well-formed UUID.
func (id ContributorID) IsValid() bool { return isUUID(string(id)) }

// IsValid returns true if the ID is a well-formed UUID.
func (id PublicationID) IsValid() bool { return isUUID(string(id)) }

// IsValid returns true if the ID is a well-formed UUID.
func (id WorkID) IsValid() bool { return isUUID(string(id)) }

func isUUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
