// Package dsref parses and represents human-readable dataset references.
package dsref

import (
	"regexp"

	"github.com/ONSdigital/dp-qri-client/clienterror"
)

var refPattern = regexp.MustCompile(`^([a-z][a-z0-9_-]*)/([a-z][a-z0-9_-]*)$`)

// Ref identifies one dataset by owner and name. It is a value type: changing
// a field means building a new Ref.
type Ref struct {
	Username string
	Name     string
}

// Parse decomposes s, which must be of the form username/name.
func Parse(s string) (Ref, error) {
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return Ref{}, clienterror.Newf(clienterror.MalformedReference, "could not parse reference %q", s).WithInput(s)
	}
	return Ref{Username: m[1], Name: m[2]}, nil
}

// Human returns the username/name form of the reference.
func (r Ref) Human() string {
	return r.Username + "/" + r.Name
}

func (r Ref) String() string {
	return r.Human()
}

// Clone returns a copy of r.
func (r Ref) Clone() Ref {
	return Ref{Username: r.Username, Name: r.Name}
}

// WithUsername returns a copy of r owned by username, used when a backend
// resolves an alias such as "me".
func (r Ref) WithUsername(username string) Ref {
	c := r.Clone()
	c.Username = username
	return c
}
