package players

import "strings"

// Player is one entry of the provider's static name index.
type Player struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

// Identifier names a player either directly by ID or by a name fragment that
// still has to be resolved. Exactly one of the two is set.
type Identifier struct {
	PlayerID int
	Name     string
}

// ByID builds an Identifier for a known player ID.
func ByID(id int) Identifier {
	return Identifier{PlayerID: id}
}

// ByName builds an Identifier that resolves through the name index.
func ByName(name string) Identifier {
	return Identifier{Name: strings.TrimSpace(name)}
}

// IsByName reports whether the identifier needs name resolution.
func (i Identifier) IsByName() bool {
	return i.Name != ""
}
