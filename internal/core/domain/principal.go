package domain

// Principal is the resolved identity for the current request: the member id
// decoded from the bearer token plus the role tags looked up for it. It is
// built fresh per request by the authentication middleware and never persisted.
type Principal struct {
	MemberID int64
	Roles    []string
}

// HasAnyRole reports whether the principal holds at least one of the given
// role tags.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
