package domain

import (
	"fmt"
	"strings"
)

// Registry is an ordered set of domains keyed by ID.
type Registry struct {
	domains []Domain
}

// NewRegistry creates a registry holding domains in the given order. Later
// entries replace earlier ones with the same ID.
func NewRegistry(domains ...Domain) *Registry {
	r := &Registry{}
	r.Merge(domains...)
	return r
}

// Merge adds domains, replacing any existing domain with the same ID in
// place and appending new ones.
func (r *Registry) Merge(domains ...Domain) {
	for _, d := range domains {
		replaced := false
		for i := range r.domains {
			if strings.EqualFold(r.domains[i].ID, d.ID) {
				r.domains[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			r.domains = append(r.domains, d)
		}
	}
}

// All returns the domains in menu order.
func (r *Registry) All() []Domain {
	out := make([]Domain, len(r.domains))
	copy(out, r.domains)
	return out
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	return len(r.domains)
}

// Lookup finds a domain by ID, ignoring case.
func (r *Registry) Lookup(id string) (Domain, error) {
	for _, d := range r.domains {
		if strings.EqualFold(d.ID, id) {
			return d, nil
		}
	}
	return Domain{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownDomain, id, strings.Join(r.IDs(), ", "))
}

// IDs returns the registered domain IDs in menu order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.domains))
	for i, d := range r.domains {
		ids[i] = d.ID
	}
	return ids
}
