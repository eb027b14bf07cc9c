package api

import (
	"net/url"

	"adaytakip/internal/storage"
)

// Filter narrows a snapshot to candidates whose listed stage flags are all
// set. It mirrors the dashboard's checkbox filters and is applied over the
// snapshot in the presentation layer; the store itself never filters.
type Filter struct {
	flags []string
}

// ParseFilter reads one query parameter per stage flag; "1" or "true"
// enables that filter. Example: /candidates?invited=1&registered=true.
func ParseFilter(q url.Values) Filter {
	var f Filter
	for _, name := range storage.FlagColumns {
		switch q.Get(name) {
		case "1", "true":
			f.flags = append(f.flags, name)
		}
	}
	return f
}

// Apply returns the candidates matching every enabled flag filter. With no
// filters enabled the snapshot passes through unchanged.
func (f Filter) Apply(candidates []storage.Candidate) []storage.Candidate {
	if len(f.flags) == 0 {
		return candidates
	}
	out := []storage.Candidate{}
	for _, c := range candidates {
		match := true
		for _, name := range f.flags {
			if c.Flag(name) != 1 {
				match = false
				break
			}
		}
		if match {
			out = append(out, c)
		}
	}
	return out
}
