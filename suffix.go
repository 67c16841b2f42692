// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "sync/atomic"

// Suffixes controls how lifecycle action types derive from a base type.
// Derivation is plain concatenation.
type Suffixes struct {
	Request string
	Reject  string
	Resolve string
}

// DefaultSuffixes is the configuration used when no override is given.
var DefaultSuffixes = Suffixes{
	Request: "_REQUEST",
	Reject:  "_FAIL",
	Resolve: "",
}

// Configure returns DefaultSuffixes with every non-empty argument applied.
// Empty arguments keep the default for that suffix.
func Configure(request, reject, resolve string) Suffixes {
	return DefaultSuffixes.Override(Suffixes{Request: request, Reject: reject, Resolve: resolve})
}

// Override returns s with the non-empty fields of o applied.
func (s Suffixes) Override(o Suffixes) Suffixes {
	if o.Request != "" {
		s.Request = o.Request
	}
	if o.Reject != "" {
		s.Reject = o.Reject
	}
	if o.Resolve != "" {
		s.Resolve = o.Resolve
	}
	return s
}

// RequestType returns t with the request suffix appended.
func (s Suffixes) RequestType(t string) string { return t + s.Request }

// RejectType returns t with the reject suffix appended.
func (s Suffixes) RejectType(t string) string { return t + s.Reject }

// ResolveType returns t with the resolve suffix appended.
func (s Suffixes) ResolveType(t string) string { return t + s.Resolve }

// latest is the configuration of the most recently constructed middleware.
// Middleware instances never read it; only the package-level helpers do.
var latest atomic.Pointer[Suffixes]

func publish(s Suffixes) {
	latest.Store(&s)
}

func current() Suffixes {
	if s := latest.Load(); s != nil {
		return *s
	}
	return DefaultSuffixes
}

// RequestType derives the REQUEST type of t using the suffixes of the most
// recently constructed middleware, or the defaults.
func RequestType(t string) string { return current().RequestType(t) }

// RejectType derives the FAILURE type of t using the suffixes of the most
// recently constructed middleware, or the defaults.
func RejectType(t string) string { return current().RejectType(t) }

// ResolveType derives the SUCCESS type of t using the suffixes of the most
// recently constructed middleware, or the defaults.
func ResolveType(t string) string { return current().ResolveType(t) }
