package pedagogy

import (
	"fmt"
	"slices"
	"strings"
)

// ReasonRequests is the group of requests made for one reason.
type ReasonRequests struct {
	Reason   string
	Requests []Request
}

// RequestSet collects the requests the pedagogical layer produced in one
// decision, grouped by reason. Reasons keep their insertion order.
// A RequestSet is not safe for concurrent use.
type RequestSet struct {
	reasons  []string
	byReason map[string][]Request
}

// NewRequestSet returns an empty set.
func NewRequestSet() *RequestSet {
	return &RequestSet{byReason: make(map[string][]Request)}
}

// Add appends req under reason.
func (s *RequestSet) Add(reason string, req Request) {
	if _, ok := s.byReason[reason]; !ok {
		s.reasons = append(s.reasons, reason)
	}
	s.byReason[reason] = append(s.byReason[reason], req)
}

// Groups returns the requests grouped by reason, in insertion order.
func (s *RequestSet) Groups() []ReasonRequests {
	groups := make([]ReasonRequests, 0, len(s.reasons))
	for _, r := range s.reasons {
		groups = append(groups, ReasonRequests{Reason: r, Requests: slices.Clone(s.byReason[r])})
	}
	return groups
}

// Len returns the total number of requests.
func (s *RequestSet) Len() int {
	n := 0
	for _, reqs := range s.byReason {
		n += len(reqs)
	}
	return n
}

// IsEmpty reports whether the set holds no requests.
func (s *RequestSet) IsEmpty() bool { return s.Len() == 0 }

func (s *RequestSet) String() string {
	var b strings.Builder
	b.WriteString("[PedagogicalRequest: ")
	for i, r := range s.reasons {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = %v", r, s.byReason[r])
	}
	b.WriteString("]")
	return b.String()
}
