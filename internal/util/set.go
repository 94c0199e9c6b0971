package util

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a simple unordered collection of comparable elements, backed by a
// map. The grammar toolkit uses it for FIRST/FOLLOW sets; terminal and
// non-terminal membership and nullable-symbol tracking use plain maps.
type Set[E comparable] map[E]bool

// NewSet creates a Set containing the union of every map given.
func NewSet[E comparable](of ...map[E]bool) Set[E] {
	s := Set[E]{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// SetOf creates a Set from the elements of sl.
func SetOf[E comparable](sl []E) Set[E] {
	s := Set[E]{}
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

// Add adds element to the set. Has no effect if it's already present.
func (s Set[E]) Add(element E) {
	s[element] = true
}

// AddAll adds every element of s2 to s.
func (s Set[E]) AddAll(s2 Set[E]) {
	for k := range s2 {
		s.Add(k)
	}
}

// Remove removes element from the set. Has no effect if it isn't present.
func (s Set[E]) Remove(element E) {
	delete(s, element)
}

// Has returns whether element is in the set.
func (s Set[E]) Has(element E) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	return len(s)
}

// Empty returns whether the set has no elements.
func (s Set[E]) Empty() bool {
	return len(s) == 0
}

// Copy returns a new Set with the same elements.
func (s Set[E]) Copy() Set[E] {
	return NewSet(map[E]bool(s))
}

// Union returns a new Set containing every element in s or s2.
func (s Set[E]) Union(s2 Set[E]) Set[E] {
	newSet := s.Copy()
	newSet.AddAll(s2)
	return newSet
}

// Intersection returns a new Set containing only elements in both s and s2.
func (s Set[E]) Intersection(s2 Set[E]) Set[E] {
	newSet := Set[E]{}
	for k := range s {
		if s2.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

// Difference returns a new Set containing elements in s that are not in s2.
func (s Set[E]) Difference(s2 Set[E]) Set[E] {
	newSet := s.Copy()
	for k := range s2 {
		newSet.Remove(k)
	}
	return newSet
}

// DisjointWith returns whether s and s2 share no elements.
func (s Set[E]) DisjointWith(s2 Set[E]) bool {
	for k := range s {
		if s2.Has(k) {
			return false
		}
	}
	return true
}

// Any returns whether any element of s satisfies predicate.
func (s Set[E]) Any(predicate func(v E) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// Elements returns the elements of s in unspecified order.
func (s Set[E]) Elements() []E {
	elems := make([]E, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// Equal returns whether s and o contain the same elements. o must be a
// Set[E] (or *Set[E]) to be considered equal.
func (s Set[E]) Equal(o any) bool {
	other, ok := o.(Set[E])
	if !ok {
		otherPtr, ok := o.(*Set[E])
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// String shows the contents of the set in unspecified order.
func (s Set[E]) String() string {
	var sb strings.Builder
	total := len(s)
	written := 0

	sb.WriteRune('{')
	for k := range s {
		sb.WriteString(fmt.Sprintf("%v", k))
		written++
		if written < total {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// StringOrdered shows the contents of the set sorted by their %v rendering.
func (s Set[E]) StringOrdered() string {
	strs := make([]string, 0, len(s))
	for k := range s {
		strs = append(strs, fmt.Sprintf("%v", k))
	}
	sort.Strings(strs)
	return "{" + strings.Join(strs, ", ") + "}"
}
