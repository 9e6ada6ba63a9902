package compiler

import "sort"

// Store is the variable table of one program run. It is owned by the
// run that created it and is not safe for concurrent use.
type Store struct {
	vars map[string]Value
}

func NewStore() *Store {
	return &Store{vars: make(map[string]Value)}
}

func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set overwrites name unconditionally.
func (s *Store) Set(name string, v Value) {
	s.vars[name] = v
}

func (s *Store) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

func (s *Store) Len() int {
	return len(s.vars)
}

// Names returns the variable names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
