package codegen

import (
	"github.com/msmat0/quickfixj/orchestra"
)

// Index holds id-keyed lookup tables for fields, components and groups, and
// a name-keyed table for code sets. All traversal resolves member references
// through an Index, which keeps the reference graph flat and re-enterable.
type Index struct {
	fields     map[int]*orchestra.Field
	components map[int]*orchestra.Component
	groups     map[int]*orchestra.Group
	codeSets   map[string]*orchestra.CodeSet
}

// NewIndex builds the lookup tables from the repository's flat collections.
func NewIndex(rep *orchestra.Repository) *Index {
	ix := &Index{
		fields:     make(map[int]*orchestra.Field, len(rep.Fields)),
		components: make(map[int]*orchestra.Component, len(rep.Components)),
		groups:     make(map[int]*orchestra.Group, len(rep.Groups)),
		codeSets:   make(map[string]*orchestra.CodeSet, len(rep.CodeSets)),
	}
	for _, f := range rep.Fields {
		ix.fields[f.ID] = f
	}
	for _, c := range rep.Components {
		ix.components[c.ID] = c
	}
	for _, g := range rep.Groups {
		ix.groups[g.ID] = g
	}
	for _, cs := range rep.CodeSets {
		ix.codeSets[cs.Name] = cs
	}
	return ix
}

// Field resolves a field id.
func (ix *Index) Field(id int) (*orchestra.Field, bool) {
	f, ok := ix.fields[id]
	return f, ok
}

// Component resolves a component id.
func (ix *Index) Component(id int) (*orchestra.Component, bool) {
	c, ok := ix.components[id]
	return c, ok
}

// Group resolves a group id.
func (ix *Index) Group(id int) (*orchestra.Group, bool) {
	g, ok := ix.groups[id]
	return g, ok
}

// CodeSet resolves a code set by name.
func (ix *Index) CodeSet(name string) (*orchestra.CodeSet, bool) {
	cs, ok := ix.codeSets[name]
	return cs, ok
}
