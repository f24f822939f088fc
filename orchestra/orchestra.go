// Package orchestra holds the object model of a FIX Orchestra repository:
// the flat collections of fields, components, repeating groups, messages and
// code sets that describe one version of the protocol. A repository is loaded
// once per generation run and treated as read-only afterwards.
package orchestra

// RefKind tags a MemberRef with the collection its id resolves in.
type RefKind uint8

const (
	// FieldRef references a field by id.
	FieldRef RefKind = iota + 1
	// GroupRef references a repeating group by id.
	GroupRef
	// ComponentRef references a component by id.
	ComponentRef
)

// String returns the reference kind name as it appears in the schema.
func (k RefKind) String() string {
	switch k {
	case FieldRef:
		return "fieldRef"
	case GroupRef:
		return "groupRef"
	case ComponentRef:
		return "componentRef"
	default:
		return "unknown"
	}
}

// MemberRef is one entry in a structure's member list. It is a reference,
// never an embedded copy; resolution always goes through lookup tables so
// that cyclic containment through components stays a flat, re-enterable
// reference graph.
type MemberRef struct {
	Kind RefKind
	ID   int
}

// Field is a protocol field: a unique numeric tag, a name and a FIX datatype.
// The datatype may name a code set instead of a primitive type.
type Field struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

// Code is one symbolic value of a code set.
type Code struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// CodeSet is a named enumeration of permitted field values with a declared
// primitive representation.
type CodeSet struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Codes []Code `xml:"code"`
}

// Component is a reusable block of members shared between messages.
type Component struct {
	ID       int
	Name     string
	Category string
	Members  []MemberRef
}

// Group is a repeating group: a component variant with a counter field whose
// value declares the repetition count. Members describe one repetition.
type Group struct {
	ID           int
	Name         string
	Category     string
	NumInGroupID int
	Members      []MemberRef
}

// Message is one message definition. Category "Session" marks protocol
// housekeeping messages. Exactly one scenario per message name is "base";
// other scenarios are named variants.
type Message struct {
	Name     string
	Scenario string
	Category string
	MsgType  string
	Members  []MemberRef
}

// Repository is the schema root.
type Repository struct {
	Version    string       `xml:"version,attr"`
	CodeSets   []*CodeSet   `xml:"codeSets>codeSet"`
	Fields     []*Field     `xml:"fields>field"`
	Components []*Component `xml:"components>component"`
	Groups     []*Group     `xml:"groups>group"`
	Messages   []*Message   `xml:"messages>message"`
}
