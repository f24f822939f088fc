package codegen

// FieldKind selects the engine base class a field class extends. The mapping
// from FIX datatype to kind is total; unknown datatypes fall back to
// KindString.
type FieldKind int

const (
	// KindString is the default string-valued field.
	KindString FieldKind = iota
	// KindChar is a single-character field.
	KindChar
	// KindDecimal is a decimal-valued field. Its base class depends on the
	// BigDecimal setting.
	KindDecimal
	// KindInt covers the integer datatype family.
	KindInt
	// KindUTCTimestamp is a date-and-time field.
	KindUTCTimestamp
	// KindUTCTimeOnly is a time-of-day field.
	KindUTCTimeOnly
	// KindUTCDateOnly is a date-only field.
	KindUTCDateOnly
	// KindBoolean is a Y/N field.
	KindBoolean
	// KindDouble is a native floating-point field.
	KindDouble
)

// fieldKinds is the total datatype mapping. The key is the FIX datatype
// after code-set indirection.
var fieldKinds = map[string]FieldKind{
	"char":         KindChar,
	"Price":        KindDecimal,
	"Amt":          KindDecimal,
	"Qty":          KindDecimal,
	"PriceOffset":  KindDecimal,
	"int":          KindInt,
	"NumInGroup":   KindInt,
	"SeqNum":       KindInt,
	"Length":       KindInt,
	"TagNum":       KindInt,
	"DayOfMonth":   KindInt,
	"UTCTimestamp": KindUTCTimestamp,
	"UTCTimeOnly":  KindUTCTimeOnly,
	"LocalMktTime": KindUTCTimeOnly,
	"UTCDateOnly":  KindUTCDateOnly,
	"LocalMktDate": KindUTCDateOnly,
	"Boolean":      KindBoolean,
	"float":        KindDouble,
	"Percentage":   KindDouble,
}

// KindOf maps a FIX datatype name to its field kind.
func KindOf(fixType string) FieldKind {
	if k, ok := fieldKinds[fixType]; ok {
		return k
	}
	return KindString
}

// Temporal reports whether the kind is one of the date/time kinds.
func (k FieldKind) Temporal() bool {
	return k == KindUTCTimestamp || k == KindUTCTimeOnly || k == KindUTCDateOnly
}

// Constant is one named code of a field's code set, typed per the code set's
// declared primitive.
type Constant struct {
	Name  string
	Value string
	// Type is the code set's declared primitive: "Boolean", "char", "int" or
	// anything else for string.
	Type string
}

// FieldClass describes one generated field class.
type FieldClass struct {
	Name       string
	Package    string
	ID         int
	Kind       FieldKind
	BigDecimal bool
	Constants  []Constant
}

// FieldAccessor describes a set/get/isSet accessor block for one field.
type FieldAccessor struct {
	Name string
	ID   int
}

// ComponentAccessor describes a set/get/get-new accessor triplet for a
// nested component or group class.
type ComponentAccessor struct {
	Name    string
	Package string
}

// GroupUnit describes the repeating-unit class nested inside a group-bearing
// class. It is named after the counter field and carries the member field
// ids in declaration order; the renderer terminates the order list with a
// sentinel for the consuming engine.
type GroupUnit struct {
	Name         string
	CounterID    int
	FirstFieldID int
	Order        []int
	Members      []Member
}

// Member is one entry of a class body in declaration order: a field accessor
// block, a component accessor block, or a nested repeating-unit class.
// Exactly one of the three is set.
type Member struct {
	Field     *FieldAccessor
	Component *ComponentAccessor
	Group     *GroupUnit
}

// ComponentClass describes one generated component class.
type ComponentClass struct {
	Name    string
	Package string
	// FieldIDs are the ids of the directly referenced fields.
	FieldIDs []int
	Members  []Member
}

// GroupClass describes the outer class generated for a repeating group: the
// counter-field accessors plus the nested repeating unit.
type GroupClass struct {
	Name    string
	Package string
	Counter FieldAccessor
	Unit    GroupUnit
	Members []Member
}

// MessageClass describes one generated message class.
type MessageClass struct {
	Name    string
	Package string
	MsgType string
	Members []Member
}

// FactoryGroup is one dispatch case of the factory's group create method:
// the counter field introducing the group and the qualified class that owns
// the repeating unit.
type FactoryGroup struct {
	CounterName string
	Parent      string
}

// FactoryMessage is one message entry of the factory, restricted to base
// scenarios.
type FactoryMessage struct {
	Name   string
	Groups []FactoryGroup
}

// FactoryClass describes the message factory artifact.
type FactoryClass struct {
	Package  string
	Messages []FactoryMessage
}

// CrackerClass describes the message cracker artifact: one override point
// per distinct base-scenario message plus a default fallback.
type CrackerClass struct {
	Package      string
	CrackMethod  string
	MessageNames []string
}

// BaseMessageClass describes the optional message superclass.
type BaseMessageClass struct {
	Package     string
	BeginString string
}

// Renderer turns resolved artifact descriptions into source text for one
// target engine. Backends live in their own packages; codegen/java renders
// the QuickFIX/J class model.
type Renderer interface {
	// Extension is the file extension of rendered artifacts, with dot.
	Extension() string
	RenderField(*FieldClass) ([]byte, error)
	RenderComponent(*ComponentClass) ([]byte, error)
	RenderGroup(*GroupClass) ([]byte, error)
	RenderMessage(*MessageClass) ([]byte, error)
	RenderFactory(*FactoryClass) ([]byte, error)
	RenderCracker(*CrackerClass) ([]byte, error)
	RenderBaseMessage(*BaseMessageClass) ([]byte, error)
}
