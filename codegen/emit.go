package codegen

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"

	"github.com/msmat0/quickfixj/orchestra"
)

// Emitter synthesizes the structural description of every artifact class
// from resolved schema elements. It never touches the file system; rendering
// and writing happen in the generator.
type Emitter struct {
	idx  *Index
	cfg  *Config
	plan *Plan
	log  *slog.Logger
}

// NewEmitter creates an emitter over the given lookup tables and plan.
func NewEmitter(idx *Index, cfg *Config, plan *Plan) *Emitter {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Emitter{idx: idx, cfg: cfg, plan: plan, log: log}
}

// FieldClass resolves a field into its class description. The field's
// datatype is followed through code-set indirection before the kind mapping;
// a code set also contributes one named constant per enumerated code.
func (e *Emitter) FieldClass(f *orchestra.Field) *FieldClass {
	fixType := f.Type
	var constants []Constant
	if cs, ok := e.idx.CodeSet(f.Type); ok {
		fixType = cs.Type
		constants = make([]Constant, 0, len(cs.Codes))
		for _, code := range cs.Codes {
			constants = append(constants, Constant{
				Name:  constName(code.Name),
				Value: code.Value,
				Type:  cs.Type,
			})
		}
	}
	return &FieldClass{
		Name:       titleCase(f.Name),
		Package:    e.plan.FieldPackage,
		ID:         f.ID,
		Kind:       KindOf(fixType),
		BigDecimal: e.cfg.BigDecimal,
		Constants:  constants,
	}
}

// ComponentClass resolves a component into its class description: the ids of
// its directly referenced fields and the accessor blocks of its member list.
func (e *Emitter) ComponentClass(c *orchestra.Component, pkg string) *ComponentClass {
	var fieldIDs []int
	for _, ref := range c.Members {
		if ref.Kind == orchestra.FieldRef {
			fieldIDs = append(fieldIDs, ref.ID)
		}
	}
	return &ComponentClass{
		Name:     titleCase(c.Name),
		Package:  pkg,
		FieldIDs: fieldIDs,
		Members:  e.members(c.Members, pkg, true),
	}
}

// GroupClass resolves a repeating group into its outer class description:
// counter-field accessors plus the nested repeating unit.
func (e *Emitter) GroupClass(g *orchestra.Group, pkg string) (*GroupClass, bool) {
	counter, ok := e.idx.Field(g.NumInGroupID)
	if !ok {
		e.report("generateGroup", "field", g.NumInGroupID)
		return nil, false
	}
	return &GroupClass{
		Name:    titleCase(g.Name),
		Package: pkg,
		Counter: FieldAccessor{Name: titleCase(counter.Name), ID: counter.ID},
		Unit:    e.groupUnit(g, counter, pkg),
		Members: e.members(g.Members, pkg, true),
	}, true
}

// MessageClass resolves a message into its class description. Non-base
// scenarios carry the scenario name as a class name suffix.
func (e *Emitter) MessageClass(m *orchestra.Message, msgPkg, compPkg string) *MessageClass {
	name := titleCase(m.Name)
	if m.Scenario != "base" {
		name += titleCase(m.Scenario)
	}
	return &MessageClass{
		Name:    name,
		Package: msgPkg,
		MsgType: m.MsgType,
		Members: e.members(m.Members, compPkg, true),
	}
}

// Factory builds the message factory description over base-scenario
// messages: per-message construction plus nested group dispatch keyed by the
// counter field that introduces each repeating group.
func (e *Emitter) Factory(messages []*orchestra.Message, msgPkg string) *FactoryClass {
	fc := &FactoryClass{Package: msgPkg}
	for _, m := range messages {
		if m.Scenario != "base" {
			continue
		}
		fm := FactoryMessage{Name: titleCase(m.Name)}
		parent := msgPkg + "." + fm.Name
		for _, ref := range m.Members {
			if ref.Kind != orchestra.GroupRef {
				continue
			}
			g, ok := e.idx.Group(ref.ID)
			if !ok {
				e.report("groupCreate", "group", ref.ID)
				continue
			}
			fm.Groups = append(fm.Groups, e.factoryGroups(g, parent)...)
		}
		fc.Messages = append(fc.Messages, fm)
	}
	return fc
}

// factoryGroups flattens one group and its nested groups into dispatch
// cases. The parent path grows by one repeating-unit class per nesting
// level.
func (e *Emitter) factoryGroups(g *orchestra.Group, parent string) []FactoryGroup {
	counter, ok := e.idx.Field(g.NumInGroupID)
	if !ok {
		e.report("groupCreate", "field", g.NumInGroupID)
		return nil
	}
	counterName := titleCase(counter.Name)
	cases := []FactoryGroup{{CounterName: counterName, Parent: parent}}
	for _, ref := range g.Members {
		if ref.Kind != orchestra.GroupRef {
			continue
		}
		nested, ok := e.idx.Group(ref.ID)
		if !ok {
			e.report("groupCreate", "group", ref.ID)
			continue
		}
		cases = append(cases, e.factoryGroups(nested, parent+"."+counterName)...)
	}
	return cases
}

// Cracker builds the message cracker description: one override point per
// distinct base-scenario message plus the crack dispatch.
func (e *Emitter) Cracker(messages []*orchestra.Message, msgPkg string) *CrackerClass {
	cc := &CrackerClass{
		Package:     msgPkg,
		CrackMethod: crackMethodName(msgPkg),
	}
	for _, m := range messages {
		if m.Scenario != "base" {
			continue
		}
		cc.MessageNames = append(cc.MessageNames, titleCase(m.Name))
	}
	return cc
}

// BaseMessage builds the optional message superclass description.
func (e *Emitter) BaseMessage() *BaseMessageClass {
	return &BaseMessageClass{
		Package:     e.plan.MessagePackage,
		BeginString: e.plan.BeginString,
	}
}

// members walks a member list into class body entries. A group reference
// expands into the group class accessor, the counter-field accessor and the
// nested repeating unit. A component reference expands into the component
// accessor followed by the component's own field and component members;
// group references are not re-expanded inside that recursion, since the
// component class already owns them. Recursion into the standard header and
// trailer is pruned entirely unless the message base class is generated, in
// which case only their accessors are suppressed (the base class provides
// them).
func (e *Emitter) members(refs []orchestra.MemberRef, compPkg string, includeGroups bool) []Member {
	var out []Member
	for _, ref := range refs {
		switch ref.Kind {
		case orchestra.FieldRef:
			f, ok := e.idx.Field(ref.ID)
			if !ok {
				e.report("memberAccessors", "field", ref.ID)
				continue
			}
			out = append(out, Member{Field: &FieldAccessor{Name: titleCase(f.Name), ID: f.ID}})
		case orchestra.GroupRef:
			if !includeGroups {
				continue
			}
			g, ok := e.idx.Group(ref.ID)
			if !ok {
				e.report("memberAccessors", "group", ref.ID)
				continue
			}
			counter, ok := e.idx.Field(g.NumInGroupID)
			if !ok {
				e.report("memberAccessors", "field", g.NumInGroupID)
				continue
			}
			out = append(out,
				Member{Component: &ComponentAccessor{Name: titleCase(g.Name), Package: compPkg}},
				Member{Field: &FieldAccessor{Name: titleCase(counter.Name), ID: counter.ID}},
				Member{Group: ptr(e.groupUnit(g, counter, compPkg))},
			)
		case orchestra.ComponentRef:
			c, ok := e.idx.Component(ref.ID)
			if !ok {
				e.report("memberAccessors", "component", ref.ID)
				continue
			}
			if isHeaderTrailer(ref.ID) {
				if !e.cfg.MessageBaseClass {
					continue
				}
			} else {
				out = append(out, Member{Component: &ComponentAccessor{Name: titleCase(c.Name), Package: compPkg}})
			}
			out = append(out, e.members(c.Members, compPkg, false)...)
		}
	}
	return out
}

// groupUnit builds the repeating-unit class nested inside a group-bearing
// class. The unit is named after the counter field; its order list holds the
// member field ids in declaration order.
func (e *Emitter) groupUnit(g *orchestra.Group, counter *orchestra.Field, compPkg string) GroupUnit {
	order := e.groupFieldIDs(g.Members)
	first := 0
	if len(order) > 0 {
		first = order[0]
	}
	return GroupUnit{
		Name:         titleCase(counter.Name),
		CounterID:    g.NumInGroupID,
		FirstFieldID: first,
		Order:        order,
		Members:      e.members(g.Members, compPkg, true),
	}
}

// groupFieldIDs computes the repetition order: one id per member in
// declaration order, where a nested group contributes its counter field and
// a component contributes its expanded contents.
func (e *Emitter) groupFieldIDs(refs []orchestra.MemberRef) []int {
	var ids []int
	for _, ref := range refs {
		switch ref.Kind {
		case orchestra.FieldRef:
			ids = append(ids, ref.ID)
		case orchestra.GroupRef:
			g, ok := e.idx.Group(ref.ID)
			if !ok {
				e.report("groupFields", "group", ref.ID)
				continue
			}
			ids = append(ids, g.NumInGroupID)
		case orchestra.ComponentRef:
			c, ok := e.idx.Component(ref.ID)
			if !ok {
				e.report("groupFields", "component", ref.ID)
				continue
			}
			ids = append(ids, e.groupFieldIDs(c.Members)...)
		}
	}
	return ids
}

func (e *Emitter) report(op, kind string, id int) {
	err := NewIntegrityError(op, kind, id)
	e.log.Warn("schema integrity", "op", op, "kind", kind, "id", id, "err", err)
}

// crackMethodName derives the per-dialect crack method name from the message
// package, e.g. "crackfixlatest" for quickfix.fixlatest.
func crackMethodName(msgPkg string) string {
	parts := strings.Split(msgPkg, ".")
	if len(parts) > 1 {
		return "crack" + parts[1]
	}
	return "crack" + parts[0]
}

// titleCase upper-cases the first rune and leaves the rest as-is, matching
// the schema's own naming of classes like XMLnonFIX.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// constName renders a code name as a class constant: SCREAMING_SNAKE with
// word boundaries taken from the camel-cased code name.
func constName(name string) string {
	return strings.ToUpper(inflect.Underscore(name))
}

func ptr[T any](v T) *T {
	return &v
}
