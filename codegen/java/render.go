// Package java renders resolved artifact descriptions as QuickFIX/J source
// text. It is one backend behind the codegen.Renderer interface; the
// resolution engine never depends on it.
package java

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/msmat0/quickfixj/codegen"
)

// Renderer renders the QuickFIX/J class model.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates the renderer with its templates parsed.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("quickfixj").Funcs(template.FuncMap{
		"baseClass":  baseClass,
		"temporal":   func(f *codegen.FieldClass) bool { return f.Kind.Temporal() },
		"bigDecimal": func(f *codegen.FieldClass) bool { return f.Kind == codegen.KindDecimal && f.BigDecimal },
		"constType":  constType,
		"constValue": constValue,
		"ctors":      ctors,
	}).Parse(classTemplates))
	return &Renderer{tmpl: tmpl}
}

// Extension returns the rendered file extension.
func (r *Renderer) Extension() string { return ".java" }

// RenderField renders a field class.
func (r *Renderer) RenderField(f *codegen.FieldClass) ([]byte, error) {
	return r.execute("field", f)
}

// RenderComponent renders a component class.
func (r *Renderer) RenderComponent(c *codegen.ComponentClass) ([]byte, error) {
	return r.execute("component", c)
}

// RenderGroup renders the outer class of a repeating group.
func (r *Renderer) RenderGroup(g *codegen.GroupClass) ([]byte, error) {
	return r.execute("group", g)
}

// RenderMessage renders a message class.
func (r *Renderer) RenderMessage(m *codegen.MessageClass) ([]byte, error) {
	return r.execute("message", m)
}

// RenderFactory renders the message factory.
func (r *Renderer) RenderFactory(f *codegen.FactoryClass) ([]byte, error) {
	return r.execute("factory", f)
}

// RenderCracker renders the message cracker.
func (r *Renderer) RenderCracker(c *codegen.CrackerClass) ([]byte, error) {
	return r.execute("cracker", c)
}

// RenderBaseMessage renders the message base class.
func (r *Renderer) RenderBaseMessage(b *codegen.BaseMessageClass) ([]byte, error) {
	return r.execute("baseMessage", b)
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("java: execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// baseClass maps a field kind to the engine base class the field extends.
func baseClass(f *codegen.FieldClass) string {
	switch f.Kind {
	case codegen.KindChar:
		return "CharField"
	case codegen.KindDecimal:
		if f.BigDecimal {
			return "DecimalField"
		}
		return "DoubleField"
	case codegen.KindInt:
		return "IntField"
	case codegen.KindUTCTimestamp:
		return "UtcTimeStampField"
	case codegen.KindUTCTimeOnly:
		return "UtcTimeOnlyField"
	case codegen.KindUTCDateOnly:
		return "UtcDateOnlyField"
	case codegen.KindBoolean:
		return "BooleanField"
	case codegen.KindDouble:
		return "DoubleField"
	default:
		return "StringField"
	}
}

// constType maps a code set's declared primitive to the constant's type.
func constType(c codegen.Constant) string {
	switch c.Type {
	case "Boolean":
		return "boolean"
	case "char":
		return "char"
	case "int":
		return "int"
	default:
		return "String"
	}
}

// constValue renders a code value as a literal of the constant's type.
// Boolean codes follow the wire convention: "Y" is true, anything else is
// false.
func constValue(c codegen.Constant) string {
	switch c.Type {
	case "Boolean":
		return fmt.Sprintf("%t", c.Value == "Y")
	case "char":
		return fmt.Sprintf("'%s'", c.Value)
	case "int":
		return c.Value
	default:
		return fmt.Sprintf("%q", c.Value)
	}
}

// ctor is one value-taking constructor of a field class.
type ctor struct {
	Param string
	Expr  string
}

// ctors returns the value constructors a field class carries in addition to
// its no-argument constructor.
func ctors(f *codegen.FieldClass) []ctor {
	switch f.Kind {
	case codegen.KindBoolean:
		return []ctor{{"Boolean", "data"}, {"boolean", "data"}}
	case codegen.KindChar:
		return []ctor{{"Character", "data"}, {"char", "data"}}
	case codegen.KindUTCDateOnly:
		// The String form exists for compatibility with engine test suites.
		return []ctor{{"LocalDate", "data"}, {"String", "data"}}
	case codegen.KindUTCTimeOnly:
		return []ctor{{"LocalTime", "data"}}
	case codegen.KindUTCTimestamp:
		return []ctor{{"LocalDateTime", "data"}}
	case codegen.KindDecimal:
		if f.BigDecimal {
			return []ctor{{"BigDecimal", "data"}, {"double", "BigDecimal.valueOf(data)"}}
		}
		return []ctor{{"Double", "data"}, {"double", "data"}}
	case codegen.KindDouble:
		return []ctor{{"Double", "data"}, {"double", "data"}}
	case codegen.KindInt:
		return []ctor{{"Integer", "data"}, {"int", "data"}}
	default:
		return []ctor{{"String", "data"}}
	}
}

// Compile-time check that Renderer satisfies the backend interface.
var _ codegen.Renderer = (*Renderer)(nil)
