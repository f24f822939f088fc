package orchestra

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Decode reads an Orchestra repository document. Member declaration order is
// preserved across the three reference kinds, which is what downstream
// ordering guarantees (accessor order, group ORDER arrays) rely on.
func Decode(r io.Reader) (*Repository, error) {
	rep := &Repository{}
	if err := xml.NewDecoder(r).Decode(rep); err != nil {
		return nil, fmt.Errorf("orchestra: decode repository: %w", err)
	}
	return rep, nil
}

// UnmarshalXML decodes a component element, keeping its members in document
// order.
func (c *Component) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id":
			id, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("orchestra: component id %q: %w", a.Value, err)
			}
			c.ID = id
		case "name":
			c.Name = a.Value
		case "category":
			c.Category = a.Value
		}
	}
	members, _, err := decodeMembers(d)
	if err != nil {
		return fmt.Errorf("orchestra: component %q: %w", c.Name, err)
	}
	c.Members = members
	return nil
}

// UnmarshalXML decodes a group element, capturing the numInGroup counter
// field reference separately from the repeating members.
func (g *Group) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id":
			id, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("orchestra: group id %q: %w", a.Value, err)
			}
			g.ID = id
		case "name":
			g.Name = a.Value
		case "category":
			g.Category = a.Value
		}
	}
	members, numInGroup, err := decodeMembers(d)
	if err != nil {
		return fmt.Errorf("orchestra: group %q: %w", g.Name, err)
	}
	g.Members = members
	g.NumInGroupID = numInGroup
	return nil
}

// UnmarshalXML decodes a message element. Members live under the nested
// structure element; a missing scenario attribute defaults to "base".
func (m *Message) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			m.Name = a.Value
		case "scenario":
			m.Scenario = a.Value
		case "category":
			m.Category = a.Value
		case "msgType":
			m.MsgType = a.Value
		}
	}
	if m.Scenario == "" {
		m.Scenario = "base"
	}
	members, _, err := decodeMembers(d)
	if err != nil {
		return fmt.Errorf("orchestra: message %q: %w", m.Name, err)
	}
	m.Members = members
	return nil
}

// decodeMembers consumes the children of the current element and collects
// member references in document order. It descends into a structure wrapper
// element, records a numInGroup reference when present, and skips anything
// else (documentation, annotations, rule elements).
func decodeMembers(d *xml.Decoder) (members []MemberRef, numInGroup int, err error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, 0, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "structure":
				nested, _, err := decodeMembers(d)
				if err != nil {
					return nil, 0, err
				}
				members = append(members, nested...)
			case "fieldRef", "groupRef", "componentRef":
				id, err := refID(t)
				if err != nil {
					return nil, 0, err
				}
				members = append(members, MemberRef{Kind: refKind(t.Name.Local), ID: id})
				if err := d.Skip(); err != nil {
					return nil, 0, err
				}
			case "numInGroup":
				id, err := refID(t)
				if err != nil {
					return nil, 0, err
				}
				numInGroup = id
				if err := d.Skip(); err != nil {
					return nil, 0, err
				}
			default:
				if err := d.Skip(); err != nil {
					return nil, 0, err
				}
			}
		case xml.EndElement:
			return members, numInGroup, nil
		}
	}
}

func refKind(local string) RefKind {
	switch local {
	case "fieldRef":
		return FieldRef
	case "groupRef":
		return GroupRef
	default:
		return ComponentRef
	}
}

func refID(start xml.StartElement) (int, error) {
	for _, a := range start.Attr {
		if a.Name.Local == "id" {
			id, err := strconv.Atoi(a.Value)
			if err != nil {
				return 0, fmt.Errorf("orchestra: %s id %q: %w", start.Name.Local, a.Value, err)
			}
			return id, nil
		}
	}
	return 0, fmt.Errorf("orchestra: %s element is missing an id attribute", start.Name.Local)
}
