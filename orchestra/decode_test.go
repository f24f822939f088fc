package orchestra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repositoryXML = `<?xml version="1.0" encoding="UTF-8"?>
<fixr:repository xmlns:fixr="http://fixprotocol.io/2023/orchestra/repository" version="FIX.Latest_EP269">
  <fixr:codeSets>
    <fixr:codeSet name="SideCodeSet" id="54" type="char">
      <fixr:code name="Buy" id="54001" value="1"/>
      <fixr:code name="Sell" id="54002" value="2"/>
    </fixr:codeSet>
  </fixr:codeSets>
  <fixr:fields>
    <fixr:field id="11" name="ClOrdID" type="String"/>
    <fixr:field id="54" name="Side" type="SideCodeSet"/>
  </fixr:fields>
  <fixr:components>
    <fixr:component name="Instrument" id="1003" category="Common">
      <fixr:annotation>
        <fixr:documentation>ignored</fixr:documentation>
      </fixr:annotation>
      <fixr:fieldRef id="55"/>
      <fixr:componentRef id="2070"/>
    </fixr:component>
  </fixr:components>
  <fixr:groups>
    <fixr:group id="2011" name="Parties" category="Common">
      <fixr:numInGroup id="453"/>
      <fixr:fieldRef id="448"/>
      <fixr:groupRef id="2012"/>
      <fixr:fieldRef id="452"/>
    </fixr:group>
  </fixr:groups>
  <fixr:messages>
    <fixr:message name="NewOrderSingle" id="14" msgType="D" category="SingleGeneralOrderHandling">
      <fixr:structure>
        <fixr:componentRef id="1024" presence="required"/>
        <fixr:fieldRef id="11" presence="required"/>
        <fixr:groupRef id="2011"/>
        <fixr:componentRef id="1025" presence="required"/>
      </fixr:structure>
    </fixr:message>
    <fixr:message name="ExecutionReport" id="9" msgType="8" scenario="Canceled" category="SingleGeneralOrderHandling">
      <fixr:structure/>
    </fixr:message>
  </fixr:messages>
</fixr:repository>`

func TestDecode(t *testing.T) {
	rep, err := Decode(strings.NewReader(repositoryXML))
	require.NoError(t, err)

	assert.Equal(t, "FIX.Latest_EP269", rep.Version)
	require.Len(t, rep.CodeSets, 1)
	require.Len(t, rep.Fields, 2)
	require.Len(t, rep.Components, 1)
	require.Len(t, rep.Groups, 1)
	require.Len(t, rep.Messages, 2)
}

func TestDecodeCodeSet(t *testing.T) {
	rep, err := Decode(strings.NewReader(repositoryXML))
	require.NoError(t, err)

	cs := rep.CodeSets[0]
	assert.Equal(t, "SideCodeSet", cs.Name)
	assert.Equal(t, "char", cs.Type)
	require.Len(t, cs.Codes, 2)
	assert.Equal(t, Code{Name: "Buy", Value: "1"}, cs.Codes[0])
	assert.Equal(t, Code{Name: "Sell", Value: "2"}, cs.Codes[1])
}

func TestDecodeComponent(t *testing.T) {
	rep, err := Decode(strings.NewReader(repositoryXML))
	require.NoError(t, err)

	c := rep.Components[0]
	assert.Equal(t, 1003, c.ID)
	assert.Equal(t, "Instrument", c.Name)
	assert.Equal(t, "Common", c.Category)
	// Annotations are skipped; member order is preserved.
	assert.Equal(t, []MemberRef{
		{Kind: FieldRef, ID: 55},
		{Kind: ComponentRef, ID: 2070},
	}, c.Members)
}

func TestDecodeGroup(t *testing.T) {
	rep, err := Decode(strings.NewReader(repositoryXML))
	require.NoError(t, err)

	g := rep.Groups[0]
	assert.Equal(t, 2011, g.ID)
	assert.Equal(t, "Parties", g.Name)
	// The counter reference is captured apart from the repeating members.
	assert.Equal(t, 453, g.NumInGroupID)
	assert.Equal(t, []MemberRef{
		{Kind: FieldRef, ID: 448},
		{Kind: GroupRef, ID: 2012},
		{Kind: FieldRef, ID: 452},
	}, g.Members)
}

func TestDecodeMessage(t *testing.T) {
	rep, err := Decode(strings.NewReader(repositoryXML))
	require.NoError(t, err)

	m := rep.Messages[0]
	assert.Equal(t, "NewOrderSingle", m.Name)
	assert.Equal(t, "D", m.MsgType)
	assert.Equal(t, "SingleGeneralOrderHandling", m.Category)
	// A missing scenario attribute defaults to the base scenario.
	assert.Equal(t, "base", m.Scenario)
	// Member order interleaves all three reference kinds as declared.
	assert.Equal(t, []MemberRef{
		{Kind: ComponentRef, ID: 1024},
		{Kind: FieldRef, ID: 11},
		{Kind: GroupRef, ID: 2011},
		{Kind: ComponentRef, ID: 1025},
	}, m.Members)

	assert.Equal(t, "Canceled", rep.Messages[1].Scenario)
	assert.Empty(t, rep.Messages[1].Members)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"malformed document", `<fixr:repository xmlns:fixr="x"><fixr:fields>`},
		{"non-numeric component id", `<repository><components><component id="abc" name="X"/></components></repository>`},
		{"missing ref id", `<repository><groups><group id="1" name="G"><fieldRef/></group></groups></repository>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.xml))
			require.Error(t, err)
		})
	}
}

func TestRefKindString(t *testing.T) {
	assert.Equal(t, "fieldRef", FieldRef.String())
	assert.Equal(t, "groupRef", GroupRef.String())
	assert.Equal(t, "componentRef", ComponentRef.String())
	assert.Equal(t, "unknown", RefKind(0).String())
}
