package codegen

import (
	"io"
	"log/slog"

	"github.com/msmat0/quickfixj/orchestra"
)

// testRepository builds a small but structurally complete repository: code
// sets, a shared component, nested repeating groups, the standard header and
// trailer, and messages on both layers.
func testRepository() *orchestra.Repository {
	return &orchestra.Repository{
		Version: "FIX.Latest_EP269",
		CodeSets: []*orchestra.CodeSet{
			{Name: "SideCodeSet", Type: "char", Codes: []orchestra.Code{
				{Name: "Buy", Value: "1"},
				{Name: "Sell", Value: "2"},
			}},
		},
		Fields: []*orchestra.Field{
			{ID: 8, Name: "BeginString", Type: "String"},
			{ID: 9, Name: "BodyLength", Type: "Length"},
			{ID: 10, Name: "CheckSum", Type: "String"},
			{ID: 11, Name: "ClOrdID", Type: "String"},
			{ID: 34, Name: "MsgSeqNum", Type: "SeqNum"},
			{ID: 35, Name: "MsgType", Type: "String"},
			{ID: 38, Name: "OrderQty", Type: "Qty"},
			{ID: 44, Name: "Price", Type: "Price"},
			{ID: 54, Name: "Side", Type: "SideCodeSet"},
			{ID: 55, Name: "Symbol", Type: "String"},
			{ID: 60, Name: "TransactTime", Type: "UTCTimestamp"},
			{ID: 98, Name: "EncryptMethod", Type: "int"},
			{ID: 108, Name: "HeartBtInt", Type: "int"},
			{ID: 112, Name: "TestReqID", Type: "String"},
			{ID: 372, Name: "RefMsgType", Type: "String"},
			{ID: 384, Name: "NoMsgTypes", Type: "NumInGroup"},
			{ID: 448, Name: "PartyID", Type: "String"},
			{ID: 452, Name: "PartyRole", Type: "int"},
			{ID: 453, Name: "NoPartyIDs", Type: "NumInGroup"},
			{ID: 523, Name: "PartySubID", Type: "String"},
			{ID: 627, Name: "NoHops", Type: "NumInGroup"},
			{ID: 628, Name: "HopCompID", Type: "String"},
			{ID: 802, Name: "NoPartySubIDs", Type: "NumInGroup"},
		},
		Components: []*orchestra.Component{
			{ID: ComponentStandardHeader, Name: "StandardHeader", Category: "Session", Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 8},
				{Kind: orchestra.FieldRef, ID: 9},
				{Kind: orchestra.FieldRef, ID: 35},
				{Kind: orchestra.FieldRef, ID: 34},
				{Kind: orchestra.GroupRef, ID: GroupHopGrp},
			}},
			{ID: ComponentStandardTrailer, Name: "StandardTrailer", Category: "Session", Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 10},
			}},
			{ID: 1003, Name: "Instrument", Category: "Common", Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 55},
			}},
		},
		Groups: []*orchestra.Group{
			{ID: GroupHopGrp, Name: "HopGrp", Category: "Session", NumInGroupID: 627, Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 628},
			}},
			{ID: GroupMsgTypeGrp, Name: "MsgTypeGrp", Category: "Session", NumInGroupID: 384, Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 372},
			}},
			{ID: 2012, Name: "PtysSubGrp", Category: "Common", NumInGroupID: 802, Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 523},
			}},
			{ID: 2011, Name: "Parties", Category: "Common", NumInGroupID: 453, Members: []orchestra.MemberRef{
				{Kind: orchestra.FieldRef, ID: 448},
				{Kind: orchestra.FieldRef, ID: 452},
				{Kind: orchestra.GroupRef, ID: 2012},
			}},
		},
		Messages: []*orchestra.Message{
			{Name: "NewOrderSingle", Scenario: "base", Category: "SingleGeneralOrderHandling", MsgType: "D", Members: []orchestra.MemberRef{
				{Kind: orchestra.ComponentRef, ID: ComponentStandardHeader},
				{Kind: orchestra.FieldRef, ID: 11},
				{Kind: orchestra.ComponentRef, ID: 1003},
				{Kind: orchestra.FieldRef, ID: 54},
				{Kind: orchestra.FieldRef, ID: 38},
				{Kind: orchestra.FieldRef, ID: 44},
				{Kind: orchestra.FieldRef, ID: 60},
				{Kind: orchestra.GroupRef, ID: 2011},
				{Kind: orchestra.ComponentRef, ID: ComponentStandardTrailer},
			}},
			{Name: "Logon", Scenario: "base", Category: "Session", MsgType: "A", Members: []orchestra.MemberRef{
				{Kind: orchestra.ComponentRef, ID: ComponentStandardHeader},
				{Kind: orchestra.FieldRef, ID: 98},
				{Kind: orchestra.FieldRef, ID: 108},
				{Kind: orchestra.GroupRef, ID: GroupMsgTypeGrp},
				{Kind: orchestra.ComponentRef, ID: ComponentStandardTrailer},
			}},
			{Name: "Heartbeat", Scenario: "base", Category: "Session", MsgType: "0", Members: []orchestra.MemberRef{
				{Kind: orchestra.ComponentRef, ID: ComponentStandardHeader},
				{Kind: orchestra.FieldRef, ID: 112},
				{Kind: orchestra.ComponentRef, ID: ComponentStandardTrailer},
			}},
		},
	}
}

// discardLogger silences integrity diagnostics in tests that provoke them.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
