package codegen

import (
	"github.com/msmat0/quickfixj/orchestra"
)

// sessionCategory marks protocol housekeeping messages. The match is exact
// and case-sensitive.
const sessionCategory = "Session"

// SplitMessages partitions the message list into application-layer and
// session-layer subsets by category. Relative order is preserved in both
// lists; the outputs are disjoint and their union equals the input.
func SplitMessages(messages []*orchestra.Message) (application, session []*orchestra.Message) {
	for _, m := range messages {
		if m.Category == sessionCategory {
			session = append(session, m)
		} else {
			application = append(application, m)
		}
	}
	return application, session
}

// SplitGroups partitions the group universe into general and
// session-exclusive subsets. A group is session-exclusive iff its id is in
// the registry; every group appears in exactly one output.
func SplitGroups(groups []*orchestra.Group, registry SessionGroupRegistry) (general, session []*orchestra.Group) {
	for _, g := range groups {
		if registry.Contains(g.ID) {
			session = append(session, g)
		} else {
			general = append(general, g)
		}
	}
	return general, session
}
