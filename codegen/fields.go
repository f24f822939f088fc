package codegen

import (
	"log/slog"

	"github.com/msmat0/quickfixj/orchestra"
)

// Collector computes the transitive set of field ids a message list
// requires: direct field references, counter fields of referenced groups,
// and the contents of referenced components and nested groups.
type Collector struct {
	idx *Index
	// includeHeaderTrailer controls recursion into the standard header and
	// trailer components. When false their contents are pruned.
	includeHeaderTrailer bool
	log                  *slog.Logger
}

// NewCollector creates a field usage collector over the given lookup tables.
func NewCollector(idx *Index, includeHeaderTrailer bool, log *slog.Logger) *Collector {
	if log == nil {
		log = slog.Default()
	}
	return &Collector{idx: idx, includeHeaderTrailer: includeHeaderTrailer, log: log}
}

// CollectFieldIDs walks every message's member list and returns the set of
// field ids reached. Unresolvable references are logged and skipped;
// collection continues for the remaining members.
func (c *Collector) CollectFieldIDs(messages []*orchestra.Message) map[int]bool {
	ids := make(map[int]bool)
	for _, m := range messages {
		c.collect(m.Members, ids)
	}
	return ids
}

func (c *Collector) collect(members []orchestra.MemberRef, ids map[int]bool) {
	for _, ref := range members {
		switch ref.Kind {
		case orchestra.FieldRef:
			ids[ref.ID] = true
		case orchestra.GroupRef:
			g, ok := c.idx.Group(ref.ID)
			if !ok {
				c.report("collectFieldIds", "group", ref.ID)
				continue
			}
			ids[g.NumInGroupID] = true
			c.collect(g.Members, ids)
		case orchestra.ComponentRef:
			comp, ok := c.idx.Component(ref.ID)
			if !ok {
				c.report("collectFieldIds", "component", ref.ID)
				continue
			}
			if isHeaderTrailer(ref.ID) && !c.includeHeaderTrailer {
				continue
			}
			c.collect(comp.Members, ids)
		}
	}
}

func (c *Collector) report(op, kind string, id int) {
	err := NewIntegrityError(op, kind, id)
	c.log.Warn("schema integrity", "op", op, "kind", kind, "id", id, "err", err)
}

// isHeaderTrailer reports whether the component id is the standard header or
// trailer.
func isHeaderTrailer(id int) bool {
	return id == ComponentStandardHeader || id == ComponentStandardTrailer
}

// subtract removes every id present in other from ids, in place. The
// generator uses it to keep application and session field sets disjoint.
func subtract(ids, other map[int]bool) {
	for id := range other {
		delete(ids, id)
	}
}
