package codegen

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/msmat0/quickfixj/orchestra"
)

// Generator runs one generation pass: index the repository, partition
// messages and groups, collect layer field usage, plan packages, and write
// one artifact per in-scope schema element through the renderer backend.
type Generator struct {
	cfg      *Config
	renderer Renderer
}

// NewGenerator creates a generator for a validated configuration and a
// renderer backend.
func NewGenerator(cfg *Config, r Renderer) *Generator {
	return &Generator{cfg: cfg, renderer: r}
}

// task is one independent artifact write. Rendering happens inside the
// worker so backends run in parallel too.
type task struct {
	artifact string
	path     string
	render   func() ([]byte, error)
}

// Generate writes the artifact tree for the repository. The configuration is
// re-validated before any file is written; a failed write cancels the
// remaining work. Distinct artifacts share no mutable state, so worker count
// never affects output content.
func (g *Generator) Generate(ctx context.Context, rep *orchestra.Repository) error {
	cfg := g.cfg
	if cfg.ExcludeSession && cfg.SessionPackage {
		return NewConfigError("ExcludeSession", "SessionPackage", "options are mutually exclusive")
	}

	idx := NewIndex(rep)
	plan := NewPlan(rep.Version, cfg)
	emitter := NewEmitter(idx, cfg, plan)

	application, session := SplitMessages(rep.Messages)
	generalGroups, sessionGroups := SplitGroups(rep.Groups, cfg.SessionGroups)

	// Field usage per layer. Application ids are restricted to fields no
	// session message uses, so session exclusion removes exactly the fields
	// exclusive to the session layer.
	collector := NewCollector(idx, cfg.MessageBaseClass, cfg.Logger)
	applicationIDs := collector.CollectFieldIDs(application)
	sessionIDs := collector.CollectFieldIDs(session)
	subtract(applicationIDs, sessionIDs)

	ext := g.renderer.Extension()
	var tasks []task
	add := func(artifact, pkg, class string, render func() ([]byte, error)) {
		tasks = append(tasks, task{
			artifact: artifact,
			path:     plan.ClassPath(cfg.OutputDir, pkg, class, ext),
			render:   render,
		})
	}

	for _, f := range rep.Fields {
		if cfg.ExcludeSession && !applicationIDs[f.ID] {
			continue
		}
		fc := emitter.FieldClass(f)
		add("field "+fc.Name, plan.FieldPackage, fc.Name, func() ([]byte, error) {
			return g.renderer.RenderField(fc)
		})
	}

	for _, grp := range generalGroups {
		gc, ok := emitter.GroupClass(grp, plan.ComponentPackage)
		if !ok {
			continue
		}
		add("group "+gc.Name, plan.ComponentPackage, gc.Name, func() ([]byte, error) {
			return g.renderer.RenderGroup(gc)
		})
	}
	if !cfg.ExcludeSession {
		for _, grp := range sessionGroups {
			gc, ok := emitter.GroupClass(grp, plan.SessionComponentPackage)
			if !ok {
				continue
			}
			add("group "+gc.Name, plan.SessionComponentPackage, gc.Name, func() ([]byte, error) {
				return g.renderer.RenderGroup(gc)
			})
		}
	}

	for _, c := range rep.Components {
		if isHeaderTrailer(c.ID) && !cfg.MessageBaseClass {
			continue
		}
		cc := emitter.ComponentClass(c, plan.ComponentPackage)
		add("component "+cc.Name, plan.ComponentPackage, cc.Name, func() ([]byte, error) {
			return g.renderer.RenderComponent(cc)
		})
	}

	for _, m := range application {
		mc := emitter.MessageClass(m, plan.MessagePackage, plan.ComponentPackage)
		add("message "+mc.Name, plan.MessagePackage, mc.Name, func() ([]byte, error) {
			return g.renderer.RenderMessage(mc)
		})
	}
	if !cfg.ExcludeSession {
		for _, m := range session {
			mc := emitter.MessageClass(m, plan.SessionMessagePackage, plan.SessionComponentPackage)
			add("message "+mc.Name, plan.SessionMessagePackage, mc.Name, func() ([]byte, error) {
				return g.renderer.RenderMessage(mc)
			})
		}
	}

	if cfg.MessageBaseClass {
		bc := emitter.BaseMessage()
		add("message base class", plan.MessagePackage, "Message", func() ([]byte, error) {
			return g.renderer.RenderBaseMessage(bc)
		})
	}

	factory := emitter.Factory(application, plan.MessagePackage)
	add("message factory", plan.MessagePackage, "MessageFactory", func() ([]byte, error) {
		return g.renderer.RenderFactory(factory)
	})

	cracker := emitter.Cracker(application, plan.MessagePackage)
	add("message cracker", plan.MessagePackage, "MessageCracker", func() ([]byte, error) {
		return g.renderer.RenderCracker(cracker)
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for _, t := range tasks {
		t := t
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return writeTask(t)
			}
		})
	}
	return eg.Wait()
}

// writeTask renders one artifact and writes it to disk.
func writeTask(t task) error {
	data, err := t.render()
	if err != nil {
		return NewGenerationError(t.artifact, t.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return NewGenerationError(t.artifact, t.path, err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return NewGenerationError(t.artifact, t.path, err)
	}
	return nil
}
