package codegen

import (
	"log/slog"
	"runtime"
)

// Well-known component and group identifiers. The standard header and trailer
// are recognized by id during traversal; the two session-exclusive groups are
// recognized through a SessionGroupRegistry.
const (
	// ComponentStandardHeader is the StandardHeader component id.
	ComponentStandardHeader = 1024
	// ComponentStandardTrailer is the StandardTrailer component id.
	ComponentStandardTrailer = 1025
	// GroupHopGrp is the HopGrp repeating group id.
	GroupHopGrp = 2085
	// GroupMsgTypeGrp is the MsgTypeGrp repeating group id.
	GroupMsgTypeGrp = 2098
)

// SessionGroupRegistry names the repeating groups that belong exclusively to
// the session layer. Messages carry a category attribute but groups do not,
// so session-exclusive groups have to be declared by id. An alternative would
// be deriving group membership from the category of the messages that
// reference it; the registry keeps the declared ids authoritative instead.
type SessionGroupRegistry map[int]struct{}

// StandardSessionGroups is the registry for the standard session layer:
// HopGrp and MsgTypeGrp.
var StandardSessionGroups = SessionGroupRegistry{
	GroupHopGrp:     {},
	GroupMsgTypeGrp: {},
}

// Contains reports whether the group id is registered as session-exclusive.
func (r SessionGroupRegistry) Contains(id int) bool {
	_, ok := r[id]
	return ok
}

// Config holds the validated generation settings. Build one through
// NewConfig; options are validated as they are applied, so a Config obtained
// from NewConfig never carries a conflicting combination.
type Config struct {
	// OrchestraFile is the path of the input repository document.
	OrchestraFile string
	// OutputDir is the root of the generated source tree.
	OutputDir string
	// BigDecimal selects arbitrary-precision decimal fields. When false,
	// decimal-valued fields are generated on the native double type.
	BigDecimal bool
	// MessageBaseClass enables the synthetic message superclass and the
	// standard header and trailer components.
	MessageBaseClass bool
	// ExcludeSession omits session messages, session-exclusive groups and
	// fields used only by the session layer. Mutually exclusive with
	// SessionPackage.
	ExcludeSession bool
	// SessionPackage routes session artifacts into the dedicated fixt11
	// packages instead of merging them into the version packages.
	SessionPackage bool
	// SessionGroups registers the groups exclusive to the session layer.
	SessionGroups SessionGroupRegistry
	// Workers bounds the number of parallel artifact writers.
	Workers int
	// Logger receives schema integrity diagnostics.
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithOrchestraFile sets the input repository document path.
func WithOrchestraFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("OrchestraFile", "", "orchestra file cannot be empty")
		}
		c.OrchestraFile = path
		return nil
	}
}

// WithOutputDir sets the output root directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("OutputDir", "", "output directory cannot be empty")
		}
		c.OutputDir = dir
		return nil
	}
}

// WithBigDecimal selects between arbitrary-precision and native double
// representation for decimal-valued fields.
func WithBigDecimal(enabled bool) Option {
	return func(c *Config) error {
		c.BigDecimal = enabled
		return nil
	}
}

// WithMessageBaseClass enables generation of the message base class together
// with the standard header and trailer components.
func WithMessageBaseClass(enabled bool) Option {
	return func(c *Config) error {
		c.MessageBaseClass = enabled
		return nil
	}
}

// WithExcludeSession omits the session layer from the output. It cannot be
// enabled while the dedicated session package is enabled.
func WithExcludeSession(enabled bool) Option {
	return func(c *Config) error {
		if enabled && c.SessionPackage {
			return NewConfigError("ExcludeSession", "SessionPackage", "options are mutually exclusive")
		}
		c.ExcludeSession = enabled
		return nil
	}
}

// WithSessionPackage routes session artifacts into the dedicated fixt11
// packages. It cannot be enabled while session exclusion is enabled.
func WithSessionPackage(enabled bool) Option {
	return func(c *Config) error {
		if enabled && c.ExcludeSession {
			return NewConfigError("SessionPackage", "ExcludeSession", "options are mutually exclusive")
		}
		c.SessionPackage = enabled
		return nil
	}
}

// WithSessionGroups replaces the session-exclusive group registry.
func WithSessionGroups(registry SessionGroupRegistry) Option {
	return func(c *Config) error {
		if registry == nil {
			return NewConfigError("SessionGroups", "", "registry cannot be nil")
		}
		c.SessionGroups = registry
		return nil
	}
}

// WithWorkers bounds the number of parallel artifact writers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n > 0 {
			c.Workers = n
		}
		return nil
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", "", "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered; the invariant between ExcludeSession and SessionPackage is
// checked on every application, not only at construction.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a Config with the default settings and applies options.
// Defaults: big decimal fields on, message base class off, session layer
// included and routed to the dedicated fixt11 packages.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		OutputDir:      "target/generated-sources",
		BigDecimal:     true,
		SessionPackage: true,
		SessionGroups:  StandardSessionGroups,
		Workers:        runtime.GOMAXPROCS(0),
		Logger:         slog.Default(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
