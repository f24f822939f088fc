package codegen

import (
	"path/filepath"
	"strings"
)

// Fixed namespace segments of the generated tree.
const (
	namespaceRoot    = "quickfix"
	fieldNamespace   = "quickfix.field"
	componentSegment = "component"
	fixt11Segment    = "fixt11"
)

// Plan holds the target package for every artifact class, derived from the
// repository version and the session routing options. Package names are
// dotted; Dir maps them onto the output directory tree.
type Plan struct {
	// FieldPackage receives all field classes.
	FieldPackage string
	// ComponentPackage receives components and general groups.
	ComponentPackage string
	// MessagePackage receives application messages, the message base class,
	// the message factory and the message cracker.
	MessagePackage string
	// SessionComponentPackage receives session-exclusive groups. It equals
	// ComponentPackage when session artifacts are merged.
	SessionComponentPackage string
	// SessionMessagePackage receives session messages. It equals
	// MessagePackage when session artifacts are merged.
	SessionMessagePackage string
	// BeginString is the protocol identifier carried by the message base
	// class.
	BeginString string
}

// NewPlan computes the package targets for a repository version under the
// given configuration.
func NewPlan(version string, cfg *Config) *Plan {
	// Split off any extension-pack suffix before deriving anything.
	if i := strings.IndexByte(version, '_'); i >= 0 {
		version = version[:i]
	}
	ver := versionPath(version)
	p := &Plan{
		FieldPackage:     fieldNamespace,
		ComponentPackage: joinPackage(namespaceRoot, ver, componentSegment),
		MessagePackage:   joinPackage(namespaceRoot, ver),
		BeginString:      beginString(version),
	}
	if cfg.SessionPackage {
		p.SessionComponentPackage = joinPackage(namespaceRoot, fixt11Segment, componentSegment)
		p.SessionMessagePackage = joinPackage(namespaceRoot, fixt11Segment)
	} else {
		p.SessionComponentPackage = p.ComponentPackage
		p.SessionMessagePackage = p.MessagePackage
	}
	return p
}

// Dir returns the directory of a package under the output root.
func (p *Plan) Dir(outputDir, pkg string) string {
	return filepath.Join(outputDir, filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))
}

// ClassPath returns the file path of a class artifact.
func (p *Plan) ClassPath(outputDir, pkg, className, ext string) string {
	return filepath.Join(p.Dir(outputDir, pkg), className+ext)
}

// versionPath derives the version package segment: dots removed, lower-cased.
// "FIX.Latest" becomes "fixlatest".
func versionPath(version string) string {
	return strings.ToLower(strings.ReplaceAll(version, ".", ""))
}

// beginString maps a repository version onto the wire protocol identifier.
// FIX 5.0 and later dialects run over the FIXT.1.1 session protocol.
func beginString(version string) string {
	if strings.HasPrefix(version, "FIX.5") || version == "FIX.Latest" {
		return "FIXT.1.1"
	}
	return version
}

func joinPackage(parts ...string) string {
	return strings.Join(parts, ".")
}
