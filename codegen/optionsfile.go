package codegen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// optionsFile is the YAML form of the generation settings.
type optionsFile struct {
	OrchestraFile     string `yaml:"orchestra-file"`
	OutputDir         string `yaml:"output-dir"`
	DisableBigDecimal bool   `yaml:"disable-big-decimal"`
	MessageBaseClass  bool   `yaml:"message-base-class"`
	ExcludeSession    bool   `yaml:"exclude-session"`
	Fixt11Package     *bool  `yaml:"fixt11-package"`
}

// FileOptions reads generation options from a YAML file. Options are returned
// in an order that lets a file disable the fixt11 package before enabling
// session exclusion; a file that enables both still fails validation.
func FileOptions(path string) ([]Option, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quickfixj: read options file: %w", err)
	}
	var f optionsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("quickfixj: parse options file %s: %w", path, err)
	}

	var opts []Option
	if f.OrchestraFile != "" {
		opts = append(opts, WithOrchestraFile(f.OrchestraFile))
	}
	if f.OutputDir != "" {
		opts = append(opts, WithOutputDir(f.OutputDir))
	}
	if f.DisableBigDecimal {
		opts = append(opts, WithBigDecimal(false))
	}
	if f.MessageBaseClass {
		opts = append(opts, WithMessageBaseClass(true))
	}
	if f.Fixt11Package != nil {
		opts = append(opts, WithSessionPackage(*f.Fixt11Package))
	}
	if f.ExcludeSession {
		opts = append(opts, WithExcludeSession(true))
	}
	return opts, nil
}
