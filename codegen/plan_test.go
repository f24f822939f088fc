package codegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	t.Run("latest with extension pack suffix", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(t, err)

		p := NewPlan("FIX.Latest_EP269", cfg)

		assert.Equal(t, "quickfix.field", p.FieldPackage)
		assert.Equal(t, "quickfix.fixlatest.component", p.ComponentPackage)
		assert.Equal(t, "quickfix.fixlatest", p.MessagePackage)
		assert.Equal(t, "quickfix.fixt11.component", p.SessionComponentPackage)
		assert.Equal(t, "quickfix.fixt11", p.SessionMessagePackage)
		assert.Equal(t, "FIXT.1.1", p.BeginString)
	})

	t.Run("merged session packages", func(t *testing.T) {
		cfg, err := NewConfig(WithSessionPackage(false))
		require.NoError(t, err)

		p := NewPlan("FIX.Latest", cfg)

		assert.Equal(t, p.ComponentPackage, p.SessionComponentPackage)
		assert.Equal(t, p.MessagePackage, p.SessionMessagePackage)
	})
}

func TestVersionPath(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"FIX.Latest", "fixlatest"},
		{"FIX.5.0SP2", "fix50sp2"},
		{"FIX.4.4", "fix44"},
		{"FIXT.1.1", "fixt11"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, versionPath(tt.version))
		})
	}
}

func TestBeginString(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"FIX.Latest", "FIXT.1.1"},
		{"FIX.5.0", "FIXT.1.1"},
		{"FIX.5.0SP2", "FIXT.1.1"},
		{"FIX.4.4", "FIX.4.4"},
		{"FIX.4.2", "FIX.4.2"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, beginString(tt.version))
		})
	}
}

func TestPlanPaths(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	p := NewPlan("FIX.Latest_EP269", cfg)

	assert.Equal(t, filepath.Join("out", "quickfix", "field"), p.Dir("out", p.FieldPackage))
	assert.Equal(t,
		filepath.Join("out", "quickfix", "fixlatest", "component", "Parties.java"),
		p.ClassPath("out", p.ComponentPackage, "Parties", ".java"))
}
