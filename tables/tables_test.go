package tables

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fiscal/errors"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, SchemaVersion, d.Schema())
	assert.Equal(t,
		[]string{"DE", "DEL", "LA", "LOS", "LAS", "Y", "MC", "MAC", "VON", "VAN", "DE LA"},
		d.Particles())
	assert.Same(t, d, Default(), "defaults are built once")
}

func TestDefault_Digraphs(t *testing.T) {
	d := Default()

	r, ok := d.Digraph("CH")
	assert.True(t, ok)
	assert.Equal(t, "C", r)

	r, ok = d.Digraph("LL")
	assert.True(t, ok)
	assert.Equal(t, "L", r)

	_, ok = d.Digraph("RR")
	assert.False(t, ok)
}

func TestDefault_Blocklist(t *testing.T) {
	d := Default()

	assert.True(t, d.IsBlocked("BUEI"))
	assert.True(t, d.IsBlocked("RUIN"))
	assert.False(t, d.IsBlocked("buei"), "comparison is case-sensitive")
	assert.False(t, d.IsBlocked("BUE"))
	assert.False(t, d.IsBlocked("OLAL"))
}

func TestDefault_Fillers(t *testing.T) {
	d := Default()

	assert.True(t, d.IsGivenNameFiller("MARIA"))
	assert.True(t, d.IsGivenNameFiller("JOSE"))
	assert.False(t, d.IsGivenNameFiller("LUISA"))
}

func TestStateCode(t *testing.T) {
	d := Default()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"AGUASCALIENTES", "AS", true},
		{"Nuevo León", "NL", true},
		{"  quintana   roo ", "QR", true},
		{"Distrito Federal", "DF", true},
		{"Atlantis", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.StateCode(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParticles_ReturnsCopy(t *testing.T) {
	d := Default()
	p := d.Particles()
	p[0] = "XX"
	assert.Equal(t, "DE", d.Particles()[0])
}

func TestNew_Validation(t *testing.T) {
	valid := func() File {
		return File{
			Schema:    "1.0.0",
			Particles: []string{"de"},
			Blocklist: []string{"ABCD"},
			Digraphs:  map[string]string{"CH": "C"},
			States:    map[string]string{"Jalisco": "JC"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*File)
	}{
		{"missing schema", func(f *File) { f.Schema = "" }},
		{"short blocklist entry", func(f *File) { f.Blocklist = []string{"ABC"} }},
		{"lowercase blocklist entry", func(f *File) { f.Blocklist = []string{"abcd"} }},
		{"empty particle", func(f *File) { f.Particles = []string{""} }},
		{"long digraph key", func(f *File) { f.Digraphs = map[string]string{"CHH": "C"} }},
		{"long digraph value", func(f *File) { f.Digraphs = map[string]string{"CH": "CC"} }},
		{"bad state code", func(f *File) { f.States = map[string]string{"JALISCO": "J"} }},
	}

	_, err := New(valid())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid()
			tt.mutate(&f)
			_, err := New(f)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestNew_NormalizesEntries(t *testing.T) {
	tb, err := New(File{
		Schema:           "1.2.0",
		Particles:        []string{" von ", "del  Río", "dé"},
		GivenNameFillers: []string{"maría"},
		States:           map[string]string{"Nuevo León": "NL"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"VON", "DEL RIO", "DE"}, tb.Particles())
	assert.True(t, tb.IsGivenNameFiller("MARIA"))
	code, ok := tb.StateCode("NUEVO LEON")
	assert.True(t, ok)
	assert.Equal(t, "NL", code)
}

func TestCheckSchema(t *testing.T) {
	assert.NoError(t, checkSchema("1.0.0"))
	assert.NoError(t, checkSchema("1.9.3"))
	assert.Error(t, checkSchema("2.0.0"))
	assert.Error(t, checkSchema("0.9.0"))
	assert.Error(t, checkSchema("not-a-version"))

	hints := errors.GetAllHints(checkSchema("2.0.0"))
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "fiscal tables show")
}

func TestFile_RoundTripsDefaults(t *testing.T) {
	f := Default().File()

	rebuilt, err := New(f)
	require.NoError(t, err)
	assert.Equal(t, Default().Particles(), rebuilt.Particles())
	assert.True(t, rebuilt.IsBlocked("PUTO"))
	assert.Contains(t, f.GivenNameFillers, "MARIA")
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_TOMLOverridesBlocklistOnly(t *testing.T) {
	path := writeFile(t, "tables.toml", `
schema = "1.1.0"
blocklist = ["OLAL"]
`)
	tb, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1.1.0", tb.Schema())
	assert.True(t, tb.IsBlocked("OLAL"))
	assert.False(t, tb.IsBlocked("BUEI"), "blocklist is replaced, not merged")
	assert.Equal(t, Default().Particles(), tb.Particles(), "particles fall back to defaults")
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "tables.yaml", `
schema: "1.0.0"
particles: ["DE"]
digraphs:
  CH: C
states:
  JALISCO: JC
`)
	tb, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"DE"}, tb.Particles())
	_, ok := tb.Digraph("LL")
	assert.False(t, ok)
	code, _ := tb.StateCode("jalisco")
	assert.Equal(t, "JC", code)
	assert.True(t, tb.IsBlocked("BUEI"), "blocklist falls back to defaults")
}

func TestLoadFile_EmptyYAMLUsesDefaults(t *testing.T) {
	tb, err := LoadFile(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default().Particles(), tb.Particles())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "tables.json", "{}"))
		require.Error(t, err)
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "bad.toml", "schema = "))
		require.Error(t, err)
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "bad.yaml", "colour: blue\n"))
		require.Error(t, err)
	})

	t.Run("unsupported schema", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "future.toml", `schema = "2.0.0"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "bad-entry.toml", `blocklist = ["abc"]`))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/etc/fiscal/tables.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("tables.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
}

func TestEncode_LoadsBack(t *testing.T) {
	for _, tc := range []struct {
		format Format
		name   string
	}{{FormatTOML, "tables.toml"}, {FormatYAML, "tables.yaml"}} {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Default().File(), tc.format))

			tb, err := LoadFile(writeFile(t, tc.name, buf.String()))
			require.NoError(t, err)
			assert.Equal(t, Default().File(), tb.File())
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Default().File(), "ini"))
}

func TestStats(t *testing.T) {
	s := Default().Stats()
	assert.Equal(t, SchemaVersion, s.Schema)
	assert.Equal(t, 11, s.Particles)
	assert.Equal(t, 5, s.Fillers)
	assert.Equal(t, 2, s.Digraphs)
	assert.GreaterOrEqual(t, s.States, 32)
	assert.Equal(t, len(Default().File().Blocklist), s.Blocklist)
}
