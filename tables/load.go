package tables

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/logger"
	"gopkg.in/yaml.v3"
)

// Format names a tables file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.WithHint(
			errors.Newf("unsupported tables file %s", path),
			"use a .toml, .yaml or .yml file",
		)
	}
}

// LoadFile reads a tables file. Sections the file leaves out are taken from
// the built-in defaults, so a file may override only the blocklist.
func LoadFile(path string) (*Tables, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tables file %s", path)
	}

	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode tables file %s", path)
	}

	t, err := New(withDefaults(f, Default().File()))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid tables file %s", path)
	}

	logger.ComponentLogger("tables").Infow("loaded tables",
		logger.FieldFile, path,
		logger.FieldSchema, t.Schema())
	return t, nil
}

// Decode parses a tables file body in the given format without validating it.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return File{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			logger.ComponentLogger("tables").Warnw("ignoring unknown keys in tables file",
				"keys", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, err
		}
	default:
		return File{}, errors.Newf("unsupported tables format %q", format)
	}
	return f, nil
}

// withDefaults fills every section f leaves empty from d
func withDefaults(f, d File) File {
	if f.Schema == "" {
		f.Schema = d.Schema
	}
	if f.Particles == nil {
		f.Particles = d.Particles
	}
	if f.GivenNameFillers == nil {
		f.GivenNameFillers = d.GivenNameFillers
	}
	if f.Blocklist == nil {
		f.Blocklist = d.Blocklist
	}
	if f.Digraphs == nil {
		f.Digraphs = d.Digraphs
	}
	if f.States == nil {
		f.States = d.States
	}
	return f
}
