package main

import (
	"os"

	"gopkg.in/yaml.v3"

	cxxheaderparser "github.com/cppdecl/cxxheaderparser"
)

// fileConfig is the YAML shape of an optional --config overlay, so a
// codebase with unusual headers (heavy GNU/MSVC extension use, a strict
// CI lint pass) doesn't need its flag line repeated on every invocation.
type fileConfig struct {
	Strict         *bool    `yaml:"strict"`
	GNUAttributes  *bool    `yaml:"gnu_attributes"`
	MSVCAttributes *bool    `yaml:"msvc_attributes"`
	Concepts       *bool    `yaml:"concepts"`
	RetainDoxygen  *bool    `yaml:"retain_doxygen_comments"`
	KnownTypeNames []string `yaml:"known_type_names"`
	NoColor        *bool    `yaml:"no_color"`
}

// loadConfig reads path, if non-empty, and overlays it onto base. An
// empty path is a no-op, returning base unchanged and a nil noColor.
func loadConfig(path string, base cxxheaderparser.Options) (cxxheaderparser.Options, *bool, error) {
	if path == "" {
		return base, nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return base, nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return base, nil, err
	}

	applyConfig(fc, &base)

	return base, fc.NoColor, nil
}

func applyConfig(fc fileConfig, opts *cxxheaderparser.Options) {
	if fc.Strict != nil {
		opts.Strict = *fc.Strict
	}

	if fc.GNUAttributes != nil {
		opts.GNUAttributes = *fc.GNUAttributes
	}

	if fc.MSVCAttributes != nil {
		opts.MSVCAttributes = *fc.MSVCAttributes
	}

	if fc.Concepts != nil {
		opts.Concepts = *fc.Concepts
	}

	if fc.RetainDoxygen != nil {
		opts.RetainDoxygenComments = *fc.RetainDoxygen
	}

	if len(fc.KnownTypeNames) > 0 {
		opts.KnownTypeNames = append(opts.KnownTypeNames, fc.KnownTypeNames...)
	}
}
