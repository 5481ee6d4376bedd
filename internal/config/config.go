// internal/config/config.go
// Package config loads an optional YAML run description. The file mirrors
// the CLI flags so repeated runs can be scripted; any flag given explicitly
// on the command line wins over the file.
package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"parablast/internal/cli"
	"parablast/internal/errs"
)

// File is the YAML schema. Pointer fields distinguish "absent" from zero
// values for booleans and counts.
type File struct {
	Database     string   `yaml:"database"`
	Query        string   `yaml:"query"`
	DBBatches    *int     `yaml:"db_batches"`
	QueryBatches *int     `yaml:"query_batches"`
	Workers      *int     `yaml:"workers"`
	Tool         string   `yaml:"tool"`
	ToolOpts     []string `yaml:"tool_opts"`
	OutFmt       string   `yaml:"outfmt"`
	Out          string   `yaml:"out"`
	SingleHeader *bool    `yaml:"single_header"`
	Keep         *bool    `yaml:"keep"`
	Workdir      string   `yaml:"workdir"`
}

// Load reads and strictly decodes a run config.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, errs.IO("read config "+path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, errs.Validationf("parse config %s: %v", path, err)
	}
	return f, nil
}

// Apply copies file values into opt for every flag the user did not set on
// the command line.
func Apply(f File, opt *cli.Options) {
	set := func(name string) bool { return opt.Explicit[name] }

	if f.Database != "" && !set("database") {
		opt.Database = f.Database
	}
	if f.Query != "" && !set("query") {
		opt.Query = f.Query
	}
	if f.DBBatches != nil && !set("db-batches") {
		opt.DBBatches = *f.DBBatches
	}
	if f.QueryBatches != nil && !set("query-batches") {
		opt.QueryBatches = *f.QueryBatches
	}
	if f.Workers != nil && !set("workers") {
		opt.Workers = *f.Workers
	}
	if f.Tool != "" && !set("tool") {
		opt.Tool = f.Tool
	}
	if len(f.ToolOpts) > 0 && !set("tool-opt") {
		opt.ToolOpts = append([]string(nil), f.ToolOpts...)
	}
	if f.OutFmt != "" && !set("outfmt") {
		opt.OutFmt = f.OutFmt
	}
	if f.Out != "" && !set("out") {
		opt.Out = f.Out
	}
	if f.SingleHeader != nil && !set("single-header") {
		opt.SingleHeader = *f.SingleHeader
	}
	if f.Keep != nil && !set("keep") {
		opt.Keep = *f.Keep
	}
	if f.Workdir != "" && !set("workdir") {
		opt.Workdir = f.Workdir
	}
}
