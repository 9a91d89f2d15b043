package main

import (
	"context"
	"io"

	"github.com/fwojciec/wikiexport/export"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Exporter *export.Exporter
}

// ExportCmd handles a single page export.
type ExportCmd struct {
	TargetURL  string
	Output     string
	KeepHTML   bool
	HTMLOutput string
	SplitDir   string
}
