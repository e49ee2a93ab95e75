package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// IntrospectionGraphName is the named dependency holding the Mermaid graph served at /introspect.
const IntrospectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector writes the configuration keys read during startup,
// flagging the ones that fell back to their defaults.
type ReportLoggerIntrospector struct {
	Output io.Writer
}

// Introspect writes one line per configuration key.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	out := i.Output
	if out == nil {
		out = os.Stdout
	}
	for _, c := range r.Configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
		}
		if _, err := fmt.Fprintf(out, "config %s (%s)\n", c.Key, source); err != nil {
			return err
		}
	}
	return nil
}
