// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

var stdout io.Writer = os.Stdout

// textWriter is implemented by results that have a plain text rendering.
type textWriter interface {
	writeText(w io.Writer)
}

func write(format string, v textWriter) error {
	switch format {
	case "", "text":
		v.writeText(stdout)
		return nil
	case "json":
		if err := json.MarshalWrite(stdout, v, jsontext.WithIndent("  ")); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout)
		return err
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format: %q", format)
}

func checkFormat(format string) error {
	switch format {
	case "", "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format: %q", format)
}
