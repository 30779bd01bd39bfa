package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv returns an Environment writing to in-memory buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr}, stdout, stderr
}

// mapTemplate builds a template with regions A and B, the RdYlGn legends,
// a title and ticks tick_0..tick_10.
func mapTemplate() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg">
  <path id="A" style="fill:#000000;"/>
  <path id="B" style="stroke:#111111;fill:#000000"/>
  <image id="RdYlGn" style="display:none"/>
  <image id="RdYlGn_reversed" style="display:none"/>
  <text id="colorbar_title">placeholder</text>
`)
	for i := 0; i <= 10; i++ {
		fmt.Fprintf(&b, "  <text id=\"tick_%d\"></text>\n", i)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// svgFiles lists the .svg files in dir.
func svgFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return matches
}
