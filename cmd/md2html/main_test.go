package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-md2html"
)

func TestRunConvertUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	input := t.TempDir()
	output := t.TempDir()
	post := "---\ntitle: \"Hi\"\ndate: \"2020-01-01\"\ntags: []\n---\n# Hello"
	if err := os.WriteFile(filepath.Join(input, "post.md"), []byte(post), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}

	var seen md2html.Config
	moduleBuilder = func(cfg md2html.Config) (*md2html.Module, error) {
		seen = cfg
		return md2html.New(cfg)
	}

	err := runConvert([]string{
		"-input", input,
		"-output", output,
		"-natural-dates=false",
	})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	if seen.InputDir != input || seen.OutputDir != output {
		t.Fatalf("flags not applied to config: %+v", seen)
	}
	if seen.NaturalDates {
		t.Fatal("expected natural dates disabled via flag")
	}

	data, err := os.ReadFile(filepath.Join(output, "2020-01-01-hi.html"))
	if err != nil {
		t.Fatalf("expected converted output: %v", err)
	}
	if !strings.Contains(string(data), "layout: post") {
		t.Fatalf("unexpected output content:\n%s", string(data))
	}
}

func TestRunConvertRejectsInvalidConfig(t *testing.T) {
	if err := runConvert([]string{"-input", "", "-output", "out"}); err == nil {
		t.Fatal("expected error for empty input directory")
	}
}
