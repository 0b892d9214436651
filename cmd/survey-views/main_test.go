package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/jengzang/survey-dashboard-go/internal/aggregator"
	"github.com/jengzang/survey-dashboard-go/internal/models"
)

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("survey-views", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{
		"-in", "answers.csv",
		"-id", "Respondent",
		"-sheet", "Form Responses",
		"-view", " Mean-Scores ",
		"-pretty=false",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InPath != "answers.csv" || cfg.IdentifierColumn != "Respondent" || cfg.Sheet != "Form Responses" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.View != "mean-scores" {
		t.Fatalf("View=%q", cfg.View)
	}
	if cfg.Pretty {
		t.Fatalf("Pretty=true")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.View = "radar"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown view")
	}

	cfg = defaultConfig()
	cfg.InPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing -in")
	}
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun_PrintsView(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.InPath = writeCSV(t, "Partisipan,Q1\nP1,SS\nP2,TS\n")
	cfg.View = "frequency"

	var buf bytes.Buffer
	if err := run(cfg, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	var freq models.AnswerFrequency
	if err := json.Unmarshal(buf.Bytes(), &freq); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(freq) != 2 || freq[0].Code != models.CodeStronglyAgree || freq[1].Code != models.CodeDisagree {
		t.Fatalf("freq=%v", freq)
	}
}

func TestRun_IdentifierOnly(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.InPath = writeCSV(t, "Partisipan\nP1\n")

	err := run(cfg, &bytes.Buffer{})
	var schemaErr *aggregator.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}
