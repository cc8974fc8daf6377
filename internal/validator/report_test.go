package validator

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestReport_AllChecksPassed(t *testing.T) {
	v := newStubValidator(compliantDoc)
	v.Validate(context.Background())

	buf := new(bytes.Buffer)
	ok := v.Report(buf)

	if !ok {
		t.Error("Report() = false, want true")
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Validating: test.md\n") {
		t.Errorf("report header missing file name:\n%s", out)
	}
	if !strings.Contains(out, "All checks passed.") {
		t.Errorf("report missing success line:\n%s", out)
	}
	if strings.Contains(out, "ERRORS:") || strings.Contains(out, "WARNINGS:") {
		t.Errorf("clean report must not contain finding blocks:\n%s", out)
	}
}

func TestReport_ErrorsAndWarnings(t *testing.T) {
	v := newStubValidator("## Context\nbuild me a thing\n")
	v.Validate(context.Background())

	buf := new(bytes.Buffer)
	ok := v.Report(buf)

	if ok {
		t.Error("Report() = true, want false")
	}
	out := buf.String()
	if !strings.Contains(out, "ERRORS:\n  - Missing required section: Task\n") {
		t.Errorf("report missing errors block:\n%s", out)
	}
	if !strings.Contains(out, "WARNINGS:\n  - Generic phrase \"build me a\" detected") {
		t.Errorf("report missing warnings block:\n%s", out)
	}
	if strings.Contains(out, "All checks passed.") {
		t.Errorf("failing report must not contain success line:\n%s", out)
	}
}

func TestReport_WarningsOnlyStillPasses(t *testing.T) {
	doc := strings.ReplaceAll(compliantDoc, "```", "")
	v := newStubValidator(doc)
	v.Validate(context.Background())

	buf := new(bytes.Buffer)
	ok := v.Report(buf)

	if !ok {
		t.Error("Report() = false, want true for warning-only document")
	}
	out := buf.String()
	if strings.Contains(out, "ERRORS:") {
		t.Errorf("report must not contain an errors block:\n%s", out)
	}
	if !strings.Contains(out, "WARNINGS:\n  - No code examples found") {
		t.Errorf("report missing warnings block:\n%s", out)
	}
}

func TestReport_MatchesValidateResult(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"compliant", compliantDoc, true},
		{"missing sections", "## Context\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newStubValidator(tt.doc)
			valid := v.Validate(context.Background())
			reported := v.Report(new(bytes.Buffer))

			if valid != tt.want {
				t.Errorf("Validate() = %v, want %v", valid, tt.want)
			}
			if reported != valid {
				t.Errorf("Report() = %v, Validate() = %v; must agree", reported, valid)
			}
		})
	}
}
