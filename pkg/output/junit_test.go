package output

import (
	"bytes"
	"encoding/xml"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

func buildSummary() *types.Summary {
	summary := types.NewSummary("f3b5c9c0-0000-0000-0000-000000000000")
	summary.Add(&types.CheckResult{
		Check:   "address",
		Target:  "10.0.0.4",
		Status:  types.StatusPass,
		Elapsed: time.Millisecond,
	})
	summary.Add(&types.CheckResult{
		Check:   "tcp",
		Target:  "10.0.0.4:22",
		Status:  types.StatusFail,
		Reason:  types.ReasonConnectionRefused,
		Error:   "dial tcp 10.0.0.4:22: connect: connection refused",
		Elapsed: 3 * time.Millisecond,
	})
	summary.Add(types.SkippedResult("ping", "", "not requested"))
	summary.Finish()
	return summary
}

func TestWriteJUnit(t *testing.T) {
	summary := buildSummary()

	var buf bytes.Buffer
	if err := WriteJUnit(&buf, summary); err != nil {
		t.Fatalf("WriteJUnit() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Error("Expected XML header")
	}

	var report JUnitTestSuites
	if err := xml.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Report does not round-trip through encoding/xml: %v", err)
	}

	if len(report.Suites) != 1 {
		t.Fatalf("Expected 1 testsuite, got %d", len(report.Suites))
	}
	suite := report.Suites[0]

	if suite.Name != "reachcheck" {
		t.Errorf("Suite name = %q, want reachcheck", suite.Name)
	}
	if suite.ID != summary.RunID {
		t.Errorf("Suite id = %q, want %q", suite.ID, summary.RunID)
	}
	if suite.Tests != 3 || suite.Failures != 1 || suite.Skipped != 1 {
		t.Errorf("Suite counts tests=%d failures=%d skipped=%d, want 3/1/1",
			suite.Tests, suite.Failures, suite.Skipped)
	}
	if len(suite.TestCases) != 3 {
		t.Fatalf("Expected 3 testcases, got %d", len(suite.TestCases))
	}

	var failure *JUnitFailure
	var skipped *JUnitSkipped
	for _, tc := range suite.TestCases {
		if tc.Failure != nil {
			failure = tc.Failure
		}
		if tc.Skipped != nil {
			skipped = tc.Skipped
		}
	}

	if failure == nil {
		t.Fatal("Expected a failure element for the failed check")
	}
	if failure.Message != string(types.ReasonConnectionRefused) {
		t.Errorf("Failure message = %q, want %q", failure.Message, types.ReasonConnectionRefused)
	}
	if !strings.Contains(failure.Detail, "connection refused") {
		t.Errorf("Failure detail %q missing raw error", failure.Detail)
	}
	if skipped == nil {
		t.Error("Expected a skipped element for the skipped check")
	}
}

func TestWriteJUnitFile(t *testing.T) {
	path := t.TempDir() + "/report.xml"
	if err := WriteJUnitFile(path, buildSummary()); err != nil {
		t.Fatalf("WriteJUnitFile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var report JUnitTestSuites
	if err := xml.Unmarshal(content, &report); err != nil {
		t.Fatalf("Written file is not valid XML: %v", err)
	}
}
