package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// JUnit-style XML structures per the de facto schema CI systems ingest.

type JUnitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	Name      string          `xml:"name,attr"`
	ID        string          `xml:"id,attr,omitempty"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      string          `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr,omitempty"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Detail  string `xml:",chardata"`
}

type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// WriteJUnit renders the summary as a single-testsuite JUnit report.
func WriteJUnit(w io.Writer, summary *types.Summary) error {
	suite := JUnitTestSuite{
		Name:      "reachcheck",
		ID:        summary.RunID,
		Tests:     summary.Total,
		Failures:  summary.Failed,
		Skipped:   summary.Skipped,
		Time:      formatSeconds(summary.Duration),
		Timestamp: summary.StartTime.UTC().Format(time.RFC3339),
	}

	for _, result := range summary.Results {
		testCase := JUnitTestCase{
			Name:      caseName(result),
			ClassName: "reachcheck." + result.Check,
			Time:      formatSeconds(result.Elapsed),
		}

		switch result.Status {
		case types.StatusFail:
			testCase.Failure = &JUnitFailure{
				Message: string(result.Reason),
				Detail:  result.Error,
			}
		case types.StatusSkipped:
			testCase.Skipped = &JUnitSkipped{Message: result.Error}
		}

		suite.TestCases = append(suite.TestCases, testCase)
	}

	report := JUnitTestSuites{Suites: []JUnitTestSuite{suite}}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteJUnitFile writes the report to path, creating or truncating the file.
func WriteJUnitFile(path string, summary *types.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create junit report: %w", err)
	}
	defer f.Close()

	if err := WriteJUnit(f, summary); err != nil {
		return fmt.Errorf("write junit report: %w", err)
	}
	return f.Sync()
}

func caseName(result types.CheckResult) string {
	if result.Target == "" {
		return result.Check
	}
	return result.Check + " " + result.Target
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
