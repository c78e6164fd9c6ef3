package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ryanelliottsmith/reachcheck/pkg/checks"
	"github.com/ryanelliottsmith/reachcheck/pkg/types"
)

// PrintResult writes a single check result in the requested format.
func PrintResult(w io.Writer, result *types.CheckResult, format string, debug bool) error {
	switch format {
	case "json":
		return printJSON(w, result)
	case "yaml":
		return printYAML(w, result)
	case "text":
		return printLine(w, result, debug)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// PrintSummary writes the aggregated run summary in the requested format.
func PrintSummary(w io.Writer, summary *types.Summary, format string) error {
	switch format {
	case "json":
		return printJSON(w, summary)
	case "yaml":
		return printYAML(w, summary)
	case "text":
		return printTextSummary(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(v)
}

func printLine(w io.Writer, result *types.CheckResult, debug bool) error {
	description := describe(result, debug)

	switch result.Status {
	case types.StatusPass:
		fmt.Fprintf(w, "%s: %s\n", color.GreenString("PASS"), description)
	case types.StatusSkipped:
		fmt.Fprintf(w, "%s: %s\n", color.YellowString("SKIP"), description)
	default:
		fmt.Fprintf(w, "%s: %s (%s)\n", color.RedString("FAIL"), description, result.Reason)
	}
	return nil
}

// describe asks the check that produced the result for its one-line summary,
// falling back to "check target" when the check is not registered.
func describe(result *types.CheckResult, debug bool) string {
	if check := checks.DefaultRegistry.Get(result.Check); check != nil {
		return check.FormatSummary(result, debug)
	}
	return strings.TrimSpace(result.Check + " " + result.Target)
}

func printTextSummary(w io.Writer, summary *types.Summary) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Summary: %d passed, %d failed, %d skipped (%v)\n",
		summary.Passed, summary.Failed, summary.Skipped, summary.Duration.Round(time.Millisecond))
	if summary.AllPassed() {
		fmt.Fprintf(w, "%s\n", color.GreenString("ALL CHECKS PASSED"))
	} else {
		fmt.Fprintf(w, "%s\n", color.RedString("SOME CHECKS FAILED"))
	}
	return nil
}
