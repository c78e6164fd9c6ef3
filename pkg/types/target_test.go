package types

import (
	"testing"
	"time"
)

func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr bool
	}{
		{name: "valid", target: Target{Address: "10.0.0.4", Port: 22, Timeout: 5 * time.Second}},
		{name: "empty address", target: Target{Address: "", Port: 22, Timeout: time.Second}, wantErr: true},
		{name: "whitespace address", target: Target{Address: "  ", Port: 22, Timeout: time.Second}, wantErr: true},
		{name: "port zero", target: Target{Address: "10.0.0.4", Port: 0, Timeout: time.Second}, wantErr: true},
		{name: "port too large", target: Target{Address: "10.0.0.4", Port: 65536, Timeout: time.Second}, wantErr: true},
		{name: "zero timeout", target: Target{Address: "10.0.0.4", Port: 22, Timeout: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTargetHostPort(t *testing.T) {
	target := Target{Address: "10.0.0.4", Port: 22}
	if got := target.HostPort(); got != "10.0.0.4:22" {
		t.Errorf("HostPort() = %q, want %q", got, "10.0.0.4:22")
	}

	v6 := Target{Address: "::1", Port: 2222}
	if got := v6.HostPort(); got != "[::1]:2222" {
		t.Errorf("HostPort() = %q, want %q", got, "[::1]:2222")
	}
}

func TestTargetIsHostname(t *testing.T) {
	if (Target{Address: "10.0.0.4"}).IsHostname() {
		t.Error("Expected literal IPv4 to not be a hostname")
	}
	if (Target{Address: "::1"}).IsHostname() {
		t.Error("Expected literal IPv6 to not be a hostname")
	}
	if !(Target{Address: "vm.example.com"}).IsHostname() {
		t.Error("Expected hostname to require resolution")
	}
}

func TestSummaryCounts(t *testing.T) {
	summary := NewSummary("run-1")

	summary.Add(&CheckResult{Check: "address", Status: StatusPass})
	summary.Add(&CheckResult{Check: "tcp", Status: StatusFail, Reason: ReasonConnectionRefused})
	summary.Add(SkippedResult("ping", "", "not requested"))
	summary.Finish()

	if summary.Total != 3 || summary.Passed != 1 || summary.Failed != 1 || summary.Skipped != 1 {
		t.Errorf("Unexpected counts: total=%d passed=%d failed=%d skipped=%d",
			summary.Total, summary.Passed, summary.Failed, summary.Skipped)
	}
	if summary.AllPassed() {
		t.Error("Expected AllPassed() to be false with a failed check")
	}
	if summary.Duration != summary.EndTime.Sub(summary.StartTime) {
		t.Error("Duration does not match end-start")
	}
}
