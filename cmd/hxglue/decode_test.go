package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/fleetcore/hxglue/internal/errors"
	"github.com/fleetcore/hxglue/pkg/toast"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "toast",
			value: `{"showToast":{"message":"Vehicle deleted","type":"error"}}`,
			want:  []string{"outcome: toast", "message: Vehicle deleted", "type:    error"},
		},
		{
			name:  "default type",
			value: `{"showToast":{"message":"Saved"}}`,
			want:  []string{"outcome: toast", "type:    success"},
		},
		{
			name:  "non-string type",
			value: `{"showToast":{"message":"Saved","type":5}}`,
			want:  []string{"outcome: toast", "type:    info"},
		},
		{"absent", "", []string{"outcome: absent"}},
		{"ignored", `{"itemAdded":true}`, []string{"outcome: ignored"}},
		{"event name only", "itemAdded", []string{"outcome: malformed"}},
		{"malformed", `{"showToast":"Saved"}`, []string{"outcome: malformed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "decode", tt.value)
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}

func TestDecodeCommandJSON(t *testing.T) {
	out, err := execute(t, "decode", "--json", `{"showToast":{"message":"Driver assigned","type":"info"}}`)
	if err != nil {
		t.Fatal(err)
	}

	var res decodeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output %q: %v", out, err)
	}
	if res.Outcome != toast.OutcomeToast || res.Message != "Driver assigned" || res.Type != toast.TypeInfo {
		t.Errorf("res = %+v", res)
	}
}

func TestDecodeCommandTooManyArgs(t *testing.T) {
	_, err := execute(t, "decode", "a", "b")
	e, ok := err.(*errors.Error)
	if !ok || e.Code != errors.CodeInvalidArgs {
		t.Fatalf("err = %v", err)
	}
}

func TestVersionCommandShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("out = %q, want %q", out, version)
	}
}

func TestReportCompactUnlessVerbose(t *testing.T) {
	err := errors.New(errors.CodeInvalidPort).WithDetail("Port must be between 1 and 65535.")

	var compact bytes.Buffer
	report(&compact, err, false)
	if got := compact.String(); got != err.FormatCompact()+"\n" {
		t.Errorf("compact = %q", got)
	}

	var full bytes.Buffer
	report(&full, err, true)
	if !strings.Contains(full.String(), "Port must be between 1 and 65535.") {
		t.Errorf("verbose report missing detail: %q", full.String())
	}
}

func TestReportPlainError(t *testing.T) {
	var out bytes.Buffer
	report(&out, io.ErrUnexpectedEOF, false)
	if !strings.Contains(out.String(), "unexpected EOF") {
		t.Errorf("out = %q", out.String())
	}
}
