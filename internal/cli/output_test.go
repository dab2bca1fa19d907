package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	if err := f.Success("ignored", mockDataWithID{ID: "abc", Name: "Test"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["Name"] != "Test" {
		t.Errorf("Expected data.Name to be 'Test', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet_WithID(t *testing.T) {
	f, out, _ := newFormatter(false, true)

	if err := f.Success("ignored", mockDataWithID{ID: "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := out.String(); got != "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2\n" {
		t.Errorf("quiet output = %q, want the id only", got)
	}
}

// Edge case: quiet mode without an id prints nothing at all
func TestOutputFormatter_Success_Quiet_WithoutID(t *testing.T) {
	f, out, _ := newFormatter(false, true)

	if err := f.Success("ignored", mockDataWithoutID{Name: "x"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", out.String())
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newFormatter(false, false)

	if err := f.Success("✓ Record created", mockDataWithoutID{}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := out.String(); got != "✓ Record created\n" {
		t.Errorf("output = %q", got)
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)

	if err := f.ErrorWithSuggestion("NOT_FOUND", "record not found", "check the id"); err != nil {
		t.Fatalf("ErrorWithSuggestion() error = %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors go to stdout, stderr = %q", errOut.String())
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "NOT_FOUND" || errData["suggestion"] != "check the id" {
		t.Errorf("error payload = %v", errData)
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	f, out, errOut := newFormatter(false, false)

	if err := f.Error("DELETE_ERROR", "record not found"); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "record not found") {
		t.Errorf("stderr = %q, want the message", errOut.String())
	}
}
