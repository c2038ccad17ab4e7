package phone

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestPhoneCmd_TableOutput(t *testing.T) {
	out := captureOutput(t, func() {
		Cmd.Run(Cmd, []string{"+7 (123) 456-75-90", "123#456$75"})
	})

	if !strings.Contains(out, "8-123-456-75-90") {
		t.Errorf("expected formatted number in output, got: %s", out)
	}
	if !strings.Contains(out, "invalid characters") {
		t.Errorf("expected validation error in output, got: %s", out)
	}
}
