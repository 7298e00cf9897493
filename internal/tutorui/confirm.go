package tutorui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm writes prompt to w, reads one line from r and invokes cb.Save on a
// yes answer or cb.Cancel otherwise. End of input and I/O errors count as
// cancel. Returns true when the answer was yes.
func Confirm(r io.Reader, w io.Writer, prompt string, cb SaveCancelCallback) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s [y/N]: ", prompt); err != nil {
		cb.Cancel()
		return false, fmt.Errorf("write prompt: %w", err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		cb.Cancel()
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		cb.Save()
		return true, nil
	default:
		cb.Cancel()
		return false, nil
	}
}
