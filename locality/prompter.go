package locality

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter is a Prompter over plain streams: the message is written
// without a trailing newline and one line is read as the answer.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from r and writes prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

// Ask writes message and returns the next line without its terminator.
// A final line lacking "\n" is still returned; io.EOF is reported only when
// nothing was read.
func (p *LinePrompter) Ask(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, message); err != nil {
		return "", fmt.Errorf("locality: write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Warn writes message on its own line.
func (p *LinePrompter) Warn(message string) {
	fmt.Fprintln(p.out, message)
}
