package workflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalConfirmer prompts on the terminal and accepts y/yes
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AutoConfirmer accepts every prompt; used for --yes
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool {
	return true
}
