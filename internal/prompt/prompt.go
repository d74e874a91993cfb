// Package prompt provides the yes/no confirmation asked before bulk updates.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Func adapts a plain function to Confirmer
type Func func(question string) (bool, error)

// Confirm calls f
func (f Func) Confirm(question string) (bool, error) {
	return f(question)
}

// Line reads a single answer line from In after writing the question to Out
type Line struct {
	In  io.Reader
	Out io.Writer
}

// Confirm accepts only "y" (case-insensitive, surrounding space ignored).
// A missing trailing newline is fine; EOF with no input is a refusal.
func (l *Line) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprint(l.Out, question); err != nil {
		return false, err
	}

	response, err := bufio.NewReader(l.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	return IsYes(response), nil
}

// IsYes reports whether an answer line means yes
func IsYes(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}
