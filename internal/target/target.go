// Package target resolves and validates the executable under test.
package target

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/failure"
)

// DefaultMaxAttempts bounds the interactive prompt.
const DefaultMaxAttempts = 5

const promptText = "Input path of the file you want to test: "

// Validate checks that path names an existing regular file. Symlinks are
// followed.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return failure.New(failure.InvalidExecutable, "Executable file '%s' does not exist.", path)
	}
	return nil
}

// Prompter asks for the executable path on an interactive stream.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	maxAttempts int
	echo        bool
}

// NewPrompter returns a Prompter reading answers from in and writing prompts
// to out. A non-positive maxAttempts falls back to DefaultMaxAttempts.
func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{in: in, out: out, maxAttempts: maxAttempts}
}

// EchoAnswers makes the prompter repeat every answer it reads. Use it when
// the input is not a terminal and the answers would otherwise be missing from
// the transcript.
func (p *Prompter) EchoAnswers() *Prompter {
	p.echo = true
	return p
}

// ExecutablePath prompts until an answer passes Validate, the attempts run
// out, or the user quits with q, quit, exit or end of input.
func (p *Prompter) ExecutablePath(ctx context.Context) (string, error) {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(p.in, done)

	var lastErr error
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		fmt.Fprint(p.out, promptText)

		var next line
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return "", failure.Wrap(failure.PromptAborted, ctx.Err(), "Prompt interrupted")
		case next = <-lines:
		}
		if next.err == io.EOF {
			fmt.Fprintln(p.out)
			return "", failure.New(failure.PromptAborted, "No executable provided.")
		}
		if next.err != nil {
			fmt.Fprintln(p.out)
			return "", failure.Wrap(failure.PromptAborted, next.err, "Prompt interrupted")
		}

		answer := strings.TrimSpace(next.text)
		if p.echo {
			fmt.Fprintln(p.out, answer)
		}
		switch strings.ToLower(answer) {
		case "q", "quit", "exit":
			return "", failure.New(failure.PromptAborted, "No executable provided.")
		}

		if lastErr = Validate(answer); lastErr == nil {
			return answer, nil
		}
		fmt.Fprintf(p.out, "Invalid file path: %s. Please try again.\n", answer)
	}

	return "", lastErr
}

type line struct {
	text string
	err  error
}

// readLines feeds the lines of r to the returned channel from one goroutine.
// The last value carries io.EOF or the read error. The goroutine stops once
// done is closed, unless it is blocked reading r.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-done:
				return
			}
		}

		last := line{err: scanner.Err()}
		if last.err == nil {
			last.err = io.EOF
		}
		select {
		case lines <- last:
		case <-done:
		}
	}()
	return lines
}
