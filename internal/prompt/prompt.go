package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Result is either an answered value or a cancellation.
type Result[T any] struct {
	Value     T
	Cancelled bool
}

// Answer wraps a resolved value.
func Answer[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Cancel returns a cancelled Result.
func Cancel[T any]() Result[T] {
	return Result[T]{Cancelled: true}
}

// Option is one entry of a select menu.
type Option struct {
	Label string
	Value string
}

// TextRequest describes a free-text question.
type TextRequest struct {
	Message string
	// Default is used when the user submits an empty line.
	Default string
	// Validate returns a non-empty message to reject the answer and ask again.
	Validate func(string) string
}

// SelectRequest describes a single-choice question.
type SelectRequest struct {
	Message string
	Options []Option
}

// Prompter asks questions. Implementations block until an answer or a
// cancellation arrives.
type Prompter interface {
	Text(req TextRequest) (Result[string], error)
	Select(req SelectRequest) (Result[string], error)
}

var (
	questionMark = color.New(color.FgCyan).SprintFunc()
	dim          = color.New(color.Faint).SprintFunc()
	errorText    = color.New(color.FgYellow).SprintFunc()
	cancelText   = color.New(color.FgRed).SprintFunc()
	stepMark     = color.New(color.FgGreen).SprintFunc()
)

// Console asks questions on a line-oriented reader/writer pair.
type Console struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewConsole creates a Console reading answers from r and writing questions to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{reader: bufio.NewReader(r), w: w}
}

// Text asks req.Message until the answer passes req.Validate.
func (c *Console) Text(req TextRequest) (Result[string], error) {
	for {
		fmt.Fprintf(c.w, "%s %s", questionMark("?"), req.Message)
		if req.Default != "" {
			fmt.Fprintf(c.w, " %s", dim("("+req.Default+")"))
		}
		fmt.Fprint(c.w, " ")

		line, ok, err := c.readLine()
		if err != nil {
			return Result[string]{}, fmt.Errorf("reading answer: %w", err)
		}
		if !ok {
			return Cancel[string](), nil
		}

		value := line
		if value == "" {
			value = req.Default
		}
		if req.Validate != nil {
			if msg := req.Validate(value); msg != "" {
				fmt.Fprintf(c.w, "  %s\n", errorText(msg))
				continue
			}
		}
		return Answer(value), nil
	}
}

// Select shows a numbered menu and asks until a listed number is entered.
func (c *Console) Select(req SelectRequest) (Result[string], error) {
	if len(req.Options) == 0 {
		return Result[string]{}, fmt.Errorf("select %q has no options", req.Message)
	}

	fmt.Fprintf(c.w, "%s %s\n", questionMark("?"), req.Message)
	for i, opt := range req.Options {
		fmt.Fprintf(c.w, "  %d) %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(c.w, "Enter number [1-%d]: ", len(req.Options))

		line, ok, err := c.readLine()
		if err != nil {
			return Result[string]{}, fmt.Errorf("reading selection: %w", err)
		}
		if !ok {
			return Cancel[string](), nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(req.Options) {
			fmt.Fprintf(c.w, "  %s\n", errorText(fmt.Sprintf("invalid selection %q: choose 1-%d", line, len(req.Options))))
			continue
		}
		return Answer(req.Options[num-1].Value), nil
	}
}

// Step prints a progress line.
func (c *Console) Step(msg string) {
	fmt.Fprintf(c.w, "%s %s\n", stepMark("◇"), msg)
}

// Outro prints the closing message of a successful run.
func (c *Console) Outro(msg string) {
	fmt.Fprintf(c.w, "\n%s\n", msg)
}

// Cancelled prints the cancellation notice.
func (c *Console) Cancelled(msg string) {
	fmt.Fprintf(c.w, "%s %s\n", cancelText("■"), msg)
}

// readLine returns the trimmed line and false once input is exhausted.
// A final line without a newline still counts as an answer.
func (c *Console) readLine() (string, bool, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", false, nil
			}
			return strings.TrimSpace(line), true, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}
