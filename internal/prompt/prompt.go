// Package prompt implements numbered-menu prompts over plain readers and
// writers, so interactive flows work in any terminal and in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrAborted is returned when input ends before a selection is made.
var ErrAborted = errors.New("aborted")

// Choice is one menu entry. Label is shown; Value is returned.
type Choice struct {
	Label string
	Value string
}

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Select presents a numbered list and returns the value of the chosen entry.
func (p *Prompter) Select(title string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("%s: nothing to choose from", title)
	}

	p.printMenu(title, choices)
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(choices))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(choices) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(choices))
	}
	return choices[num-1].Value, nil
}

// MultiSelect presents a numbered list and accepts any number of entries,
// separated by commas or spaces. "all" picks every entry and an empty line
// picks none. Values are returned in menu order without repeats.
func (p *Prompter) MultiSelect(title string, choices []Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	p.printMenu(title, choices)
	fmt.Fprintf(p.w, "Enter numbers separated by commas, \"all\", or leave empty for none: ")

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	picked, err := parseSelection(line, len(choices))
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(picked))
	for i, c := range choices {
		if picked[i] {
			values = append(values, c.Value)
		}
	}
	return values, nil
}

func (p *Prompter) printMenu(title string, choices []Choice) {
	fmt.Fprintf(p.w, "\n%s\n", title)
	for i, c := range choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c.Label)
	}
}

// readLine returns the next trimmed line. Input that ends without any
// text is reported as ErrAborted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseSelection turns "1, 3 4" into a set of zero-based indexes.
func parseSelection(line string, n int) (map[int]bool, error) {
	picked := make(map[int]bool)
	if line == "" {
		return picked, nil
	}
	if strings.EqualFold(line, "all") {
		for i := 0; i < n; i++ {
			picked[i] = true
		}
		return picked, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil || num < 1 || num > n {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", f, n)
		}
		picked[num-1] = true
	}
	return picked, nil
}
