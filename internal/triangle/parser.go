package triangle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	DefaultEndMarker = "EOF"
	DefaultSeparator = " "

	maxLineSize = 1 << 20
)

var ErrEmptySeparator = errors.New("separator must not be empty")

type ParseOptions struct {
	// EndMarker stops reading when a line equals it exactly.
	EndMarker string
	Separator string
	// OnLine, if set, receives every line read, including the end marker.
	OnLine func(line int, text string)
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		EndMarker: DefaultEndMarker,
		Separator: DefaultSeparator,
	}
}

// Parse reads rows from r until the end marker or end of input. The first
// malformed row aborts parsing and no triangle is returned.
func Parse(r io.Reader, opts ParseOptions) (*Triangle, error) {
	if opts.Separator == "" {
		return nil, ErrEmptySeparator
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	t := &Triangle{}
	for scanner.Scan() {
		text := scanner.Text()
		if opts.OnLine != nil {
			opts.OnLine(len(t.rows)+1, text)
		}
		if text == opts.EndMarker {
			break
		}

		row, err := parseRow(text, len(t.rows), opts.Separator)
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read triangle: %w", err)
	}

	return t, nil
}

func parseRow(text string, index int, sep string) ([]Cell, error) {
	expected := index + 1
	tokens := splitTokens(text, sep)
	if len(tokens) > expected {
		return nil, &RowLengthError{Line: expected, Expected: expected, Actual: len(tokens)}
	}

	row := make([]Cell, 0, expected)
	for i := 0; i < expected; i++ {
		if i >= len(tokens) {
			return nil, &RowLengthError{Line: expected, Expected: expected, Actual: i}
		}
		value, err := strconv.ParseInt(tokens[i], 10, 64)
		if err != nil {
			return nil, &TokenError{Line: expected, Token: tokens[i], Err: err}
		}
		row = append(row, Cell{Value: value})
	}
	return row, nil
}

// splitTokens drops trailing empty tokens, so "1 2 " has two values. An
// empty line stays a single empty token.
func splitTokens(text, sep string) []string {
	tokens := strings.Split(text, sep)
	if text == "" {
		return tokens
	}
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
