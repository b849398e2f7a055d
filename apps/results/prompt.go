package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
)

// prompter reads operator answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints `label` and returns the next trimmed line.
// io.EOF is returned only when the input is closed before anything was typed.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// mark asks for an optional mark in [0, max] until it gets one. An empty answer means absent.
func (p *prompter) mark(label string, max int) (null.Int, error) {
	for {
		s, err := p.line(fmt.Sprintf("Enter marks for %s (0-%d) or press Enter to skip: ", label, max))
		if err != nil {
			return null.Int{}, err
		}
		if s == "" {
			return null.Int{}, nil
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= max {
			return null.IntFrom(n), nil
		}
		fmt.Fprintf(p.out, "Invalid input! Please enter a number between 0 and %d.\n", max)
	}
}

// confirm returns true for "yes" or "y", in any case.
func (p *prompter) confirm(label string) (bool, error) {
	s, err := p.line(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}
