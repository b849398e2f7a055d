package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func Test_prompter_mark(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		max         int
		want        null.Int
		wantErr     error
		wantInvalid int
	}{
		{name: "empty is absent", input: "\n", max: 10, want: null.Int{}},
		{name: "zero", input: "0\n", max: 10, want: null.IntFrom(0)},
		{name: "component max", input: "10\n", max: 10, want: null.IntFrom(10)},
		{name: "exam max", input: "50\n", max: 50, want: null.IntFrom(50)},
		{name: "spaces trimmed", input: "  7  \n", max: 10, want: null.IntFrom(7)},
		{name: "above max then valid", input: "11\n9\n", max: 10, want: null.IntFrom(9), wantInvalid: 1},
		{name: "negative then absent", input: "-1\n\n", max: 10, want: null.Int{}, wantInvalid: 1},
		{name: "garbage twice", input: "abc\n7.5\n45\n", max: 50, want: null.IntFrom(45), wantInvalid: 2},
		{name: "last line without newline", input: "8", max: 10, want: null.IntFrom(8)},
		{name: "closed input", input: "", max: 10, wantErr: io.EOF},
		{name: "closed after invalid", input: "99\n", max: 50, wantErr: io.EOF, wantInvalid: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)

			got, err := p.mark("CAT 1", tt.max)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantInvalid, strings.Count(out.String(), "Invalid input!"))
		})
	}
}

func Test_prompter_mark_message(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("51\n\n"), &out)

	_, err := p.mark("Exam", 50)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Enter marks for Exam (0-50) or press Enter to skip: ")
	assert.Contains(t, out.String(), "Invalid input! Please enter a number between 0 and 50.\n")
}

func Test_prompter_confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "yes\n", want: true},
		{input: "Y\n", want: true},
		{input: " YES \n", want: true},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "yeah\n", want: false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), io.Discard)
			got, err := p.confirm("? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
