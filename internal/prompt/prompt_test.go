package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envChoices = []Choice{
	{Label: "Cloudflare Pages", Value: "cloudflare"},
	{Label: "Cloudflare Workers", Value: "cloudflare-workers"},
	{Label: "Node.js", Value: "node"},
}

func TestSelect(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("3\n"), &out)

	got, err := p.Select("Select environment:", envChoices)
	require.NoError(t, err)
	assert.Equal(t, "node", got)

	assert.Contains(t, out.String(), "Select environment:")
	assert.Contains(t, out.String(), "  2) Cloudflare Workers")
	assert.Contains(t, out.String(), "Enter number [1-3]: ")
}

func TestSelect_NoTrailingNewline(t *testing.T) {
	p := New(strings.NewReader("1"), &bytes.Buffer{})

	got, err := p.Select("env", envChoices)
	require.NoError(t, err)
	assert.Equal(t, "cloudflare", got)
}

func TestSelect_Invalid(t *testing.T) {
	for _, input := range []string{"0\n", "4\n", "node\n", "\n"} {
		p := New(strings.NewReader(input), &bytes.Buffer{})
		if _, err := p.Select("env", envChoices); err == nil {
			t.Errorf("Select(%q) expected error", input)
		}
	}
}

func TestSelect_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Select("env", envChoices)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
}

func TestMultiSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "2\n", []string{"cloudflare-workers"}},
		{"commas", "3,1\n", []string{"cloudflare", "node"}},
		{"spaces and commas", "1, 3 3\n", []string{"cloudflare", "node"}},
		{"all", "ALL\n", []string{"cloudflare", "cloudflare-workers", "node"}},
		{"none", "\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.MultiSelect("plugins", envChoices)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiSelect_Invalid(t *testing.T) {
	p := New(strings.NewReader("1,9\n"), &bytes.Buffer{})

	_, err := p.MultiSelect("plugins", envChoices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"9"`)
}

func TestMultiSelect_NoChoices(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	got, err := p.MultiSelect("plugins", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, out.String())
}

func TestMultiSelect_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.MultiSelect("plugins", envChoices)
	assert.ErrorIs(t, err, ErrAborted)
}
