package config

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/lineup/internal/review"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if len(c.Marks) != 3 {
		t.Errorf("len(Marks) = %d, want 3", len(c.Marks))
	}
	if c.Marks[0].Glyph != "*" {
		t.Errorf("Marks[0].Glyph = %q, want %q", c.Marks[0].Glyph, "*")
	}
	if c.Searching {
		t.Error("Searching = true, want false")
	}
	if c.LookupTimeout != 10*time.Second {
		t.Errorf("LookupTimeout = %v, want 10s", c.LookupTimeout)
	}
}

func TestNewWithOptions(t *testing.T) {
	marks := []review.Entry{{Key: 'v', Glyph: "+"}}
	c, err := New(
		WithMarks(marks...),
		WithSearching(true),
		WithKeyOverride("mark.advance", 'g'),
		WithLookupTimeout(time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if len(c.Marks) != 1 || c.Marks[0].Key != 'v' {
		t.Errorf("Marks = %v, want single 'v' entry", c.Marks)
	}
	if !c.Searching {
		t.Error("Searching = false, want true")
	}
	if c.Keys["mark.advance"] != 'g' {
		t.Errorf("Keys[mark.advance] = %q, want 'g'", c.Keys["mark.advance"])
	}
	if c.LookupTimeout != time.Second {
		t.Errorf("LookupTimeout = %v, want 1s", c.LookupTimeout)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "empty marks",
			mutate:  func(c *Config) { c.Marks = nil },
			wantErr: review.ErrEmptyAlphabet,
		},
		{
			name:    "duplicate glyph",
			mutate:  func(c *Config) { c.Marks = []review.Entry{{Key: 'a', Glyph: "*"}, {Key: 'b', Glyph: "*"}} },
			wantErr: review.ErrDuplicateGlyph,
		},
		{
			name:    "search url without placeholder",
			mutate:  func(c *Config) { c.SearchURL = "https://example.com/" },
			wantErr: ErrBadTemplate,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.LookupTimeout = 0 },
			wantErr: ErrBadTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	c := Default()
	a, err := c.Alphabet()
	if err != nil {
		t.Fatalf("Alphabet() error = %v", err)
	}
	if a.Default() != "*" {
		t.Errorf("Default() = %q, want %q", a.Default(), "*")
	}
}
