package verification

import (
	"errors"
	"testing"
)

func TestValidatorNormalize(t *testing.T) {
	validator := NewValidator("osu.edu", "buckeyemail.")

	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{
			name:  "plain institutional address",
			raw:   "brutus.1@osu.edu",
			want:  "brutus.1@osu.edu",
			valid: true,
		},
		{
			name:  "long-form alias is stripped",
			raw:   "brutus.1@buckeyemail.osu.edu",
			want:  "brutus.1@osu.edu",
			valid: true,
		},
		{
			name:  "hyphenated name",
			raw:   "smith-jones.42@osu.edu",
			want:  "smith-jones.42@osu.edu",
			valid: true,
		},
		{
			name:  "mixed case letters",
			raw:   "Brutus.1@osu.edu",
			want:  "Brutus.1@osu.edu",
			valid: true,
		},
		{
			name:  "missing dot number",
			raw:   "brutus@osu.edu",
			valid: false,
		},
		{
			name:  "missing digits",
			raw:   "brutus.@osu.edu",
			valid: false,
		},
		{
			name:  "two name segments",
			raw:   "brutus.buckeye.1@osu.edu",
			valid: false,
		},
		{
			name:  "wrong domain",
			raw:   "brutus.1@gmail.com",
			valid: false,
		},
		{
			name:  "domain dot must be literal",
			raw:   "brutus.1@osuxedu",
			valid: false,
		},
		{
			name:  "digits in name segment",
			raw:   "brutus1.1@osu.edu",
			valid: false,
		},
		{
			name:  "trailing whitespace",
			raw:   "brutus.1@osu.edu ",
			valid: false,
		},
		{
			name:  "empty",
			raw:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.Normalize(tt.raw)
			if !tt.valid {
				if !errors.Is(err, ErrInvalidEmail) {
					t.Errorf("Normalize(%q) err = %v, want ErrInvalidEmail", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidatorCustomDomain(t *testing.T) {
	validator := NewValidator("example.edu", "")

	if _, err := validator.Normalize("carmen.7@example.edu"); err != nil {
		t.Errorf("expected carmen.7@example.edu to validate, got %v", err)
	}
	if _, err := validator.Normalize("carmen.7@osu.edu"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected osu.edu address to be rejected for example.edu validator, got %v", err)
	}
}
