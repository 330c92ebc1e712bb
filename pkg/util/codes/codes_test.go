package codes

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatRegistrationCode(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		seq     int64
		want    string
		wantErr error
	}{
		{
			name: "student code",
			role: "student",
			seq:  123,
			want: "STU-000123",
		},
		{
			name: "faculty code",
			role: "faculty",
			seq:  1,
			want: "FAC-000001",
		},
		{
			name: "sequence wider than padding",
			role: "student",
			seq:  1234567,
			want: "STU-1234567",
		},
		{
			name:    "unknown role",
			role:    "admin",
			seq:     5,
			wantErr: ErrUnknownRole,
		},
		{
			name:    "zero sequence",
			role:    "student",
			seq:     0,
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatRegistrationCode(tt.role, tt.seq)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FormatRegistrationCode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatRegistrationCode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatRegistrationCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(16)
	if err != nil {
		t.Fatalf("GenerateSecureToken() error = %v", err)
	}
	if len(token) != 32 {
		t.Errorf("GenerateSecureToken() length = %d, want 32", len(token))
	}
	if strings.ToLower(token) != token {
		t.Errorf("GenerateSecureToken() not lowercase hex: %q", token)
	}

	if _, err := GenerateSecureToken(0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("GenerateSecureToken(0) error = %v, want ErrInvalidLength", err)
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode() error = %v", err)
	}
	if len(code) != 6 {
		t.Errorf("GenerateNumericCode() length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("GenerateNumericCode() contains non-digit %q", r)
		}
	}
}

func TestFormatParseCodeRoundtrip(t *testing.T) {
	formatted := FormatCode("ABCD1234", 4)
	if formatted != "ABCD-1234" {
		t.Errorf("FormatCode() = %q, want %q", formatted, "ABCD-1234")
	}
	if got := ParseCode(formatted); got != "ABCD1234" {
		t.Errorf("ParseCode() = %q, want %q", got, "ABCD1234")
	}

	// Short codes pass through unchanged.
	if got := FormatCode("AB", 4); got != "AB" {
		t.Errorf("FormatCode() = %q, want %q", got, "AB")
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  abc123 "); got != "ABC123" {
		t.Errorf("NormalizeCode() = %q, want %q", got, "ABC123")
	}
}
