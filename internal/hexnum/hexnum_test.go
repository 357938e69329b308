package hexnum

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    string // decimal
		wantErr bool
	}{
		{"zero", "0x0", "0", false},
		{"no prefix", "172721e", "24277534", false},
		{"with prefix", "0x172721e", "24277534", false},
		{"empty", "", "0", false},
		{"bare prefix", "0x", "0", false},
		{"leading zeros", "0x00e4e1c0", "15000000", false},
		{"whitespace", "  0x10  ", "16", false},
		{"max uint64", "0xffffffffffffffff", "18446744073709551615", false},
		{"above uint64", "0x10000000000000000", "18446744073709551616", false},
		{"max uint256", "0x" + strings.Repeat("f", 64), "", false},
		{"overflow", "0x1" + strings.Repeat("0", 64), "", true},
		{"invalid hex", "0xzz", "", true},
		{"negative", "0x-ff", "", true},
		{"bare negative", "-ff", "", true},
		{"plus sign", "0x+1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuantity(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if tt.wantErr || tt.want == "" {
				return
			}
			if got.Dec() != tt.want {
				t.Errorf("ParseQuantity(%q) = %s, want %s", tt.hex, got.Dec(), tt.want)
			}
		})
	}
}

func TestParseUint64(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    uint64
		wantErr bool
	}{
		{"zero", "0x0", 0, false},
		{"block height", "0x1444f3b", 21253947, false},
		{"empty", "", 0, false},
		{"max", "0xffffffffffffffff", 1<<64 - 1, false},
		{"overflow", "0x10000000000000000", 0, true},
		{"invalid", "0xnope", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint64(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUint64(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseUint64(%q) = %d, want %d", tt.hex, got, tt.want)
			}
		})
	}
}

// Decoding then re-encoding any valid hex quantity must preserve the value.
func TestQuantityRoundTrip(t *testing.T) {
	inputs := []string{
		"0x0",
		"0x1",
		"0xe4e1c0",
		"0x1c9c380",
		"0xde0b6b3a7640000", // 1 ETH in wei
		"0xffffffffffffffff",
		"0x10000000000000000",
		"0x" + strings.Repeat("f", 64),
	}

	for _, in := range inputs {
		v, err := ParseQuantity(in)
		if err != nil {
			t.Fatalf("ParseQuantity(%q): %v", in, err)
		}
		again, err := ParseQuantity(FormatQuantity(v))
		if err != nil {
			t.Fatalf("re-parse of %q: %v", FormatQuantity(v), err)
		}
		if !v.Eq(again) {
			t.Errorf("round trip of %q: got %s, want %s", in, again.Hex(), v.Hex())
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(nil); got != "0x0" {
		t.Errorf("FormatQuantity(nil) = %q, want 0x0", got)
	}
	if got := FormatQuantity(uint256.NewInt(30_000_000)); got != "0x1c9c380" {
		t.Errorf("FormatQuantity(30000000) = %q, want 0x1c9c380", got)
	}
}

func TestFormatUint64(t *testing.T) {
	if got := FormatUint64(21253947); got != "0x1444f3b" {
		t.Errorf("FormatUint64(21253947) = %q, want 0x1444f3b", got)
	}
	if got := FormatUint64(0); got != "0x0" {
		t.Errorf("FormatUint64(0) = %q, want 0x0", got)
	}
}
