package divination

import (
	"errors"
	"testing"
)

func TestLineCodeRoundTrip(t *testing.T) {
	for _, code := range []int{6, 7, 8, 9} {
		line, err := LineFromCode(code)
		if err != nil {
			t.Fatalf("LineFromCode(%d) error: %v", code, err)
		}
		if got := line.Code(); got != code {
			t.Errorf("LineFromCode(%d).Code() = %d", code, got)
		}
	}
}

func TestLineFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Line
	}{
		{6, Line{Age: Old, Polarity: Yin}},
		{7, Line{Age: Young, Polarity: Yang}},
		{8, Line{Age: Young, Polarity: Yin}},
		{9, Line{Age: Old, Polarity: Yang}},
	}
	for _, tt := range tests {
		got, err := LineFromCode(tt.code)
		if err != nil {
			t.Fatalf("LineFromCode(%d) error: %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("LineFromCode(%d) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestLineFromCodeInvalid(t *testing.T) {
	for _, code := range []int{0, 5, 10, -6} {
		_, err := LineFromCode(code)
		var invalid *InvalidLineCodeError
		if !errors.As(err, &invalid) {
			t.Fatalf("LineFromCode(%d) error = %v, want *InvalidLineCodeError", code, err)
		}
		if invalid.Code != code {
			t.Errorf("InvalidLineCodeError.Code = %d, want %d", invalid.Code, code)
		}
	}
}

func TestLineTransform(t *testing.T) {
	tests := []struct {
		name string
		in   Line
		want Line
	}{
		{"old yang flips to young yin", Line{Old, Yang}, Line{Young, Yin}},
		{"old yin flips to young yang", Line{Old, Yin}, Line{Young, Yang}},
		{"young yang is stable", Line{Young, Yang}, Line{Young, Yang}},
		{"young yin is stable", Line{Young, Yin}, Line{Young, Yin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Transform(); got != tt.want {
				t.Errorf("Transform() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineSymbolCoversAllStates(t *testing.T) {
	seen := map[string]bool{}
	for _, code := range []int{6, 7, 8, 9} {
		line, _ := LineFromCode(code)
		sym := line.Symbol()
		if sym == "" {
			t.Fatalf("empty symbol for code %d", code)
		}
		if seen[sym] {
			t.Errorf("symbol %q reused for code %d", sym, code)
		}
		seen[sym] = true
	}
}
