package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decs(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = dec(s)
	}
	return out
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"33.333333", "33.33"},
		{"29.999999999999996", "30"},
	}

	for _, tt := range tests {
		if got := Round(dec(tt.in)); !got.Equal(dec(tt.want)) {
			t.Errorf("Round(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEqualTolerance(t *testing.T) {
	// Floating-point noise at the cent boundary must compare equal.
	a := decimal.NewFromFloat(29.999999999999996)
	if !Equal(a, dec("30")) {
		t.Errorf("Equal(%s, 30) = false, want true", a)
	}
	if Equal(dec("30"), dec("30.01")) {
		t.Error("Equal(30, 30.01) = true, want false (a full cent apart)")
	}
	if !IsZero(dec("0.009")) {
		t.Error("IsZero(0.009) = false, want true")
	}
	if IsZero(dec("0.01")) {
		t.Error("IsZero(0.01) = true, want false")
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(dec("10"), decimal.Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(10, 0) error = %v, want ErrDivisionByZero", err)
	}
	got, err := Div(dec("10"), dec("3"))
	if err != nil {
		t.Fatalf("Div(10, 3) unexpected error: %v", err)
	}
	if !got.Equal(dec("3.33")) {
		t.Errorf("Div(10, 3) = %s, want 3.33", got)
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		n       int
		want    []string
		wantErr bool
	}{
		{
			name:  "100 among 3: first part absorbs the extra cent",
			total: "100", n: 3,
			want: []string{"33.34", "33.33", "33.33"},
		},
		{
			name:  "even division",
			total: "90", n: 3,
			want: []string{"30", "30", "30"},
		},
		{
			name:  "two remainder cents",
			total: "100.01", n: 3,
			want: []string{"33.34", "33.34", "33.33"},
		},
		{
			name:  "zero total",
			total: "0", n: 4,
			want: []string{"0", "0", "0", "0"},
		},
		{
			name:  "single part",
			total: "55.55", n: 1,
			want: []string{"55.55"},
		},
		{name: "zero parts", total: "10", n: 0, wantErr: true},
		{name: "negative parts", total: "10", n: -2, wantErr: true},
		{name: "negative total", total: "-1", n: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Distribute(dec(tt.total), tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDistribution) {
					t.Fatalf("Distribute() error = %v, want ErrInvalidDistribution", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Distribute() unexpected error: %v", err)
			}
			assertParts(t, parts, tt.want, tt.total)
		})
	}
}

func TestDistributeByPercentages(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		pcts    []string
		want    []string
		wantErr bool
	}{
		{
			name:  "50/30/20",
			total: "100", pcts: []string{"50", "30", "20"},
			want: []string{"50", "30", "20"},
		},
		{
			name:  "residual cent goes wholly to the largest part",
			total: "1.12", pcts: []string{"60", "20", "20"},
			want: []string{"0.68", "0.22", "0.22"},
		},
		{
			name:  "over-rounded halves, residual comes off the first",
			total: "10.01", pcts: []string{"50", "50"},
			want: []string{"5", "5.01"},
		},
		{name: "does not sum to 100", total: "100", pcts: []string{"50", "30"}, wantErr: true},
		{name: "empty", total: "100", pcts: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := DistributeByPercentages(dec(tt.total), decs(tt.pcts...))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPercentageSum) {
					t.Fatalf("error = %v, want ErrInvalidPercentageSum", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertParts(t, parts, tt.want, tt.total)
		})
	}
}

func TestDistributeByShares(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		weights []string
		want    []string
		wantErr bool
	}{
		{
			name:  "1:1:2",
			total: "100", weights: []string{"1", "1", "2"},
			want: []string{"25", "25", "50"},
		},
		{
			name:  "residual to largest",
			total: "100", weights: []string{"1", "1", "1"},
			want: []string{"33.34", "33.33", "33.33"},
		},
		{
			name:  "zero weight owes nothing",
			total: "60", weights: []string{"0", "2", "1"},
			want: []string{"0", "40", "20"},
		},
		{name: "all zero", total: "100", weights: []string{"0", "0"}, wantErr: true},
		{name: "negative weight", total: "100", weights: []string{"2", "-1"}, wantErr: true},
		{name: "empty", total: "100", weights: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := DistributeByShares(dec(tt.total), decs(tt.weights...))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShareWeights) {
					t.Fatalf("error = %v, want ErrInvalidShareWeights", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertParts(t, parts, tt.want, tt.total)
		})
	}
}

// TestDistributeExactness sweeps totals and part counts checking the
// reconstruction guarantee: parts always sum back to the total exactly.
func TestDistributeExactness(t *testing.T) {
	totals := []string{"0.01", "0.99", "1", "7.35", "99.99", "100", "1234.56", "0.02"}
	for _, total := range totals {
		for n := 1; n <= 11; n++ {
			parts, err := Distribute(dec(total), n)
			if err != nil {
				t.Fatalf("Distribute(%s, %d) error: %v", total, n, err)
			}
			sum := decimal.Zero
			for _, p := range parts {
				if p.IsNegative() {
					t.Errorf("Distribute(%s, %d) produced negative part %s", total, n, p)
				}
				sum = sum.Add(p)
			}
			if !sum.Equal(dec(total)) {
				t.Errorf("Distribute(%s, %d) parts sum to %s", total, n, sum)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		tag    string
		want   string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0.1", "EUR", "€0.10"},
		{"30", "???", "??? 30.00"},
	}

	for _, tt := range tests {
		if got := Format(dec(tt.amount), tt.tag); got != tt.want {
			t.Errorf("Format(%s, %s) = %q, want %q", tt.amount, tt.tag, got, tt.want)
		}
	}
}

func assertParts(t *testing.T, parts []decimal.Decimal, want []string, total string) {
	t.Helper()
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	sum := decimal.Zero
	for i, p := range parts {
		if !p.Equal(dec(want[i])) {
			t.Errorf("part[%d] = %s, want %s", i, p, want[i])
		}
		sum = sum.Add(p)
	}
	if !sum.Equal(dec(total)) {
		t.Errorf("parts sum to %s, want %s", sum, total)
	}
}
