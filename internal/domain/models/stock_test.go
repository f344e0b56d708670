package models

import "testing"

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{name: "empty defaults to 1M", in: "", want: PeriodMonth},
		{name: "day", in: "1D", want: PeriodDay},
		{name: "week", in: "5D", want: PeriodWeek},
		{name: "month", in: "1M", want: PeriodMonth},
		{name: "year", in: "1Y", want: PeriodYear},
		{name: "lowercase accepted", in: "1d", want: PeriodDay},
		{name: "unknown rejected", in: "3M", wantErr: true},
		{name: "garbage rejected", in: "yearly", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePeriod(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSymbol(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "uppercases", in: "aapl", want: "AAPL"},
		{name: "trims whitespace", in: "  msft ", want: "MSFT"},
		{name: "already canonical", in: "BRK.B", want: "BRK.B"},
		{name: "hyphen allowed", in: "bf-b", want: "BF-B"},
		{name: "digits allowed", in: "petr4", want: "PETR4"},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "whitespace only rejected", in: "   ", wantErr: true},
		{name: "too long rejected", in: "ABCDEFGHIJK", wantErr: true},
		{name: "invalid charset rejected", in: "AA PL", wantErr: true},
		{name: "unicode rejected", in: "ÄAPL", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSymbol(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseSymbol(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSymbol(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseSymbol(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
