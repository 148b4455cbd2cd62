package format

import (
	"math"
	"testing"
	"time"
)

func TestSize(t *testing.T) {
	const tib = int64(1024 * 1024 * 1024 * 1024)

	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1, "1 Bytes"},
		{500, "500 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KiB"},
		{1536, "1.5 KiB"},
		{1234567, "1.18 MiB"},
		{5 * 1024 * 1024 * 1024, "5 GiB"},
		{tib, "1 TiB"},
		{tib * 3 / 2, "1.5 TiB"},
		{tib * 1024, "1024 TiB"},
		{-2048, "-2 KiB"},
	}

	for _, tt := range tests {
		if got := Size(tt.bytes); got != tt.want {
			t.Errorf("Size(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestDurationMillis(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0m"},
		{999, "0m"},
		{59999, "0m:59s"},
		{65000, "1m:5s"},
		{120000, "2m"},
		{120999, "2m"},
		{3600000, "1h:0m:0s"},
		{3661000, "1h:1m:1s"},
		{90000000, "25h:0m:0s"},
		{-5000, "0m"},
		// past the time.Duration range
		{9300000000000, "2583333h:20m:0s"},
		{math.MaxInt64, "2562047788015h:12m:55s"},
	}

	for _, tt := range tests {
		if got := DurationMillis(tt.ms); got != tt.want {
			t.Errorf("DurationMillis(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestDuration_MatchesMillis(t *testing.T) {
	d := 2*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond
	if got := Duration(d); got != "2h:3m:4s" {
		t.Errorf("Duration(%v) = %q, want %q", d, got, "2h:3m:4s")
	}
	if Duration(d) != DurationMillis(d.Milliseconds()) {
		t.Error("Duration and DurationMillis disagree")
	}
}
