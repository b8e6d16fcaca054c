package util

import "testing"

func TestFormatHMS(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{5, "00:00:05"},
		{65, "00:01:05"},
		{600, "00:10:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{-10, "00:00:00"},
	}
	for _, c := range cases {
		if got := FormatHMS(c.seconds); got != c.want {
			t.Errorf("FormatHMS(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestFormatTimeSpent(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
	}
	for _, c := range cases {
		if got := FormatTimeSpent(c.seconds); got != c.want {
			t.Errorf("FormatTimeSpent(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
