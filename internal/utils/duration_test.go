package utils

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		token string
		want  time.Duration
		ok    bool
	}{
		{"10s", 10 * time.Second, true},
		{"5m", 5 * time.Minute, true},
		{"2h", 2 * time.Hour, true},
		{"1d", 24 * time.Hour, true},
		{"0s", 0, true},
		{"15", 15 * time.Minute, true},
		{"", 0, false},
		{"m", 0, false},
		{"10x", 0, false},
		{"-5s", 0, false},
		{"5 m", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseDuration(tc.token)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseDuration(%q) = %v, %t; want %v, %t", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDelayRequiresUnit(t *testing.T) {
	if _, ok := ParseDelay("15"); ok {
		t.Fatalf("expected bare number to be rejected")
	}
	if got, ok := ParseDelay("15m"); !ok || got != 15*time.Minute {
		t.Fatalf("ParseDelay(15m) = %v, %t", got, ok)
	}
	if got, ok := ParseDelay("0s"); !ok || got != 0 {
		t.Fatalf("ParseDelay(0s) = %v, %t", got, ok)
	}
}
