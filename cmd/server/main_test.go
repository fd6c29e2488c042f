package main

import (
	"testing"
	"time"
)

func TestShutdownTimeout(t *testing.T) {
	cases := map[time.Duration]time.Duration{
		0:                10 * time.Second,
		-time.Second:     10 * time.Second,
		30 * time.Second: 30 * time.Second,
	}
	for in, want := range cases {
		if got := shutdownTimeout(in); got != want {
			t.Errorf("shutdownTimeout(%v) = %v, want %v", in, got, want)
		}
	}
}
