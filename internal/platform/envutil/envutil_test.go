package envutil

import (
	"testing"
	"time"
)

func TestParsers(t *testing.T) {
	t.Setenv("ENVUTIL_INT", " 42 ")
	t.Setenv("ENVUTIL_BAD", "forty")
	t.Setenv("ENVUTIL_BOOL", "On")
	t.Setenv("ENVUTIL_FLOAT", "0.25")
	t.Setenv("ENVUTIL_SECS", "-3")

	if got := Int("ENVUTIL_INT", 1); got != 42 {
		t.Fatalf("Int: want=42 got=%d", got)
	}
	if got := Int("ENVUTIL_BAD", 7); got != 7 {
		t.Fatalf("Int fallback: want=7 got=%d", got)
	}
	if got := Int64("ENVUTIL_INT", 0); got != 42 {
		t.Fatalf("Int64: want=42 got=%d", got)
	}
	if !Bool("ENVUTIL_BOOL", false) {
		t.Fatalf("Bool: want=true")
	}
	if !Bool("ENVUTIL_BAD", true) {
		t.Fatalf("Bool fallback: want=true")
	}
	if got := Float("ENVUTIL_FLOAT", 0); got != 0.25 {
		t.Fatalf("Float: want=0.25 got=%v", got)
	}
	if got := Seconds("ENVUTIL_SECS", time.Minute); got != time.Minute {
		t.Fatalf("Seconds fallback: want=1m got=%v", got)
	}
	if got := String("ENVUTIL_UNSET_XYZ", "dflt"); got != "dflt" {
		t.Fatalf("String: want=dflt got=%q", got)
	}
}
