package models_test

import (
	"testing"

	"github.com/ornoone/lightning-entitystore/models"
)

func TestValueEquality(t *testing.T) {
	cases := []struct {
		name  string
		a, b  models.Value
		equal bool
	}{
		{"two nones", models.None, models.None, true},
		{"none vs string", models.None, models.String(""), false},
		{"string vs none", models.String("x"), models.None, false},
		{"equal strings", models.String("john"), models.String("john"), true},
		{"different strings", models.String("john"), models.String("doe"), false},
		{"equal numbers", models.Number(42), models.Number(42), true},
		{"different numbers", models.Number(42), models.Number(43), false},
		{"string vs number", models.String("42"), models.Number(42), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.equal {
				t.Errorf("%v.Equal(%v) = %v, want %v", c.a, c.b, got, c.equal)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if s, ok := models.String("hi").AsString(); !ok || s != "hi" {
		t.Errorf("AsString() = %q, %v, want \"hi\", true", s, ok)
	}
	if _, ok := models.Number(1).AsString(); ok {
		t.Errorf("Number.AsString() ok = true, want false")
	}
	if n, ok := models.Number(7).AsNumber(); !ok || n != 7 {
		t.Errorf("AsNumber() = %d, %v, want 7, true", n, ok)
	}
	if !models.None.IsNone() {
		t.Errorf("None.IsNone() = false, want true")
	}
	if models.String("").IsNone() {
		t.Errorf("empty String.IsNone() = true, want false")
	}
}
