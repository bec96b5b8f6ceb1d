package models_test

import (
	"testing"

	"github.com/ornoone/lightning-entitystore/models"
)

func TestEpochCursorSlide(t *testing.T) {
	cursor := models.NewEpochCursor()
	if got := cursor.Get(); got != 0 {
		t.Fatalf("new cursor Get() = %d, want 0", got)
	}
	cursor.Slide(5)
	if got := cursor.Get(); got != 5 {
		t.Fatalf("after Slide(5), Get() = %d, want 5", got)
	}
	cursor.Slide(-3)
	if got := cursor.Get(); got != -3 {
		t.Fatalf("after Slide(-3), Get() = %d, want -3", got)
	}
}
