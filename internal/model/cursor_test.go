package model

import "testing"

func TestNewStepCursor(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedCount int
	}{
		{
			name:          "normal step count",
			count:         3,
			expectedCount: 3,
		},
		{
			name:          "zero steps",
			count:         0,
			expectedCount: 0,
		},
		{
			name:          "negative count is clamped",
			count:         -1,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := NewStepCursor(tt.count)

			if cursor.Index() != 0 {
				t.Errorf("expected cursor to start at index 0, got %d", cursor.Index())
			}

			if cursor.Count() != tt.expectedCount {
				t.Errorf("expected count %d, got %d", tt.expectedCount, cursor.Count())
			}
		})
	}
}

func TestStepCursor_Advance(t *testing.T) {
	cursor := NewStepCursor(3)

	// 0 -> 1
	if !cursor.Advance() {
		t.Fatal("expected Advance to succeed from index 0")
	}
	if cursor.Index() != 1 {
		t.Errorf("expected index 1, got %d", cursor.Index())
	}

	// 1 -> 2
	if !cursor.Advance() {
		t.Fatal("expected Advance to succeed from index 1")
	}
	if !cursor.AtEnd() {
		t.Error("expected cursor to be at end on last step")
	}

	// Bounded: no move past the last step
	if cursor.Advance() {
		t.Error("expected Advance to fail at end")
	}
	if cursor.Index() != 2 {
		t.Errorf("expected index to stay at 2, got %d", cursor.Index())
	}
}

func TestStepCursor_Empty(t *testing.T) {
	cursor := NewStepCursor(0)

	if !cursor.AtEnd() {
		t.Error("empty cursor should report AtEnd")
	}

	if cursor.Advance() {
		t.Error("empty cursor should never advance")
	}

	if cursor.Index() != 0 {
		t.Errorf("empty cursor index should stay 0, got %d", cursor.Index())
	}
}
