package model

import "testing"

func TestLoadState_IsActive(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateNotStarted, false},
		{LoadStateLoading, true},
		{LoadStatePublished, false},
		{LoadStateFailed, false},
	}

	for _, test := range tests {
		if got := test.state.IsActive(); got != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.state, got, test.expected)
		}
	}
}

func TestLoadState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateNotStarted, false},
		{LoadStateLoading, false},
		{LoadStatePublished, true},
		{LoadStateFailed, true},
	}

	for _, test := range tests {
		if got := test.state.IsTerminal(); got != test.expected {
			t.Errorf("IsTerminal() for %s = %v, expected %v", test.state, got, test.expected)
		}
	}
}

func TestLoadState_String(t *testing.T) {
	if LoadStateLoading.String() != "Loading" {
		t.Errorf("String() = %s, expected Loading", LoadStateLoading.String())
	}
}
