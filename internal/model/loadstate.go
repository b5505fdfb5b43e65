package model

// LoadState represents the status of a single catalog load attempt
type LoadState string

const (
	// LoadStateNotStarted means no load has been requested yet
	LoadStateNotStarted LoadState = "NotStarted"

	// LoadStateLoading means a load is in progress
	LoadStateLoading LoadState = "Loading"

	// LoadStatePublished means the load finished and the catalog was replaced
	LoadStatePublished LoadState = "Published"

	// LoadStateFailed means the load failed and left the catalog untouched
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsActive returns true if a load is currently in flight
func (ls LoadState) IsActive() bool {
	return ls == LoadStateLoading
}

// IsTerminal returns true if the load attempt has finished, successfully or
// not. A new explicit load is the only way out of a terminal state.
func (ls LoadState) IsTerminal() bool {
	return ls == LoadStatePublished || ls == LoadStateFailed
}
