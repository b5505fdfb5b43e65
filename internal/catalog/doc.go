package catalog

// Package catalog implements the recipe catalog pipeline: locate the bundled
// catalog document, decode it into typed records, filter out entries without
// a name, and publish the result as the UI-visible catalog. It manages the
// load-state lifecycle and propagates snapshots to the UI via a callback.
