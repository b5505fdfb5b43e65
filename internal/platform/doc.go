package platform

// Package platform provides OS-facing helpers: resolving bundled assets
// shipped next to the application binary and preparing image thumbnails
// for list display.
