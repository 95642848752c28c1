// Package state holds the showcase's current selection.
//
// A Store is shared between the UI loop and the renderers: pickers call its
// setters, renderers read consistent snapshots, and subscribers hear about
// every field that actually changed. Encode and Restore turn a selection
// into string pairs suitable for a settings file or URL query.
package state
