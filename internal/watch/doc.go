// Package watch re-runs an action whenever a gene file changes on
// disk.
//
// Editors typically replace files by writing a temporary file and
// renaming it over the original, so the watcher observes the parent
// directory and filters events down to the one file of interest.
// Bursts of events are debounced into a single callback.
package watch
