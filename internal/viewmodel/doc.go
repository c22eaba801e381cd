// Package viewmodel composes the style engine's output into complete page views.
//
// View models are plain data: the CLI, the bubbletea dashboard and the web view
// all render the same structs, so a page shows the same labels, counts and
// percentages whichever way it is displayed.
package viewmodel
