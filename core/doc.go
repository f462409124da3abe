// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the page selection state (which tab is active) and overlay screen stack
// - tab and pane policy (tab definitions, pane host focus/jump behavior, tab layouts)
//
// Not allowed here:
// - concrete page content (see package app)
// - low-level widget rendering primitives
package core
