// Package view renders the dashboard screens as strings.
//
// Each renderer takes a small state struct built by the TUI model, so the
// layouts can be tested without a running Bubble Tea program.
//
// # Components
//
//   - [RenderStats]: the four statistics cards above the list
//   - [RenderFilterBar]: search box and the active status/priority filters
//   - [RenderList]: the filtered project list with its empty-state hint
//   - [RenderDetails]: one project with tasks, reminders and team
//   - [RenderForm]: the create/edit project form
//   - [RenderHelpBar]: key hints for the current mode
package view
