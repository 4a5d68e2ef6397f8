// Package ui renders the Money home screen and its transaction overlays with
// Bubble Tea.
//
// Core abstractions:
//   - View: A screen or overlay with its own model, update, view (Elm-style)
//   - AppModel: Root model; owns the mode, the home and history screens and
//     the single overlay slot
//   - Overlay: The modal for the controller's current Flow State
//   - KeybindRegistry/KeyHandler: Single keys and SPC-leader sequences
//
// All balance and flow mutations go through flow.Controller from inside
// Update. Modals emit messages; app_handlers_flow.go applies them.
package ui
