// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package book holds the client-side state of the notes book: the cached
// list of notes, its division into two-page spreads, and the page-turn state
// machine.
//
// Nothing here performs I/O or starts timers. The caller runs the event loop,
// schedules [Navigator.Finish] after [TurnDelay], and applies server results
// to the [Cache]. Every change to the cached list resets navigation to the
// first spread and invalidates any turn in flight.
package book
