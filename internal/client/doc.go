// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI to the client services and owns the process
// lifecycle: signal handling and the startup server check.
package client
