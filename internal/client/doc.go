// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the client services and keeps the process
// alive across logouts: after a logout the login flow starts again.
package client
