// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package accounting turns three material quantities into a [models.Report].
//
// Everything here is pure: no I/O, no shared state, no clock. Arithmetic is
// exact decimal arithmetic (shopspring/decimal), so values such as 0.1 survive
// a round trip through parsing, computing and storage unchanged.
//
// The flow is:
//
//	input, err := accounting.ParseInput(form) // raw text -> decimals
//	report, err := accounting.Compute(input)  // decimals -> report
package accounting
