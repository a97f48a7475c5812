// Package models defines the core domain models for Triptally.
//
// # Models
//
//   - Trip: a group of participants who share expenses
//   - Participant: one member of a trip
//   - Expense: a single shared cost with a split specification
//   - ShareSpec: one participant's stake in one expense
//   - Settlement: a recorded payment between participants
//
// # Design Principles
//
// 1. Amounts are shopspring decimals at cent precision, never float64
// 2. Expenses are immutable inputs to a calculation; computed share
// amounts are outputs, not state
// 3. Avoid circular references: relationships use ID strings, not pointers
package models
