// Package grading decides which option each question row has marked and
// scores the extracted answers against an answer key.
//
// # Answer Extraction
//
// For each valid row, option letters are assigned A, B, C, ... by
// left-to-right bubble position. The bubble with the maximum fill ratio wins
// if that ratio exceeds the configured threshold; otherwise the question is
// recorded as unanswered. Ties at the maximum deterministically pick the
// left-most bubble — multi-mark rows are collapsed to a single answer, not
// flagged invalid. The StatusInvalid vocabulary exists for contract
// compatibility but is never produced by extraction; this is a documented
// limitation.
//
// # Evaluation
//
// Evaluate compares marked answers against a key and produces a Result whose
// JSON form is the engine's external contract: score, total, percentage
// (two-decimal), per-question status, and the marked/correct answer maps.
// Every question in the key appears exactly once in each output map,
// defaulting to the empty marker and "not_attempted" when undetected.
package grading
