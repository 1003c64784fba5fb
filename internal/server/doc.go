// Package server implements the HTTP API that feeds sheet images and answer
// keys to the grading processor.
//
// This surface is glue: it validates uploads, stages them on disk, looks up
// the answer key, and hands both to a sheet.Processor. All recognition
// happens behind that interface, so the server works identically with the
// real engine and the mock processor.
//
// # Endpoints
//
//   - GET  /healthz      — liveness probe
//   - GET  /answer-keys  — list available answer key identifiers
//   - POST /upload       — multipart image upload ("file" field) plus an
//     "exam_key" form field; responds with the grading result as JSON
//
// # Upload Validation
//
// Uploads must be .jpg, .jpeg, or .png and at most 5 MB. An unknown exam_key
// yields 404; an unreadable or undecodable image yields 422. Every grading
// result is also persisted as JSON in the results directory for audit.
//
// # Directory State
//
// Upload and result locations are an explicit Dirs value created by the
// caller at startup and passed into New. The server holds no process-global
// directory state.
package server
