// Package sheet composes the recognition stages into sheet processors and
// runs them over batches.
//
// Processor is the single capability the rest of the system depends on:
// image path + answer key in, scored result out. Two implementations satisfy
// it — Engine runs the real recognition pipeline, Mock returns canned marks
// for testing composition without image fixtures. Which one a program uses is
// decided at composition time, never by naming convention.
//
// Each Process call is a single synchronous chain with no internal
// parallelism and no state retained across invocations, so one Processor may
// serve concurrent callers. ProcessBatch exploits that: sheets are
// embarrassingly parallel and are fanned out to a bounded worker pool, with
// per-sheet failures recorded as placeholders instead of aborting the batch.
package sheet
