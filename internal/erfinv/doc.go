// Package erfinv implements the inverse error function via piecewise
// rational polynomial approximation.
//
// Two schemes are provided as a closed variant set:
//
//   - FastApprox: a short 2-branch rational expansion (central region by
//     threshold 0.7 on |y|, tail via a sqrt-log transform). Cheap, accurate
//     to roughly 2e-3 before refinement.
//   - PreciseApprox: a 7-region rational approximation with per-region
//     recentering, accurate to single-precision roundoff across (-1, 1).
//
// Both schemes share the same contract: |y| > 1 yields NaN, |y| == 1 yields
// signed infinity, and (for the precise scheme) y == ±0 yields ±0. Domain
// errors are signaled through the result per IEEE-754, never by panicking.
//
// The coefficient tables are process-wide immutable constants. They are the
// single source of truth for both the scalar evaluators in this package and
// the GPU kernels: internal/wgsl packs the same tables into the byte layout
// the generated kernel's struct declares.
package erfinv
