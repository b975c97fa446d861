// Package engine is the business profitability simulation core: a set of
// pure functions that turn a CalculatorState snapshot into per-product unit
// economics, aggregate monthly metrics, a profit-and-loss waterfall, and a
// catalog of strategic recommendations.
//
// Determinism model:
//   - Every function is a pure transformation over its inputs. No I/O, no
//     clocks, no global state, no mutation of arguments.
//   - Identical inputs produce bit-identical outputs, so results are safe
//     to memoize by state hash (see internal/snapshot).
//   - Concurrent calls are safe without synchronization: each call
//     allocates and returns fresh values.
//
// Error model: the engine never fails. Absent nested data computes as
// zero, every division guards its denominator, and the tax reserve is
// floored at zero. Garbage in produces a degenerate-but-defined result,
// never a panic or an error value. Negative inputs are clamped to zero by
// model.CalculatorState.Normalized at the engine boundary.
package engine
