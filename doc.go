// Package tradex is the client side of the TradeX paper-trading platform.
//
// All business logic (authentication, order execution, ledger updates and
// market data retrieval) lives in the remote TradeX backend; this module
// holds the client's own state and computations:
//   - Session: an opaque bearer token resolved to a user profile, absence
//     of which simply means "anonymous".
//   - Gateway calls: one request/response exchange per operation, fixed
//     JSON shapes, no retry and no caching.
//   - Quote refresh: periodic batch fetch of market prices for the held
//     symbols, replacing the whole quote book on every tick.
//   - Currency normalization: every quote converted independently into the
//     display currency (INR), one symbol's failure never blocking another.
//   - Valuation: per-position and portfolio-level unrealized profit and
//     loss, recomputed in full whenever orders or converted prices change.
//
// The root package carries the domain types and the valuation pipeline;
// api speaks to the backend, session owns the stored token, fx resolves
// exchange rates, renderer turns reports into markdown and cmd wires
// everything into the `tradex` command-line tool.
package tradex
