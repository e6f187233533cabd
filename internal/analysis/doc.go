// Package analysis provides per-solution diagnostics for computed
// eigenstates.
//
// The package includes checks a report quotes next to each solution:
//
//   - [NodeCount]: interior zero crossings (state n has n nodes)
//   - [NormalizationError]: deviation of the discrete L2 norm from one
//   - [AnalyticDeviation]: relative error against closed-form levels
//   - [Expectation]: position moments, <p^2>, and the uncertainty product
//   - [MomentumDensity]: momentum-space probability density via FFT
//
// # Sanity Checking
//
// The node count is the cheapest independent confirmation that the
// root-finder landed on the n-th state and skipped none:
//
//	if analysis.NodeCount(pair.Psi) != n {
//	    // a level was missed by the scan
//	}
package analysis
