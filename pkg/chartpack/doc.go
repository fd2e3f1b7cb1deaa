// Package chartpack packages, lints, and builds dependencies for Helm charts
// as part of a build pipeline.
//
// It drives the helm executable over a deterministic sequence of discovered
// chart directories, resolves the effective chart version once per
// invocation, and publishes a placeholder artifact so the host build graph
// can track the chart without storing the chart archive itself.
package chartpack
