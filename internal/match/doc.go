// Package match aligns a generated audio description track against a
// reference track and derives coverage statistics from the alignment.
//
// Three strategies share the Matcher contract: cluster groups events into
// connected components under time overlap (N:M), overlap greedily collects
// reference events per generated event (1:N), and dp computes a global
// alignment over a weighted time/text similarity matrix with gap penalties
// (1:1 with gaps). All three are pure batch functions over immutable event
// slices; working state such as the disjoint-set tables lives only for the
// duration of one Match call, so a Matcher is safe to reuse concurrently.
package match
