// Command adeval evaluates generated audio description tracks against
// human-authored references. It aligns the two event sequences with a
// selectable matcher and writes the correspondences and coverage stats
// for downstream scoring.
package main
