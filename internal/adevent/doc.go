// Package adevent defines the audio description event model shared by the
// loaders, matchers, and reporting code.
//
// An Event is an immutable time interval with its spoken text and the
// position it held in its source track. The package also owns the interval
// arithmetic (overlap durations, temporal IoU) and text combination rules
// that every matcher relies on, so the three matching strategies agree on
// what "overlapping" and "combined text" mean.
package adevent
