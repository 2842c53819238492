// Package signal produces the uncorrelated sample fields that the noise
// pipeline colors, and provides the range helpers format writers use.
package signal
