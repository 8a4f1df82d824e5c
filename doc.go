// Package slip39 is a Go implementation of the SLIP-0039 spec, implementing
// Shamir's Secret Sharing Scheme.
//
// A master secret is encrypted under a passphrase with a 4-round Feistel
// network, then split into a configurable two-level threshold scheme: a
// group threshold over group shares, each of which is itself split into a
// member threshold over member shares. Every member share is encoded as a
// space-separated mnemonic drawn from a fixed 1024-word dictionary.
//
// The official SLIP-0039 spec can be found at
// https://github.com/satoshilabs/slips/blob/master/slip-0039.md
package slip39
