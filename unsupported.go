//go:build tinygo && !attiny861

package attiny861

// Register addresses are only valid for the ATtiny861. Building for any
// other target stops here.
var _ = incompatibleChip_requiresATtiny861
