// Command noisegen synthesizes colored noise fields.
//
// Usage:
//
//	noisegen generate [flags]
//	noisegen analyze --size N[,N[,N]] FILE.raw
//	noisegen colors
//
// Examples:
//
//	noisegen generate --size 10000 --exponent -1.5
//	noisegen generate --size 512,512 --color brown --output brown.png
//	noisegen generate --size 64,64,64 --distribution gaussian --output brick.bob
package main

import "github.com/cwbudde/algo-noise/internal/cmd"

func main() {
	cmd.Execute()
}
