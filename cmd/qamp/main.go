// Command qamp demonstrates the qamp library from the console: Grover
// amplitude-amplification searches, a BB84-style key sift with a
// classical ECDH backup channel, and the synthetic sensor models.
//
// The binary is an external caller of the library API: all validation
// and computation live in the packages it imports.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
