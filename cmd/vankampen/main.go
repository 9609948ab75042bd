// Command vankampen computes the Zariski-Van Kampen presentation of
// the fundamental group of the complement of a complex plane algebraic
// curve.
package main

import "os"

// configuration is the koanf-backed application configuration, pushed
// into scope once by loadConfig, mirroring the single package-global
// the teacher CLI exposes for the same purpose.
var configuration *koanfConfig

func exitApp(code int) {
	os.Exit(code)
}

func main() {
	Execute()
}
