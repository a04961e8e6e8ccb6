// Command zeme scaffolds and manages Zeme blog projects.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
