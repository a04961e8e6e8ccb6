// Command main is the entry point for the blog API server.
package main

import (
	"log"

	zeme "github.com/Brooktek/Zeme-Blog-Library-sub000"
)

func main() {
	if err := zeme.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
