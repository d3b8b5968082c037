// Main entry point for the application
package main

import (
	"lightbox/internal/ui"
	"log"
)

func main() {
	// Set the logger prefix
	log.SetPrefix("Lightbox ")

	ui.CreateApplication()
}
