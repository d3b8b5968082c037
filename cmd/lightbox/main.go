package main

import (
	"lightbox/internal/ui"
)

func main() {
	ui.CreateApplication()
}
