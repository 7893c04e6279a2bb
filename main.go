package main

import (
	"log"
	"os"
	"strings"

	"LocalPaint/internal/config"
	"LocalPaint/internal/ui"
)

func main() {
	path := ""
	if len(os.Args) > 1 && strings.HasSuffix(os.Args[1], ".toml") {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Config error, using defaults: %v", err)
	}
	log.Println("Starting LocalPaint")
	ui.RunApp(cfg)
}
