package main

import (
	"log"

	"polyCalc/internal/app"
)

func main() {
	cfg, err := app.LoadCfg()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.New(cfg).Run(); err != nil {
		log.Fatalf("app: %v", err)
	}
}
