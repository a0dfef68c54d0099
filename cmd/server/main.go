package main

import (
	"io"

	"github.com/google/logger"

	"puzzle_place/internal/app"
)

func main() {
	defer logger.Init("puzzle_place", true, false, io.Discard).Close()

	a := app.NewApp()
	err := a.Run()
	if err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
