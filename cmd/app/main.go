package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/cli"
	"github.com/bagdasarian/time-worked-alert/internal/logger"
)

var version = "dev"

func main() {
	fallback, err := logger.New("info")
	if err != nil {
		fallback = zap.NewNop()
	}

	if err := cli.Execute(context.Background(), version, os.Args[1:], fallback); err != nil {
		os.Exit(1)
	}
}
