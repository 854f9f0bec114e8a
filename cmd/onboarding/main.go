// Package main provides a CLI for building and ordering RIASEC onboarding
// questionnaires.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	onboardingcmd "github.com/louisbranch/careerpath/internal/cmd/onboarding"
	"github.com/louisbranch/careerpath/internal/platform/cmd"
	"github.com/louisbranch/careerpath/internal/platform/config"
)

func main() {
	cfg, err := onboardingcmd.LoadConfig()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cmd.RunWithTelemetry(ctx, cmd.ServiceOnboarding, func(ctx context.Context) error {
		return onboardingcmd.Run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	})
	config.ExitOnError(err)
}
