package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/di"
	"minigrep/internal/logger"
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookup config.LookupEnv, stdout, stderr io.Writer) int {
	cfg, err := config.Build(args, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Searching for %s in %s\n", cfg.Query, cfg.FilePath)

	var runner *app.Runner
	application := fx.New(
		fx.Provide(
			func() config.LookupEnv { return lookup },
			func() io.Writer { return stdout },
			config.ProvideSettings,
			logger.ProvideLogger,
			app.NewRunner,
		),
		fx.WithLogger(di.FxLogger),
		fx.Invoke(
			di.RegisterLogSync,
			di.RegisterProfiling,
		),
		fx.Populate(&runner),
	)
	if err := application.Err(); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	if err := application.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}

	runErr := runner.Run(cfg)

	if err := application.Stop(ctx); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", runErr)
		return 1
	}
	return 0
}
