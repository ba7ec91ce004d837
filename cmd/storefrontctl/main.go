package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"storefront/internal/app"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/infra/prompt"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domainerrors.UserMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	cmd, ok := lookupCommand(name)
	if !ok {
		printUsage(os.Stderr)

		return errors.Errorf("unknown command %q", name)
	}

	fs := flag.NewFlagSet(cmd.name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: storefrontctl %s %s\n", cmd.name, cmd.usage)
		fs.PrintDefaults()
	}
	yes := fs.Bool("yes", false, "Skip confirmation prompts")
	act := cmd.setup(fs)
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cli := &client{out: os.Stdout, yes: *yes}
	fxApp := fx.New(
		app.Core(),
		fx.Provide(newConfirmer),
		fx.WithLogger(newFxLogger),
		fx.Populate(
			&cli.catalog,
			&cli.cart,
			&cli.auth,
			&cli.checkout,
			&cli.orders,
			&cli.admin,
		),
	)
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "failed to build storefront")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start storefront")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()

		if err := fxApp.Stop(stopCtx); err != nil {
			slog.Warn("Failed to stop storefront", slog.Any("error", err))
		}
	}()

	return act(ctx, cli, fs.Args())
}

// newConfirmer asks on the terminal; prompts go to stderr so stdout only
// carries results.
func newConfirmer() service.Confirmer {
	return prompt.NewTerminalConfirmer(os.Stdin, os.Stderr)
}

func newFxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)

	return l
}

// client is what every subcommand acts through.
type client struct {
	out io.Writer
	yes bool

	catalog  usecase.CatalogUsecase
	cart     usecase.CartUsecase
	auth     usecase.AuthUsecase
	checkout usecase.CheckoutUsecase
	orders   usecase.OrderUsecase
	admin    usecase.AdminUsecase
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: storefrontctl <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", cmd.name, cmd.summary)
	}
}
