package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"seminar/internal/audience"
	"seminar/internal/config"
	"seminar/internal/deck"
	"seminar/internal/telemetry"
	"seminar/internal/ui"
)

func newPresentCmd(flags *rootFlags) *cobra.Command {
	var audienceAddr string
	var noNotes bool
	cmd := &cobra.Command{
		Use:           "seminar",
		Short:         "Present \"" + deck.Brand + "\" in the terminal",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("audience-addr") {
				cfg.Audience.Addr = audienceAddr
			}
			if noNotes {
				cfg.ShowNotes = false
			}
			return present(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&audienceAddr, "audience-addr", "", "serve the browser audience mirror on this address")
	cmd.Flags().BoolVar(&noNotes, "no-notes", false, "start with presenter notes hidden")
	return cmd
}

// present runs the deck on the local terminal. The terminal belongs to the
// UI, so logs go to cfg.LogFile or nowhere.
func present(ctx context.Context, cfg config.Config) error {
	logger, closeLog, err := tuiLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = pslog.ContextWithLogger(ctx, logger)
	defer redirectStdLog(pslog.LogLogger(logger).Writer())()

	tracer, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctrl := deck.NewController()
	ctrl.Observe(tracer.Observer(ctx, "local"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Audience.Addr != "" {
		ln, err := net.Listen("tcp", cfg.Audience.Addr)
		if err != nil {
			return fmt.Errorf("audience listen %s: %w", cfg.Audience.Addr, err)
		}
		hub := audience.NewHub()
		ctrl.Observe(hub.Observer())
		srv := audience.NewServer(ctx, hub)
		go func() {
			if err := srv.Serve(ctx, ln); err != nil {
				logger.Warn("audience mirror stopped", "err", err)
			}
		}()
	}

	model := ui.NewAppModel(ctx,
		ui.WithController(ctrl),
		ui.WithNarrowWidth(cfg.NarrowWidth),
		ui.WithNotes(cfg.ShowNotes),
	)
	prog := tea.NewProgram(model.AsTeaModel(),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	logger.Info("presenting", "narrow_width", cfg.NarrowWidth, "audience", cfg.Audience.Addr)
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run deck: %w", err)
	}
	logger.Info("presentation ended", "section", ctrl.Current())
	return nil
}

func tuiLogger(path string) (pslog.Logger, func(), error) {
	if path == "" {
		return pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured}), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := pslog.NewWithOptions(f, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

// redirectStdLog points the standard logger at w and returns a func that
// restores the previous writer.
func redirectStdLog(w io.Writer) func() {
	prev := log.Writer()
	log.SetOutput(w)
	return func() { log.SetOutput(prev) }
}
