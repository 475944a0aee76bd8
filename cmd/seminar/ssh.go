package main

import (
	"context"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"seminar/internal/config"
	"seminar/internal/sshhost"
	"seminar/internal/telemetry"
)

func newSSHCmd(flags *rootFlags) *cobra.Command {
	var addr, hostKey string
	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the deck over SSH, one independent session per connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.SSH.Addr = addr
			}
			if cmd.Flags().Changed("host-key") {
				cfg.SSH.HostKeyPath = hostKey
			}
			return serveSSH(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :2222)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "ed25519 host key path, created if missing")
	return cmd
}

func serveSSH(ctx context.Context, cfg config.Config) error {
	tracer, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	pslog.Ctx(ctx).Info("ssh host starting", "addr", cfg.SSH.Addr, "host_key", cfg.SSH.HostKeyPath)
	srv := &sshhost.Server{
		Addr:        cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		NarrowWidth: cfg.NarrowWidth,
		ShowNotes:   cfg.ShowNotes,
		Tracer:      tracer,
	}
	return srv.ListenAndServe(ctx)
}
