// Package sshhost serves the deck over SSH. Every session gets its own
// controller and Bubble Tea program, so viewers navigate independently.
package sshhost

import (
	"context"
	"errors"
	"io"
	"net"

	tea "github.com/charmbracelet/bubbletea"
	gliderssh "github.com/gliderlabs/ssh"
	"pkt.systems/pslog"

	"seminar/internal/deck"
	"seminar/internal/telemetry"
	"seminar/internal/ui"
)

// Server accepts SSH sessions and runs one deck per pty.
type Server struct {
	Addr        string
	HostKeyPath string
	Listener    net.Listener // optional; overrides Addr
	NarrowWidth int
	ShowNotes   bool
	Tracer      *telemetry.Tracer

	logger pslog.Logger
}

// ListenAndServe starts the SSH server and shuts down on context cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.logger == nil {
		s.logger = pslog.Ctx(ctx)
	}

	if s.Listener == nil && s.Addr == "" {
		return ErrNoAddr
	}
	signer, err := EnsureHostKey(s.HostKeyPath)
	if err != nil {
		return err
	}

	server := &gliderssh.Server{
		Addr:    s.Addr,
		Handler: s.handleSession,
	}
	server.AddHostKey(signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()
	s.logger.Info("ssh listening", "addr", s.addr())

	select {
	case <-ctx.Done():
		_ = server.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, gliderssh.ErrServerClosed) {
			return nil
		}
		return wrap("serve", err)
	}
}

func (s *Server) addr() string {
	if s.Listener != nil {
		return s.Listener.Addr().String()
	}
	return s.Addr
}

func (s *Server) handleSession(sess gliderssh.Session) {
	log := s.logger
	if log == nil {
		log = pslog.Ctx(sess.Context())
	}
	sessionID := sess.Context().SessionID()
	log = log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	if sessionID != "" {
		log = log.With("ssh_session", shortID(sessionID))
	}

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info("ssh session rejected", "reason", "pty required")
		_, _ = io.WriteString(sess, "pty required\n")
		_ = sess.Exit(1)
		return
	}
	log.Info("ssh session opened", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

	ctx := pslog.ContextWithLogger(sess.Context(), log)
	ctrl := deck.NewController()
	ctrl.Observe(s.Tracer.Observer(ctx, shortID(sessionID)))
	model := ui.NewAppModel(ctx,
		ui.WithController(ctrl),
		ui.WithNarrowWidth(s.NarrowWidth),
		ui.WithNotes(s.ShowNotes),
	)

	prog := tea.NewProgram(model.AsTeaModel(),
		tea.WithInput(sess),
		tea.WithOutput(sess),
		tea.WithContext(ctx),
		tea.WithEnvironment(append(sess.Environ(), "TERM="+pty.Term)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	go func() {
		for win := range winCh {
			prog.Send(tea.WindowSizeMsg{Width: win.Width, Height: win.Height})
		}
	}()

	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Warn("ssh session ended with error", "err", err)
		_ = sess.Exit(1)
		return
	}
	log.Info("ssh session closed", "section", ctrl.Current())
	_ = sess.Exit(0)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
