package sshhost

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHostKeyPath is returned when no host key location is configured.
	ErrNoHostKeyPath = errors.New("sshhost: host key path is required")
	// ErrNoAddr is returned when neither Addr nor Listener is set.
	ErrNoAddr = errors.New("sshhost: listen address is required")
)

func wrap(op string, err error) error {
	return fmt.Errorf("sshhost: %s: %w", op, err)
}
