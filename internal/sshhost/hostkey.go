package sshhost

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

const hostKeyComment = "seminar host key"

// EnsureHostKey returns the ed25519 signer stored at path. A missing key is
// generated and written with 0600 permissions; an existing file is never
// overwritten.
func EnsureHostKey(path string) (ssh.Signer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoHostKeyPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := ssh.ParsePrivateKey(data)
		if err != nil {
			return nil, wrap("parse host key", err)
		}
		return signer, nil
	case errors.Is(err, fs.ErrNotExist):
		return generateHostKey(path)
	default:
		return nil, wrap("read host key", err)
	}
}

func generateHostKey(path string) (ssh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, wrap("generate host key", err)
	}
	block, err := ssh.MarshalPrivateKey(priv, hostKeyComment)
	if err != nil {
		return nil, wrap("marshal host key", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, wrap("create host key dir", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, wrap("create host key", err)
	}
	if err := errors.Join(pem.Encode(f, block), f.Close()); err != nil {
		return nil, wrap("write host key", err)
	}
	return ssh.NewSignerFromKey(priv)
}
