package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyCredentials is returned when the username or password is blank.
var ErrEmptyCredentials = errors.New("username and password are required")

// Credentials is a username/password pair entered by the user.
type Credentials struct {
	Username string
	Password string
}

// CredentialPrompter asks for a username and a hidden password.
type CredentialPrompter struct {
	lines *LineReader
	out   io.Writer
	// readPassword reads a line without echo; nil means read it from lines.
	readPassword func() ([]byte, error)
}

// NewCredentialPrompter prompts on out and reads from in. When in is a
// terminal the password is read without echo.
func NewCredentialPrompter(in *os.File, out io.Writer) *CredentialPrompter {
	p := &CredentialPrompter{
		lines: NewLineReader(in),
		out:   out,
	}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() ([]byte, error) {
			return term.ReadPassword(fd)
		}
	}
	return p
}

// NewCredentialPrompterFromReader reads both fields as plain lines from r.
func NewCredentialPrompterFromReader(r io.Reader, out io.Writer) *CredentialPrompter {
	return &CredentialPrompter{lines: NewLineReader(r), out: out}
}

// Prompt asks for any field not already supplied.
func (p *CredentialPrompter) Prompt(ctx context.Context, username string) (Credentials, error) {
	creds := Credentials{Username: strings.TrimSpace(username)}

	if creds.Username == "" {
		if _, err := fmt.Fprint(p.out, FormatPrompt("Username")); err != nil {
			return creds, err
		}
		line, err := p.lines.ReadLine(ctx)
		if err != nil {
			return creds, fmt.Errorf("failed to read username: %w", err)
		}
		creds.Username = line
	}

	if _, err := fmt.Fprint(p.out, FormatPrompt("Password")); err != nil {
		return creds, err
	}
	password, err := p.password(ctx)
	if err != nil {
		return creds, fmt.Errorf("failed to read password: %w", err)
	}
	creds.Password = password

	if creds.Username == "" || creds.Password == "" {
		return creds, ErrEmptyCredentials
	}
	return creds, nil
}

func (p *CredentialPrompter) password(ctx context.Context) (string, error) {
	if p.readPassword == nil {
		return p.lines.ReadLine(ctx)
	}

	raw, err := p.readPassword()
	// The hidden read swallows the newline.
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}
