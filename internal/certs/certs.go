// Package certs keeps a self-signed certificate for serving the web view over HTTPS on a local address.
package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

const (
	certName = "webview.crt"
	keyName  = "webview.key"

	// Organization is the subject organization of generated certificates.
	Organization = "wardrobe local web view"

	// DefaultValidity is how long a generated certificate stays valid.
	DefaultValidity = 365 * 24 * time.Hour

	// renewBefore triggers regeneration shortly before expiry.
	renewBefore = 7 * 24 * time.Hour
)

// Manager loads or creates the local certificate under a directory.
type Manager struct {
	now      func() time.Time
	dir      string
	hosts    []string
	validity time.Duration
}

// NewManager returns a manager storing its files in dir. hosts lists extra
// DNS names or IPs the certificate must cover besides localhost.
func NewManager(dir string, hosts ...string) *Manager {
	return &Manager{
		dir:      dir,
		hosts:    hosts,
		validity: DefaultValidity,
		now:      time.Now,
	}
}

// CertFile returns the certificate path.
func (m *Manager) CertFile() string {
	return filepath.Join(m.dir, certName)
}

// KeyFile returns the private key path.
func (m *Manager) KeyFile() string {
	return filepath.Join(m.dir, keyName)
}

// Certificate returns the stored certificate, generating a new one when it is
// missing, unreadable, about to expire or does not cover every host.
func (m *Manager) Certificate() (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(m.CertFile(), m.KeyFile())
	switch {
	case err == nil:
		if m.usable(cert) == nil {
			return cert, nil
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		// Corrupt files are replaced.
	}

	if err := m.remove(); err != nil {
		return tls.Certificate{}, err
	}
	return m.generate()
}

// TLSConfig returns a server TLS configuration using Certificate.
func (m *Manager) TLSConfig() (*tls.Config, error) {
	cert, err := m.Certificate()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (m *Manager) dnsNamesAndIPs() ([]string, []net.IP) {
	names := []string{"localhost"}
	ips := []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	for _, h := range m.hosts {
		if h == "" || h == "localhost" {
			continue
		}
		if ip := net.ParseIP(h); ip != nil {
			if !ip.IsUnspecified() {
				ips = append(ips, ip)
			}
			continue
		}
		names = append(names, h)
	}
	return names, ips
}

func (m *Manager) generate() (tls.Certificate, error) {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to create certificate directory: %w", err)
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to generate private key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to generate serial number: %w", err)
	}

	names, ips := m.dnsNamesAndIPs()
	now := m.now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{Organization}, CommonName: "localhost"},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(m.validity),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              names,
		IPAddresses:           ips,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to encode private key: %w", err)
	}

	if err := writePEM(m.CertFile(), "CERTIFICATE", der); err != nil {
		return tls.Certificate{}, err
	}
	if err := writePEM(m.KeyFile(), "EC PRIVATE KEY", keyDER); err != nil {
		return tls.Certificate{}, err
	}

	return tls.LoadX509KeyPair(m.CertFile(), m.KeyFile())
}

func writePEM(path, blockType string, der []byte) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	if err := pem.Encode(out, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}

func (m *Manager) usable(cert tls.Certificate) error {
	if len(cert.Certificate) == 0 {
		return fmt.Errorf("no certificates found")
	}
	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return fmt.Errorf("failed to parse certificate: %w", err)
	}

	now := m.now()
	if now.Before(parsed.NotBefore) {
		return fmt.Errorf("certificate not yet valid")
	}
	if now.Add(renewBefore).After(parsed.NotAfter) {
		return fmt.Errorf("certificate expires soon")
	}

	names, ips := m.dnsNamesAndIPs()
	for _, name := range names {
		if err := parsed.VerifyHostname(name); err != nil {
			return err
		}
	}
	for _, ip := range ips {
		if err := parsed.VerifyHostname(ip.String()); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) remove() error {
	for _, path := range []string{m.CertFile(), m.KeyFile()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}
