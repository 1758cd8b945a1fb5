package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
)

// minKeyBits is the smallest RSA key size accepted for signing access tokens.
const minKeyBits = 2048

// RunCreateKeypair generates a new RSA key pair for signing access tokens and
// writes both keys in PEM format. The private key goes into JWT_PRIVATE_KEY
// and the public key into JWT_PUBLIC_KEY.
func RunCreateKeypair(writer io.Writer, bits int, format string) error {
	if bits < minKeyBits {
		return fmt.Errorf("key size must be at least %d bits, got: %d", minKeyBits, bits)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return fmt.Errorf("failed to generate rsa key: %w", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	publicBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicBytes,
	})

	if format == "json" {
		outputKeypairJSON(writer, string(privatePEM), string(publicPEM))
	} else {
		outputKeypairText(writer, string(privatePEM), string(publicPEM))
	}

	return nil
}

// outputKeypairText outputs the key pair in human-readable text format.
func outputKeypairText(writer io.Writer, privatePEM, publicPEM string) {
	fmt.Fprintln(writer, "Generated RSA key pair for access token signing.")
	fmt.Fprintln(writer, "")
	fmt.Fprintln(writer, "Private key (JWT_PRIVATE_KEY):")
	fmt.Fprintln(writer, privatePEM)
	fmt.Fprintln(writer, "Public key (JWT_PUBLIC_KEY):")
	fmt.Fprintln(writer, publicPEM)
	fmt.Fprintln(writer, "Store the private key securely; it cannot be recovered if lost.")
}

// outputKeypairJSON outputs the key pair in JSON format for machine consumption.
func outputKeypairJSON(writer io.Writer, privatePEM, publicPEM string) {
	result := map[string]interface{}{
		"private_key": privatePEM,
		"public_key":  publicPEM,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
