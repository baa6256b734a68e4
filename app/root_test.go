package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Anvil account #0, same vector the attestation package tests use.
const testKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSignerAddressCommand(t *testing.T) {
	t.Setenv("VEIL_SIGNER_KEY", testKeyHex)

	out, err := runCommand(t, "signer-address")
	require.NoError(t, err)
	assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
}

func TestAttestCommand(t *testing.T) {
	t.Setenv("VEIL_SIGNER_KEY", testKeyHex)

	out, err := runCommand(t, "attest",
		"--owner", "account-hash-demo",
		"--address", "0x1234567890abcdef1234567890abcdef12345678",
		"--stake", "10000000000000",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "attestation_id: 0x")
	assert.Contains(t, out, "signer:         0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Contains(t, out, "payload:        0x")
	assert.Contains(t, out, "signature:      0x")
}

func TestAttestCommand_RejectsBadAddress(t *testing.T) {
	t.Setenv("VEIL_SIGNER_KEY", testKeyHex)

	_, err := runCommand(t, "attest", "--owner", "account-hash-demo", "--address", "not-an-address")
	require.Error(t, err)
}

func TestAttestCommand_InvalidSignerKey(t *testing.T) {
	t.Setenv("VEIL_SIGNER_KEY", "zzzz")

	_, err := runCommand(t, "attest", "--owner", "account-hash-demo",
		"--address", "0x1234567890abcdef1234567890abcdef12345678")
	require.Error(t, err)
}
