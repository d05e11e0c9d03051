package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func keygen(t *testing.T, simple bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key")
	args := []string{"keygen", "--bits", "64", "--min-bits", "64", "--out", path}
	if !simple {
		args = append(args, "--simple=false")
	}
	fingerprint, err := run(t, args...)
	require.NoError(t, err)
	assert.Len(t, fingerprint, 64)
	return path
}

func TestKeygenWritesBothFiles(t *testing.T) {
	path := keygen(t, true)

	priv, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), priv.Mode().Perm())

	_, err = os.Stat(path + publicSuffix)
	require.NoError(t, err)
}

func TestEncryptDecryptAdd(t *testing.T) {
	for _, simple := range []bool{true, false} {
		path := keygen(t, simple)
		pub := path + publicSuffix

		c1, err := run(t, "encrypt", "--key", pub, "--m", "5")
		require.NoError(t, err)
		c2, err := run(t, "encrypt", "--key", pub, "--m", "7")
		require.NoError(t, err)

		m, err := run(t, "decrypt", "--key", path, "--c", c1)
		require.NoError(t, err)
		assert.Equal(t, "5", m)

		sum, err := run(t, "add", "--key", pub, "--c", c1, "--c", c2)
		require.NoError(t, err)
		m, err = run(t, "decrypt", "--key", path, "--c", sum)
		require.NoError(t, err)
		assert.Equal(t, "12", m)
	}
}

func TestEncryptZKPPrintsRandomness(t *testing.T) {
	path := keygen(t, true)
	out, err := run(t, "encrypt", "--key", path, "--m", "42", "--zkp")
	require.NoError(t, err)
	assert.Contains(t, out, "c: ")
	assert.Contains(t, out, "r: ")
}

func TestInspect(t *testing.T) {
	path := keygen(t, false)
	out, err := run(t, "inspect", "--key", path+publicSuffix)
	require.NoError(t, err)
	assert.Contains(t, out, "bits: 64")
	assert.Contains(t, out, "variant: full")
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "paillier.yaml")
	out := filepath.Join(dir, "cfgkey")
	require.NoError(t, os.WriteFile(cfg, []byte("bits: 64\nmin-bits: 64\nout: "+out+"\n"), 0o600))

	_, err := run(t, "keygen", "--config", cfg)
	require.NoError(t, err)

	info, err := run(t, "inspect", "--key", out)
	require.NoError(t, err)
	assert.Contains(t, info, "bits: 64")
}

func TestCommandErrors(t *testing.T) {
	path := keygen(t, true)

	_, err := run(t, "keygen", "--bits", "64")
	assert.Error(t, err, "missing --out")

	_, err = run(t, "keygen", "--bits", "63", "--min-bits", "32", "--out", filepath.Join(t.TempDir(), "k"))
	assert.Error(t, err, "odd bit length")

	_, err = run(t, "encrypt", "--key", path, "--m", "abc")
	assert.Error(t, err)

	_, err = run(t, "decrypt", "--key", path+publicSuffix, "--c", "5")
	assert.Error(t, err, "public key cannot decrypt")

	_, err = run(t, "add", "--key", path)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
