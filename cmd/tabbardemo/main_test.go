package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMainVersionExitZero(t *testing.T) {
	if os.Getenv("TABBARDEMO_HELPER") == "1" {
		os.Args = []string{"tabbardemo", "--version"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainVersionExitZero")
	cmd.Env = append(os.Environ(), "TABBARDEMO_HELPER=1")
	require.NoError(t, cmd.Run())
}

func TestMainInvalidArgsExitOne(t *testing.T) {
	if os.Getenv("TABBARDEMO_HELPER_INVALID") == "1" {
		os.Args = []string{"tabbardemo", "--not-a-flag"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainInvalidArgsExitOne")
	cmd.Env = append(os.Environ(), "TABBARDEMO_HELPER_INVALID=1")
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	require.Equal(t, 1, exitErr.ExitCode())
}
