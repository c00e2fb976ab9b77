package main

import (
	"os"
	"testing"

	"sitecat/internal/cmd"
)

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty string")
	}

	if BuildTime == "" {
		t.Error("BuildTime should not be empty string")
	}

	cmd.SetVersionInfo(Version, BuildTime)
}

func TestMainHelp(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	cmd.SetVersionInfo("test-version", "test-build-time")

	// Help should be handled by cobra without an error.
	os.Args = []string{"sitecat", "--help"}
	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute with help should not return error, got: %v", err)
	}
}

func TestMainVersion(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	cmd.SetVersionInfo("1.0.0-test", "2023-12-01T10:00:00Z")

	os.Args = []string{"sitecat", "--version"}
	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute with version should not return error, got: %v", err)
	}
}
