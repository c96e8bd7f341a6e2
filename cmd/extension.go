package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables configuring the CLI. They are also passed to extensions.
const (
	EnvLedgerFile = "TLC_LEDGER_FILE"
	EnvSelect     = "TLC_SELECT"
	EnvMethod     = "TLC_METHOD"
	EnvVerbose    = "TLC_VERBOSE"
)

// extensionPrefix prefixes the name of external subcommand binaries.
const extensionPrefix = "tlc-"

// RunExtension attempts to find and execute an external tlc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := extensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found in PATH", "command", externalCmdName, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed as environment variables.
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+LedgerFile(),
		EnvSelect+"="+SelectPath(),
		EnvMethod+"="+defaultMethod(),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	logger.Debug("running extension", "command", lp, "args", args)
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
