package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variables setting the global flags defaults. They are also
// passed to extensions.
const (
	EnvStore        = "FIN_STORE"
	EnvBaseCurrency = "FIN_BASE_CURRENCY"
	EnvFXURL        = "FIN_FX_URL"
	EnvVerbose      = "FIN_VERBOSE"
)

// extensionEnv returns the environment of an extension: the current one plus
// the global flags.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvStore+"="+*storePath)
	env = append(env, EnvBaseCurrency+"="+*baseCurrency)
	env = append(env, EnvFXURL+"="+*fxURL)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}

// RunExtension attempts to find and execute an external fin-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fin-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logrus.WithField("extension", externalCmdName).Debugf("external command not found in PATH: %v", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		// If it's not an ExitError report a generic error
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
