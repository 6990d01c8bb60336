package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/bossa"
)

// Environment variables passed to extensions, on top of the BOSSA_* configuration.
const (
	EnvEnvFile = "BOSSA_ENV_FILE"
	EnvVerbose = "BOSSA_VERBOSE"
)

// RunExtension attempts to find and execute an external bossa-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "bossa-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvEnvFile+"="+*envFile)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	if *timeout > 0 {
		cmd.Env = append(cmd.Env, bossa.EnvTimeout+"="+timeout.String())
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
