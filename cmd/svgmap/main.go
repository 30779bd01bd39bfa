package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names.
var commands = map[string]bool{
	"run":        true,
	"check":      true,
	"completion": true,
	"version":    true,
	"help":       true,
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	return commands[s]
}

// runMain dispatches args (including the program name) and returns the
// exit code. A command line that starts with a flag runs the "run" command,
// so "svgmap -s map.svg -d data.csv" works without a subcommand.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if strings.HasPrefix(cmd, "-") && cmd != "-h" && cmd != "--help" {
		cmd, rest = "run", args[1:]
	}

	switch cmd {
	case "run":
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return reportError(env, runRun(ctx, rest, env))
	case "check":
		return runCheckCmd(rest, env)
	case "completion":
		return reportError(env, runCompletion(rest, env))
	case "version":
		fmt.Fprintf(env.Stdout, "go-svgmap %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// reportError prints err and returns its exit code.
func reportError(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}
