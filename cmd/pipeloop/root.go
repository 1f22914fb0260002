package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/maze"
)

const defaultInput = "input.txt"

var (
	debug       bool
	profMode    string
	profDir     string
	logFile     *os.File
	profStopper interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "pipeloop",
	Short: "Find the pipe loop in a maze and measure what it encloses",
	Long: `pipeloop reads a grid of pipe characters (| - L J 7 F . S), follows the
loop that passes through S, and reports how far its furthest point is from S
and how many cells it encloses.

Examples:
  pipeloop solve input.txt
  pipeloop solve --draw sample.txt
  pipeloop view input.txt
  pipeloop --debug --profile cpu solve input.txt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { teardown() },
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	rootCmd.PersistentFlags().StringVar(&profMode, "profile", "", "Profile the run: cpu or mem")
	rootCmd.PersistentFlags().StringVar(&profDir, "profile-dir", ".", "Directory for profile output")
}

// setup enables logging and profiling according to the global flags.
func setup(*cobra.Command, []string) error {
	logFile = setupLogging(debug)

	var mode func(*profile.Profile)
	switch profMode {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return fmt.Errorf("unknown profile mode %q (use cpu or mem)", profMode)
	}
	profStopper = profile.Start(mode, profile.ProfilePath(profDir), profile.Quiet)
	log.Printf("profiling %s into %s", profMode, profDir)
	return nil
}

func teardown() {
	if profStopper != nil {
		profStopper.Stop()
		profStopper = nil
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// inputPath returns the first argument or the default input file.
func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultInput
}

// mazeOptions wires the process logger into discovery.
func mazeOptions() []maze.Option {
	return []maze.Option{maze.WithLogger(log.Default())}
}
