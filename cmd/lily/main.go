package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adhocteam/lily/internal/command"
	"github.com/adhocteam/lily/internal/version"
)

type subcmd struct {
	name  string
	setup func(*flag.FlagSet)
	run   func(*flag.FlagSet) error
}

var subcommands = []subcmd{
	{
		name: "tokens",
		setup: func(fs *flag.FlagSet) {
			fs.Bool("color", false, "Color the listing for a terminal")
			fs.Bool("trivia", false, "Include whitespace and comment tokens")
			fs.Bool("classify", false, "Show refined token classes")
		},
		run: func(fs *flag.FlagSet) error {
			if fs.NArg() < 1 {
				return fmt.Errorf("missing file argument")
			}
			opts := command.DumpOptions{
				Color:    boolFlag(fs, "color"),
				Trivia:   boolFlag(fs, "trivia"),
				Classify: boolFlag(fs, "classify"),
			}
			return command.Tokens(os.Stdout, fs.Args(), opts)
		},
	},
	{
		name: "check",
		setup: func(fs *flag.FlagSet) {
			fs.String("r", ".", "Check sources under `root` directory")
		},
		run: func(fs *flag.FlagSet) error {
			root := fs.Lookup("r").Value.String()
			if fs.NArg() > 0 {
				root = fs.Arg(0)
			}
			return command.Check(os.Stdout, root)
		},
	},
	{
		name: "highlight",
		setup: func(fs *flag.FlagSet) {
			fs.String("o", "", "Write HTML to `file` instead of stdout")
			fs.String("title", "", "Page title, defaults to the file name")
		},
		run: func(fs *flag.FlagSet) error {
			if fs.NArg() < 1 {
				return fmt.Errorf("missing file argument")
			}
			highlight := func(w io.Writer) error {
				return command.Highlight(w, fs.Arg(0), fs.Lookup("title").Value.String())
			}
			if name := fs.Lookup("o").Value.String(); name != "" {
				return writeOutput(name, highlight)
			}
			return highlight(os.Stdout)
		},
	},
	{
		name: "watch",
		setup: func(fs *flag.FlagSet) {
			fs.String("r", ".", "Watch sources under `root` directory")
		},
		run: func(fs *flag.FlagSet) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return command.Watch(ctx, fs.Lookup("r").Value.String(), os.Stdout)
		},
	},
	{
		name:  "version",
		setup: func(*flag.FlagSet) {},
		run: func(*flag.FlagSet) error {
			fmt.Println(version.String())
			return nil
		},
	},
}

func main() {
	flag.Usage = printUsage

	flag.Parse()

	level := slog.LevelInfo
	if os.Getenv("VERBOSE") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(flag.Args()) < 1 {
		printUsage()
		os.Exit(1)
	}

	cmdName := flag.Arg(0)
	cmd := findCommand(cmdName)
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		printUsage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(cmdName, flag.ExitOnError)
	cmd.setup(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lily %s [flags]\n", cmdName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.run(fs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func findCommand(name string) *subcmd {
	for i := range subcommands {
		if subcommands[i].name == name {
			return &subcommands[i]
		}
	}
	return nil
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	return fs.Lookup(name).Value.(flag.Getter).Get().(bool)
}

// writeOutput creates name and fills it with write. A failed close is
// reported, since it can mean the file was truncated.
func writeOutput(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return write(f)
}

func printUsage() {
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: lily <command>")
	fmt.Fprintln(flag.CommandLine.Output(), "Commands:")
	for _, cmd := range subcommands {
		fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", cmd.name)
	}
}
