package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/internal"
	"github.com/ryanmorr/base-object/pkg/baseobject"
	"github.com/ryanmorr/base-object/pkg/config"
	"github.com/ryanmorr/base-object/pkg/logging"
	"github.com/ryanmorr/base-object/pkg/utils"
	"io"
	"os"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Flags defines the CLI flags.
type Flags struct {
	config.Flags

	// Class names the class of the constructed objects.
	Class string `long:"class" description:"class name of the constructed objects" default:"BaseObject"`

	Args struct {
		// Input is a YAML or JSON file containing a list of property maps.
		Input string `positional-arg-name:"FILE" description:"list of property maps (default: stdin)"`
	} `positional-args:"yes"`
}

// main constructs an object per property map read from the input and
// prints its identity, hash code and JSON representation, one per line.
func main() {
	f := &Flags{}
	if _, err := flags.NewParser(f, flags.Default).Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(ExitSuccess)
		}

		os.Exit(ExitUsage)
	}

	if f.Version {
		internal.Version.Print(os.Stdout, utils.AppName())
		os.Exit(ExitSuccess)
	}

	cfg, err := config.FromFlags(f.Flags)
	if err != nil {
		utils.PrintErrorThenExit(err, ExitUsage)
	}

	l, err := logging.NewLoggingFromConfig(utils.AppName(), cfg.Logging)
	if err != nil {
		utils.PrintErrorThenExit(errors.Wrap(err, "can't configure logging"), ExitFailure)
	}

	logger := l.GetLogger()
	defer func() { _ = logger.Sync() }()

	baseobject.UseLogging(l)
	baseobject.SetIDGenerator(cfg.Identity.IDGenerator())

	in, err := openInput(f.Args.Input)
	if err != nil {
		logger.Fatalf("%+v", err)
	}
	defer func() { _ = in.Close() }()

	n, err := hashDocuments(in, os.Stdout, classNamed(f.Class))
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	logger.Debugf("Hashed %d objects", n)
}

// openInput opens the named file or, if name is empty or "-", stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(name)

	return f, errors.Wrap(err, "can't open input file")
}
