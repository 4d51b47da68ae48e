package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/pydis/config"
	"github.com/chazu/pydis/object"
	"github.com/chazu/pydis/opcode"
)

var log = commonlog.GetLogger("pydis.cli")

// quietVerbosity keeps only errors.
const quietVerbosity = -2

// options holds the global flags and the configuration they select.
type options struct {
	configPath string
	verbose    int
	quiet      bool

	cfg *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pydis",
		Short: "Disassemble compiled script bytecode",
		Long: `pydis decodes the instruction streams of compiled code units from
runtime releases 1.0 through 3.6 and prints one line per instruction,
with constants, names and jump targets resolved.

Code units are read from CBOR interchange files. Settings can be kept in
a pydis.toml found in the working directory or any parent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")
	pf.StringVar(&opts.configPath, "config", "", "configuration file (default: pydis.toml in the working directory or a parent)")

	rootCmd.AddCommand(
		newDisasmCmd(opts),
		newOpcodesCmd(),
		newVersionsCmd(),
		newIndexCmd(opts),
	)
	return rootCmd
}

// setup loads the configuration and configures logging.
func (o *options) setup() error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.LoadFile(o.configPath)
	} else {
		o.cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if o.cfg == nil {
		o.cfg = config.Default()
	}

	verbosity := o.cfg.Log.Verbosity + o.verbose
	if o.quiet {
		verbosity = quietVerbosity
	}
	commonlog.Configure(verbosity, nil)

	if o.cfg.Dir != "" {
		log.Debugf("using configuration in %s", o.cfg.Dir)
	}
	return nil
}

// readModule loads one CBOR interchange file.
func readModule(path string) (*object.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	m, err := object.UnmarshalModule(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// resolveVersion picks the runtime version of a module: the command line
// flag first, then the version recorded in the file, then the configured
// default.
func (o *options) resolveVersion(flag string, m *object.Module) (opcode.Version, error) {
	if flag != "" {
		return opcode.ParseVersion(flag)
	}
	if m.Major != 0 {
		v := opcode.Version{Major: m.Major, Minor: m.Minor}
		if !v.Supported() {
			log.Warningf("%s: no opcode map for version %s, every opcode will be invalid", m.Code.Name, v)
		}
		return v, nil
	}
	if v, ok := o.cfg.Version(); ok {
		return v, nil
	}
	return opcode.Version{}, fmt.Errorf("no runtime version for %s: pass --version or set disasm.version", m.Code.Name)
}
