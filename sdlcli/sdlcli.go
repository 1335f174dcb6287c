// Package sdlcli provides the `sdlrpc` command-line tool for inspecting
// declared messages and converting them between wire formats. Settings come
// from flags or `SDLRPC_`-prefixed environment variables.
package sdlcli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdlgo/sdlrpc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Options are the global settings shared by every command.
type Options struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
	Debug  bool   `mapstructure:"debug"`

	sdlrpc.CodecConfig `mapstructure:",squash"`
}

// CLI is the command-line interface. Customize it through Root before
// calling Run.
type CLI struct {
	root   *cobra.Command
	v      *viper.Viper
	logger *zap.Logger
}

// New creates the CLI with every command registered.
func New() *CLI {
	v := viper.New()
	v.SetEnvPrefix("SDLRPC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	app := &CLI{v: v}
	app.root = &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         "Inspect and convert vehicle data RPC messages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.AddGlobalFlag("format", "f", "Wire format: json, yaml or cbor", "json")
	app.AddGlobalFlag("pretty", "", "Indent JSON output", false)
	app.AddGlobalFlag("debug", "d", "Enable debug logs", false)
	app.AddGlobalFlag("enum-policy", "", "Unknown enum handling: drop, warn or reject", "drop")

	app.root.AddCommand(
		app.describeCommand(),
		app.schemaCommand(),
		app.catalogCommand(),
		app.encodeCommand(),
		app.decodeCommand(),
	)
	return app
}

// AddGlobalFlag will make a new global flag on the root command.
func (c *CLI) AddGlobalFlag(name, short, description string, defaultValue any) {
	c.v.SetDefault(name, defaultValue)

	flags := c.root.PersistentFlags()
	switch v := defaultValue.(type) {
	case bool:
		flags.BoolP(name, short, v, description)
	case int:
		flags.IntP(name, short, v, description)
	default:
		flags.StringP(name, short, fmt.Sprintf("%v", v), description)
	}
	c.bind(flags.Lookup(name))
}

// bind resolves the setting from the flag when it was given, then from the
// environment, then from the default.
func (c *CLI) bind(f *pflag.Flag) {
	if err := c.v.BindPFlag(f.Name, f); err != nil {
		panic(err)
	}
}

// Root returns the root command.
func (c *CLI) Root() *cobra.Command {
	return c.root
}

// Run parses the arguments and runs the selected command, exiting with a
// non-zero status on failure.
func (c *CLI) Run() {
	if err := c.root.Execute(); err != nil {
		fmt.Fprintln(c.root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// SetLogger replaces the logger used for diagnostics.
func (c *CLI) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Options returns the current settings.
func (c *CLI) Options() (*Options, error) {
	opts := &Options{}
	if err := c.v.Unmarshal(opts); err != nil {
		return nil, err
	}
	if _, err := sdlrpc.LookupFormat(opts.Format); err != nil {
		return nil, err
	}
	return opts, nil
}

func (c *CLI) log(opts *Options) *zap.Logger {
	if c.logger == nil {
		l, err := sdlrpc.NewLogger()
		if err != nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
	if opts.Debug {
		sdlrpc.LogLevel.SetLevel(zap.DebugLevel)
	}
	return c.logger
}

func (c *CLI) codec(opts *Options) (*sdlrpc.Codec, error) {
	codecOpts, err := opts.CodecConfig.Options()
	if err != nil {
		return nil, err
	}
	codecOpts = append(codecOpts, sdlrpc.WithLogger(c.log(opts)))
	return sdlrpc.NewCodec(sdlrpc.DefaultCatalogs(), codecOpts...), nil
}

// write renders v in the selected format.
func (c *CLI) write(w io.Writer, opts *Options, v any) error {
	if opts.Pretty && (opts.Format == "json" || opts.Format == "application/json") {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	f, err := sdlrpc.LookupFormat(opts.Format)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := f.Marshal(buf, v); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// report logs every problem in err, which is usually an *sdlrpc.ErrorModel.
func report(logger *zap.Logger, msg string, err error) {
	if model, ok := err.(*sdlrpc.ErrorModel); ok {
		for _, d := range model.Errors {
			logger.Warn(msg,
				zap.String("location", d.Location),
				zap.String("problem", d.Message),
				zap.Any("value", d.Value),
			)
		}
		return
	}
	logger.Warn(msg, zap.Error(err))
}
