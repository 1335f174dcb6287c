package sdlcli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/messages"
	"github.com/spf13/cobra"
)

func (c *CLI) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [name]",
		Short: "List declared structs and payloads, or show the fields of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range sdlrpc.DefaultRegistry.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			d := sdlrpc.DefaultRegistry.Descriptor(args[0])
			if d == nil {
				return fmt.Errorf("unknown descriptor %s", args[0])
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CONST\tKEY\tTYPE\tMANDATORY")
			for _, f := range d.Fields() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", f.ConstName(), f.Key, f.TypeName(), f.Mandatory)
			}
			return w.Flush()
		},
	}
}

func (c *CLI) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <name>",
		Short: "Print the JSON Schema of a declared struct or payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Options()
			if err != nil {
				return err
			}
			d := sdlrpc.DefaultRegistry.Descriptor(args[0])
			if d == nil {
				return fmt.Errorf("unknown descriptor %s", args[0])
			}
			return c.write(cmd.OutOrStdout(), opts, d.JSONSchema(sdlrpc.DefaultCatalogs()))
		},
	}
}

func (c *CLI) catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [name]",
		Short: "List enum catalogs, or show the keys and wire values of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalogs := sdlrpc.DefaultCatalogs()
			if len(args) == 0 {
				for _, name := range catalogs.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			cat := catalogs.Lookup(args[0])
			if cat == nil {
				return fmt.Errorf("%w: %s", sdlrpc.ErrUnknownCatalog, args[0])
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tWIRE")
			for _, key := range cat.Keys() {
				wire, _ := cat.ValueForKey(key)
				fmt.Fprintf(w, "%s\t%v\n", key, wire)
			}
			return w.Flush()
		},
	}
}

func (c *CLI) encodeCommand() *cobra.Command {
	var (
		id     int
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "encode <function> <type> [parameters...]",
		Short: "Build a message from shorthand parameters and print its wire form",
		Example: strings.Join([]string{
			"  sdlrpc encode GetVehicleData request gearStatus: true, speed: true --id 1",
			"  sdlrpc encode OnVehicleData notification gearStatus{actualGear: DRIVE}, speed: 42.5",
		}, "\n"),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Options()
			if err != nil {
				return err
			}
			codec, err := c.codec(opts)
			if err != nil {
				return err
			}
			typ, err := sdlrpc.ParseMessageType(args[1])
			if err != nil {
				return err
			}
			rpc, err := messages.NewWith(codec, enums.FunctionID(args[0]), typ)
			if err != nil {
				return err
			}

			m := rpc.RPCMessage()
			if cmd.Flags().Changed("id") {
				m.SetCorrelationID(id)
			}
			if len(args) > 2 {
				input := strings.Join(args[2:], " ")
				if err := sdlrpc.PatchParameters(m.Parameters(), sdlrpc.MergePatchShorthand, []byte(input)); err != nil {
					return err
				}
			}

			if err := c.check(opts, strict, m.Validate()); err != nil {
				return err
			}
			return c.write(cmd.OutOrStdout(), opts, m.ToWireForm())
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Correlation id for requests and responses")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when mandatory parameters are missing")
	return cmd
}

func (c *CLI) decodeCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a message from a file or stdin and print its normalized wire form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Options()
			if err != nil {
				return err
			}
			codec, err := c.codec(opts)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			tree, err := sdlrpc.UnmarshalTree(opts.Format, data)
			if err != nil {
				return err
			}
			rpc, err := messages.DecodeWith(codec, tree)
			if err != nil {
				return err
			}
			m := rpc.RPCMessage()

			// Decoding drops malformed values silently, so surface them from
			// the schema before they disappear.
			if raw := rawParameters(tree); raw != nil {
				if encoded, err := json.Marshal(raw); err == nil {
					desc := m.Parameters().Descriptor()
					if err := desc.ValidateJSON(codec.Catalogs(), encoded); err != nil {
						if err := c.check(opts, strict, err); err != nil {
							return err
						}
					}
				}
			}

			if err := c.check(opts, strict, m.Validate()); err != nil {
				return err
			}
			return c.write(cmd.OutOrStdout(), opts, m.ToWireForm())
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on schema violations and missing mandatory parameters")
	return cmd
}

// check logs problems, or returns them when strict is set.
func (c *CLI) check(opts *Options, strict bool, err error) error {
	if err == nil {
		return nil
	}
	if strict {
		return err
	}
	report(c.log(opts), "invalid message", err)
	return nil
}

func rawParameters(tree any) any {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil
	}
	for _, body := range root {
		if m, ok := body.(map[string]any); ok {
			return m["parameters"]
		}
	}
	return nil
}
