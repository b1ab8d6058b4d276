package main

import (
	"context"
	"flag"
	"io"

	"github.com/aagrwal5/openvswitch/oxm"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

// environment is handed to every command by subcommands.Execute.
type environment struct {
	reg *oxm.Registry
	cfg config
	out io.Writer
}

func envOf(args []interface{}) *environment {
	return args[0].(*environment)
}

// Encode implements subcommands.Command for the "encode" command.
type Encode struct{}

// Name implements subcommands.Command.Name.
func (*Encode) Name() string { return "encode" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Encode) Synopsis() string { return "print the wire form of set_field actions" }

// Usage implements subcommands.Command.Usage.
func (*Encode) Usage() string { return "encode <value->field>...\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Encode) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *Encode) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := envOf(args)
	return report(c.Name(), encode(env.reg, f.Args(), env.out))
}

// Decode implements subcommands.Command for the "decode" command.
type Decode struct{}

// Name implements subcommands.Command.Name.
func (*Decode) Name() string { return "decode" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Decode) Synopsis() string { return "print the set_field actions of a packed action list" }

// Usage implements subcommands.Command.Usage.
func (*Decode) Usage() string { return "decode <hex>...\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Decode) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute. Arguments are joined, so
// the hex may be split on whitespace.
func (c *Decode) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := envOf(args)
	return report(c.Name(), decode(env.reg, joinHex(f.Args()), env.out))
}

// Check implements subcommands.Command for the "check" command.
type Check struct{}

// Name implements subcommands.Command.Name.
func (*Check) Name() string { return "check" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Check) Synopsis() string { return "parse the actions of the configuration file" }

// Usage implements subcommands.Command.Usage.
func (*Check) Usage() string { return "check\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Check) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *Check) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envOf(args)
	return report(c.Name(), check(env.reg, env.cfg, env.out))
}

// Fields implements subcommands.Command for the "fields" command.
type Fields struct{}

// Name implements subcommands.Command.Name.
func (*Fields) Name() string { return "fields" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Fields) Synopsis() string { return "list the field catalog" }

// Usage implements subcommands.Command.Usage.
func (*Fields) Usage() string { return "fields\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Fields) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *Fields) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envOf(args)
	return report(c.Name(), fields(env.reg, env.out))
}

// Oxm implements subcommands.Command for the "oxm" command.
type Oxm struct{}

// Name implements subcommands.Command.Name.
func (*Oxm) Name() string { return "oxm" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Oxm) Synopsis() string { return "print oxm TLVs" }

// Usage implements subcommands.Command.Usage.
func (*Oxm) Usage() string { return "oxm <name=value>...\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*Oxm) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *Oxm) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	env := envOf(args)
	return report(c.Name(), oxms(env.reg, f.Args(), env.out))
}

func check(reg *oxm.Registry, cfg config, out io.Writer) error {
	if len(cfg.Actions) == 0 {
		return errors.New("no actions configured")
	}
	return encode(reg, cfg.Actions, out)
}
