package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aagrwal5/openvswitch/ofp4"
	"github.com/aagrwal5/openvswitch/ofpact"
	"github.com/aagrwal5/openvswitch/oxm"
	"github.com/google/subcommands"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var (
	logger     = logging.MustGetLogger("main")
	configFile = flag.String("config", "", "path of a TOML configuration file")
	logLevel   = flag.String("log-level", "", "log level, overrides the configuration file")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(Encode), "")
	subcommands.Register(new(Decode), "")
	subcommands.Register(new(Check), "")
	subcommands.Register(new(Fields), "")
	subcommands.Register(new(Oxm), "")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatalf("failed to read configurations: %v", err)
	}
	if *logLevel != "" {
		level, err := logging.LogLevel(strings.ToUpper(*logLevel))
		if err != nil {
			logger.Fatalf("invalid log level %v: %v", *logLevel, err)
		}
		cfg.LogLevel = level
	}
	initLog(cfg.LogLevel)

	env := &environment{reg: oxm.NewBasicRegistry(), cfg: cfg, out: os.Stdout}
	os.Exit(int(subcommands.Execute(context.Background(), env)))
}

func initLog(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{level}: %{shortpkg}.%{shortfunc}: %{message}`))

	leveled := logging.AddModuleLevel(formatted)
	// Set log level for all modules
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

// report turns the error of a command into its exit status. Operator text
// errors terminate the process.
func report(cmd string, err error) subcommands.ExitStatus {
	switch e := err.(type) {
	case nil:
		return subcommands.ExitSuccess
	case *ofpact.ConfigError:
		ofpact.Fatal(logger, e)
	case *ofpact.BadArgument:
		logger.Errorf("rejected: %v (%v)", e, e.Ofp())
	default:
		logger.Errorf("%v failed: %v", cmd, err)
	}
	return subcommands.ExitFailure
}

func parseActions(reg *oxm.Registry, texts []string) (ofpact.List, *ofpact.ConfigError) {
	var acts ofpact.List
	for _, txt := range texts {
		if err := ofpact.ParseSetField(reg, txt, &acts); err != nil {
			return nil, err
		}
	}
	return acts, nil
}

func encode(reg *oxm.Registry, texts []string, out io.Writer) error {
	acts, cerr := parseActions(reg, texts)
	if cerr != nil {
		return cerr
	}
	for _, a := range acts {
		if err := ofpact.CheckSetField(a, nil); err != nil {
			return err
		}
		logger.Debugf("encoding %v", a)
	}
	fmt.Fprintln(out, hex.EncodeToString(ofpact.EncodeActions(acts, nil)))
	return nil
}

func joinHex(args []string) string {
	return strings.Join(strings.Fields(strings.Join(args, " ")), "")
}

func decode(reg *oxm.Registry, txt string, out io.Writer) error {
	data, err := hex.DecodeString(txt)
	if err != nil {
		return errors.Wrap(err, "decode hex")
	}
	for _, a := range ofp4.ActionHeader(data).Iter() {
		if a.Type() == ofp4.OFPAT_SET_FIELD && a.Len() >= ofp4.OFP_ACTION_SET_FIELD_SIZE {
			logger.Debugf("set_field record %s", reg.String(oxm.Oxm(ofp4.ActionSetField(a).Field())))
		}
	}

	var acts ofpact.List
	if err := ofpact.DecodeActions(reg, data, &acts); err != nil {
		return err
	}
	for _, a := range acts {
		fmt.Fprintln(out, a)
	}
	return nil
}

func fields(reg *oxm.Registry, out io.Writer) error {
	for _, f := range reg.Fields() {
		verdict := "-"
		if ofpact.SetFieldAllowed(f) {
			verdict = "set_field"
		}
		fmt.Fprintf(out, "%-16s %3d bits  %s\n", f.Name, f.NBits, verdict)
	}
	return nil
}

func oxms(reg *oxm.Registry, tokens []string, out io.Writer) error {
	for _, token := range tokens {
		o, n, err := reg.ParseOne(token)
		if err != nil {
			return err
		}
		if n != len(token) {
			return errors.Errorf("trailing text after %s", token[:n])
		}
		fmt.Fprintf(out, "%s %s\n", hex.EncodeToString(o), reg.String(o))
	}
	return nil
}
