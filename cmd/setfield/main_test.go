package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aagrwal5/openvswitch/ofpact"
	"github.com/aagrwal5/openvswitch/oxm"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "setfield.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.DEBUG {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	expected := []string{"10.0.0.1->nw_dst", "00:11:22:33:44:55->eth_src"}
	if !cmp.Equal(cfg.Actions, expected) {
		t.Fatalf("unexpected actions: %v", cmp.Diff(cfg.Actions, expected))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != defaultLogLevel || len(cfg.Actions) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join("testdata", "bad_level.toml")); err == nil {
		t.Fatalf("bad log level accepted")
	}
	if _, err := loadConfig(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestEncodeDecode(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	var out bytes.Buffer
	if err := encode(reg, []string{"10.0.0.1->nw_dst"}, &out); err != nil {
		t.Fatalf("encode: %v", err)
	}
	wire := strings.TrimSpace(out.String())
	if wire != "00190010800018040a00000100000000" {
		t.Fatalf("unexpected wire: %s", wire)
	}

	out.Reset()
	if err := decode(reg, wire, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.String() != "set_field:10.0.0.1->ipv4_dst\n" {
		t.Fatalf("unexpected text: %q", out.String())
	}
}

func TestCommandErrors(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	var out bytes.Buffer

	err := encode(reg, []string{"1->in_port"}, &out)
	if _, ok := err.(*ofpact.ConfigError); !ok {
		t.Fatalf("expected a configuration error, got %T %v", err, err)
	}

	err = decode(reg, joinHex([]string{"0019 0010 80001804", "0a000001 00000001"}), &out)
	if ba, ok := err.(*ofpact.BadArgument); !ok || ba.Reason != ofpact.NonZeroPadding {
		t.Fatalf("expected non-zero padding, got %T %v", err, err)
	}

	if err := decode(reg, "zz", &out); err == nil {
		t.Fatalf("bad hex accepted")
	}
	if err := check(reg, defaultConfig(), &out); err == nil {
		t.Fatalf("check without actions accepted")
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestCheck(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "setfield.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	var out bytes.Buffer
	if err := check(oxm.NewBasicRegistry(), cfg, &out); err != nil {
		t.Fatalf("check: %v", err)
	}
	// 16 bytes for ipv4_dst, 16 bytes for eth_src
	if n := len(strings.TrimSpace(out.String())); n != 64 {
		t.Fatalf("unexpected wire length %d: %s", n, out.String())
	}
}

func TestFieldsAndOxm(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	var out bytes.Buffer
	if err := fields(reg, &out); err != nil {
		t.Fatalf("fields: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != int(oxm.NumFields) {
		t.Fatalf("unexpected field count %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "-") || !strings.HasPrefix(lines[0], "in_port") {
		t.Fatalf("unexpected first line %q", lines[0])
	}

	out.Reset()
	if err := oxms(reg, []string{"tcp_dst=80"}, &out); err != nil {
		t.Fatalf("oxm: %v", err)
	}
	if out.String() != "80001c020050 tcp_dst=80\n" {
		t.Fatalf("unexpected oxm output %q", out.String())
	}
	if err := oxms(reg, []string{"tcp_dst=80,udp_dst=53"}, &out); err == nil {
		t.Fatalf("trailing text accepted")
	}
}

func TestReport(t *testing.T) {
	if report("encode", nil) != subcommands.ExitSuccess {
		t.Fatalf("nil error is not success")
	}
	if report("decode", errors.New("boom")) != subcommands.ExitFailure {
		t.Fatalf("error is not failure")
	}
}
