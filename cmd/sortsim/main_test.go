package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/store"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func subcommand(t *testing.T, name string, flags ...string) *cobra.Command {
	t.Helper()
	root := newRootCommand()
	cmd, _, err := root.Find([]string{name})
	if err != nil {
		t.Fatalf("find %s: %v", name, err)
	}
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(subcommand(t, "run"), "quick")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Algorithm != "quick" || cfg.Quantity != config.DefaultQuantity || cfg.TickMs != config.DefaultTickMs {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("algorithm: bogo\nquantity: 80\ntick_ms: 30\nfinal_delay_ms: 700\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SORTSIM_TICK_MS", "20")

	cmd := subcommand(t, "run", "--config", path, "--preset", "slow", "-n", "90")
	cfg, err := resolveConfig(cmd, "bubble")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if cfg.Algorithm != "bubble" {
		t.Errorf("positional algorithm should win, got %s", cfg.Algorithm)
	}
	if cfg.Quantity != 90 {
		t.Errorf("flag should win over file and preset, got %d", cfg.Quantity)
	}
	if cfg.TickMs != 20 {
		t.Errorf("env should win over file and preset, got %d", cfg.TickMs)
	}
	if cfg.FinalDelayMs != 700 {
		t.Errorf("file should win over defaults, got %d", cfg.FinalDelayMs)
	}
}

func TestResolveConfigPreset(t *testing.T) {
	cfg, err := resolveConfig(subcommand(t, "run", "--preset", "slow"), "bubble")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Quantity != 20 || cfg.TickMs != 250 {
		t.Errorf("preset not applied: %+v", cfg)
	}

	if _, err := resolveConfig(subcommand(t, "run", "--preset", "nope"), "bubble"); err == nil {
		t.Error("expected unknown preset error")
	}
}

func TestResolveConfigUnknownTheme(t *testing.T) {
	cfg, err := resolveConfig(subcommand(t, "run", "--theme", "neon"), "merge")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Theme != "classic" {
		t.Errorf("expected fallback theme, got %s", cfg.Theme)
	}
}

func TestRunRejectsQuantity(t *testing.T) {
	_, _, err := execute(t, "run", "bubble", "-n", "151", "--plain")
	var qerr *config.QuantityError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QuantityError, got %v", err)
	}
	if qerr.Error() != "quantity 151 is not in range [2 - 150]" {
		t.Errorf("unexpected message %q", qerr.Error())
	}
}

func TestRunPlain(t *testing.T) {
	out, _, err := execute(t, "run", "insertion", "-n", "6", "-t", "1", "--final-delay", "0", "--seed", "3", "--plain")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"Insertion Sort", "sorted", "Worst time:", "Insertion Sort finished:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	if _, _, err := execute(t, "run", "heap", "--plain"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"NAME", "bogo", "shuffles", "O(∞)", "merge", "θ(n log n)", "#f08080"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "presets", "quick")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "dense") || !strings.Contains(out, "n=150") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _, _ = execute(t, "presets", "heap")
	if !strings.Contains(out, "no presets") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "merge", "--from", "10", "--to", "40", "--step", "10")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, want := range []string{"benchmarking Merge Sort", "QUANTITY", "MERGES", "merges vs quantity (10..40)"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q:\n%s", want, out)
		}
	}
}

func TestBenchRuns(t *testing.T) {
	out, _, err := execute(t, "bench", "quick", "--from", "20", "--to", "40", "--step", "20", "--runs", "3")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, want := range []string{"MIN", "MEAN ITERATIONS", "MAX"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q:\n%s", want, out)
		}
	}
}

func TestBenchJSON(t *testing.T) {
	out, _, err := execute(t, "bench", "insertion", "--from", "5", "--to", "15", "--step", "5", "--json", "-")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	var report store.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("stdout is not a report: %v\n%s", err, out)
	}
	if len(report.Points) != 3 || report.Seed != 42 {
		t.Errorf("unexpected report %+v", report)
	}

	path := filepath.Join(t.TempDir(), "bench.json")
	out, _, err = execute(t, "bench", "insertion", "--from", "5", "--to", "10", "--step", "5", "--json", path)
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if !strings.Contains(out, "QUANTITY") {
		t.Errorf("table missing when exporting to a file:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestBenchBogoDefaultsToSmallQuantities(t *testing.T) {
	out, _, err := execute(t, "bench", "bogo", "--to", "4")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if !strings.Contains(out, "SHUFFLES") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestBenchEmptyRange(t *testing.T) {
	if _, _, err := execute(t, "bench", "quick", "--from", "50", "--to", "10"); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil || !strings.Contains(out, "sortsim dev") {
		t.Errorf("version output %q, err %v", out, err)
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortsim.log")
	_, _, err := execute(t, "run", "bubble", "-n", "3", "-t", "1", "--final-delay", "0", "--plain", "-v", "--log-file", path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "INFO [run] finished") {
		t.Errorf("log file missing run entry:\n%s", data)
	}
}

func TestRunWithoutTerminalUsesPlainOutput(t *testing.T) {
	out, _, err := execute(t, "run", "merge", "-n", "5", "-t", "1", "--final-delay", "0", "--seed", "7")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Merge Sort finished") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSilenceLogsRestoresWriter(t *testing.T) {
	var errOut bytes.Buffer
	root := newRootCommand()
	root.SetErr(&errOut)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	restore := silenceLogs()
	log.Warn("while silenced")
	restore()
	log.Warn("after restore")

	if strings.Contains(errOut.String(), "while silenced") {
		t.Errorf("silenced line leaked:\n%s", errOut.String())
	}
	if !strings.Contains(errOut.String(), "after restore") {
		t.Errorf("logs did not return to the command's stderr:\n%s", errOut.String())
	}
}

func TestSaveConfigAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	_, _, err := execute(t, "run", "quick", "-n", "12", "-t", "1", "--final-delay", "0", "--plain", "--save-config", path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("saved config does not load: %v", err)
	}
	if loaded.Algorithm != "quick" || loaded.Quantity != 12 || loaded.TickMs != 1 {
		t.Errorf("unexpected saved config %+v", loaded)
	}

	out, _, err := execute(t, "config", "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "ok (quick, n=12, tick=1ms") {
		t.Errorf("unexpected check output:\n%s", out)
	}
}

func TestConfigCheckRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("quantity: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := execute(t, "config", "check", path)
	var qe *config.QuantityError
	if !errors.As(err, &qe) {
		t.Errorf("expected QuantityError, got %v", err)
	}
}
