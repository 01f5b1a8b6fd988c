package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testGraph = "H\tVN:Z:1.1\n" +
	"S\t1\tTCCGAT\n" +
	"S\t2\tTA\n" +
	"S\t3\tACG\n" +
	"P\tp1\t1+,2-\t*\n" +
	"P\tp2\t2-,3+\t*\n" +
	"L\t1\t+\t2\t-\t0M\n" +
	"L\t2\t-\t3\t+\t0M\n"

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestTrimToStdout(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)

	out, err := runCommand(t, graph, "--quiet")
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if out != testGraph {
		t.Fatalf("keep-all trim should be a no-op for this graph, got:\n%s", out)
	}
}

func TestTrimWithSelectionList(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	names := writeTempFile(t, dir, "keep.txt", "p1\n\n")

	out, err := runCommand(t, graph, "--quiet", "--paths-to-keep", names)
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}

	want := "H\tVN:Z:1.1\n" +
		"S\t1\tTCCGAT\n" +
		"S\t2\tTA\n" +
		"P\tp1\t1+,2-\t*\n" +
		"L\t1\t+\t2\t-\t0M\n"
	if out != want {
		t.Fatalf("unexpected trimmed output:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestTrimToOutputFile(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	outPath := filepath.Join(dir, "trimmed.gfa")

	stdout, err := runCommand(t, graph, "--quiet", "--output", outPath)
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout when --output is set, got %q", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != testGraph {
		t.Fatalf("unexpected output file content:\n%s", data)
	}
}

func TestTrimUnknownSelectionFailsBeforeOutput(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	names := writeTempFile(t, dir, "keep.txt", "p1\nno-such-path\n")
	outPath := filepath.Join(dir, "trimmed.gfa")

	_, err := runCommand(t, graph, "--quiet", "--paths-to-keep", names, "--output", outPath)
	if err == nil {
		t.Fatal("expected unknown selection to fail the run")
	}
	if !strings.Contains(err.Error(), "no-such-path") {
		t.Fatalf("expected error to name the missing selection, got: %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file after a failed run, stat err: %v", statErr)
	}
}

func TestTrimAllowMissingSelection(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	names := writeTempFile(t, dir, "keep.txt", "p2\nno-such-path\n")

	out, err := runCommand(t, graph, "--quiet", "--paths-to-keep", names, "--allow-missing")
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if !strings.Contains(out, "P\tp2\t2-,3+\t*") || strings.Contains(out, "P\tp1") {
		t.Fatalf("expected only p2 to survive, got:\n%s", out)
	}
}

func TestTrimIgnoreSegmentsFlag(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	names := writeTempFile(t, dir, "keep.txt", "p1\n")

	out, err := runCommand(t, graph, "--quiet", "--paths-to-keep", names, "--ignore-segments")
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if !strings.Contains(out, "S\t3\tACG") {
		t.Fatalf("expected -S to keep unreferenced segments, got:\n%s", out)
	}
	if strings.Contains(out, "L\t2\t-\t3\t+\t0M") {
		t.Fatalf("expected link filtering to still apply, got:\n%s", out)
	}
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	names := writeTempFile(t, dir, "keep.txt", "p1\n")
	config := writeTempFile(t, dir, "gfatrim.yaml",
		"paths-to-keep: "+names+"\nignore-segments: true\nquiet: true\nthreads: 2\n")

	out, err := runCommand(t, graph, "--config", config)
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if !strings.Contains(out, "S\t3\tACG") {
		t.Fatalf("expected config ignore-segments to apply, got:\n%s", out)
	}
	if strings.Contains(out, "P\tp2") {
		t.Fatalf("expected config selection list to apply, got:\n%s", out)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	graph := writeTempFile(t, dir, "graph.gfa", testGraph)
	namesAll := writeTempFile(t, dir, "keep-all.txt", "p1\np2\n")
	namesOne := writeTempFile(t, dir, "keep-one.txt", "p2\n")
	config := writeTempFile(t, dir, "gfatrim.yaml", "paths-to-keep: "+namesAll+"\nquiet: true\n")

	out, err := runCommand(t, graph, "--config", config, "--paths-to-keep", namesOne)
	if err != nil {
		t.Fatalf("trim failed: %v", err)
	}
	if strings.Contains(out, "P\tp1") {
		t.Fatalf("expected explicit flag to override config, got:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "1.2.3") {
		t.Fatalf("expected version output, got %q", stdout.String())
	}
}
