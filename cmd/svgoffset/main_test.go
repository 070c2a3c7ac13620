package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vasalvit/svgoffset"
)

const square = "M 100 100 L 200 100 L 200 200 L 100 200 Z"

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunOffset(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-d", square, "-distance", "10", "-join", "miter")
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	got := strings.TrimSpace(out)
	if !strings.HasPrefix(got, "M ") || !strings.HasSuffix(got, " Z") {
		t.Fatalf("unexpected output %q", got)
	}
	for _, c := range []string{"210.00 210.00", "90.00 90.00", "90.00 210.00", "210.00 90.00"} {
		if !strings.Contains(got, c) {
			t.Errorf("expected %s in %q", c, got)
		}
	}
}

func TestRunReadsStdin(t *testing.T) {
	code, out, _ := runCLI(t, square+"\n", "-distance", "0.0001")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(out) != square {
		t.Fatalf("expected unchanged path, got %q", out)
	}
}

func TestRunDeflated(t *testing.T) {
	code, out, _ := runCLI(t, "", "-d", "M 0 0 L 10 0 L 10 10 L 0 10 Z", "-distance", "-100")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if out != "\n" {
		t.Fatalf("expected empty line, got %q", out)
	}
}

func TestRunErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-d", "INVALID", "-distance", "1")
	if code != exitFailure || !strings.Contains(errOut, "invalid SVG path data") {
		t.Fatalf("exit %d: %s", code, errOut)
	}

	code, _, errOut = runCLI(t, "", "-d", square, "-join", "chamfer")
	if code != exitUsage || !strings.Contains(errOut, "unknown join type") {
		t.Fatalf("exit %d: %s", code, errOut)
	}

	code, _, _ = runCLI(t, "", "-nope")
	if code != exitUsage {
		t.Fatalf("expected usage error, got %d", code)
	}
}

func TestRunValidate(t *testing.T) {
	code, out, _ := runCLI(t, "", "-validate", "-d", "M 0 0 C 10 10 20 20 30 30 Z")
	if code != exitOK || strings.TrimSpace(out) != "true" {
		t.Fatalf("exit %d: %q", code, out)
	}
	code, out, _ = runCLI(t, "", "-validate", "-d", "M 0 0 A 1 1 0 0 0 5 5")
	if code != exitFailure || strings.TrimSpace(out) != "false" {
		t.Fatalf("exit %d: %q", code, out)
	}
}

func TestRunConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "config.json", `{"distance": 10, "join": "miter", "anchor_x": 0, "anchor_y": 0}`)

	code, out, errOut := runCLI(t, "", "-config", cfgPath, "-d", square)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "100.00 100.00") || !strings.Contains(out, "220.00 220.00") {
		t.Fatalf("expected anchored output, got %q", out)
	}

	// Flags win over the file.
	code, out, _ = runCLI(t, "", "-config", cfgPath, "-d", square, "-distance", "0")
	if code != exitOK || strings.TrimSpace(out) != square {
		t.Fatalf("exit %d: %q", code, out)
	}

	bad := writeFile(t, "bad.json", `{"distanse": 1}`)
	code, _, errOut = runCLI(t, "", "-config", bad, "-d", square)
	if code != exitUsage || !strings.Contains(errOut, "unknown field") {
		t.Fatalf("exit %d: %s", code, errOut)
	}
}

func TestRunVerboseLogs(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-v", "-d", square, "-distance", "1")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "level=DEBUG") {
		t.Fatalf("expected debug logs, got %q", errOut)
	}
}

func TestRunDocument(t *testing.T) {
	doc := writeFile(t, "doc.svg", `<svg xmlns="http://www.w3.org/2000/svg">
<path id="a" d="`+square+`"/>
<g><path id="b" d="INVALID"/></g>
</svg>`)

	code, out, errOut := runCLI(t, "", "-svg", doc, "-distance", "5")
	if code != exitFailure {
		t.Fatalf("expected failure for the invalid element, got %d", code)
	}
	if !strings.HasPrefix(out, "a\tM ") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(errOut, "b: invalid SVG path data") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestRunScript(t *testing.T) {
	script := writeFile(t, "run.js", `validateSvgPath("M 0 0 L 1 1") && offsetSvgPathSimple("M 0 0 L 10 0 L 10 10 L 0 10 Z", -100) === ""`)

	code, out, errOut := runCLI(t, "", "-script", script)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunPreview(t *testing.T) {
	old := previewRun
	defer func() { previewRun = old }()

	var gotD string
	var gotP svgoffset.Params
	previewRun = func(d string, p svgoffset.Params, _ ...svgoffset.Option) error {
		gotD, gotP = d, p
		return errors.New("no terminal")
	}

	code, _, errOut := runCLI(t, "", "-preview", "-d", square, "-distance", "3", "-join", "bevel")
	if code != exitFailure || !strings.Contains(errOut, "no terminal") {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if gotD != square || gotP.Distance != 3 || gotP.Join != svgoffset.JoinBevel {
		t.Fatalf("unexpected preview arguments %q %+v", gotD, gotP)
	}
}
