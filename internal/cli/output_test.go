package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tacogips/xenon/internal/template/generator"
)

func TestPrinter_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	p := newPrinter(&out, &errOut, true, true)

	p.printInfo("info")
	p.printSuccess("done")
	p.printWarning("careful")
	p.printErrorMsg("failed")

	assert.Empty(t, out.String())
	assert.Equal(t, "✗ failed\n", errOut.String())
}

func TestPrinter_NoColor(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out, &out, false, true)

	p.printSuccess("done")
	p.printWarning("careful")

	assert.Equal(t, "✓ done\n⚠ careful\n", out.String())
}

func TestPrinter_Color(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out, &out, false, false)

	p.printSuccess("done")
	assert.Contains(t, out.String(), "\x1b[32m")
}

func TestPrinter_PrintResult(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out, &out, false, true)

	p.printResult(&generator.SaveResult{
		FilesCreated:     1,
		FilesOverwritten: 1,
		Files: []generator.PlannedFile{
			{SourcePath: "a.txt.tmpl", Path: "/project/out/a.txt"},
			{SourcePath: "b.txt.tmpl", Path: "/project/out/b.txt", Exists: true},
		},
	}, "/project")

	assert.Contains(t, out.String(), "out/a.txt")
	assert.Contains(t, out.String(), "Generated 2 file(s): 1 created, 1 overwritten")
}

func TestPrinter_PrintDryRun(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out, &out, false, true)

	p.printResult(&generator.SaveResult{
		DryRun:      true,
		Directories: []string{"/project/out"},
		Files: []generator.PlannedFile{
			{SourcePath: "a.txt.tmpl", Path: "/project/out/a.txt", Size: 2048},
			{SourcePath: "b.txt.tmpl", Path: "/project/out/b.txt", Size: 3, Exists: true},
		},
	}, "/project")

	s := out.String()
	assert.Contains(t, s, "TEMPLATE")
	assert.Contains(t, s, "a.txt.tmpl")
	assert.Contains(t, s, "out/a.txt")
	assert.Contains(t, s, "2.0 KB")
	assert.Contains(t, s, "create")
	assert.Contains(t, s, "overwrite")
	assert.Contains(t, s, "Dry run: nothing written (1 directory would be used)")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
