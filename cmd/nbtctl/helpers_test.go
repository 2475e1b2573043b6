package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

// writeTestFile writes a small level file to a temp dir:
//
//	{Data:{LevelName:"Test World",Difficulty:2b,Pos:[1.5d,64.0d,-3.25d],Seeds:[L;7L,8L]}}
func writeTestFile(t *testing.T) string {
	t.Helper()
	root := nbt.NewCompound(nbt.Key(""), nbt.Owning)
	defer root.Close()

	data := nbt.NewCompound(nbt.Key("Data"), nbt.Owning)
	attach(t, data, nbt.NewString("Test World", nbt.Key("LevelName"), nbt.Owning))
	attach(t, data, nbt.NewByte(2, nbt.Key("Difficulty"), nbt.Owning))
	pos := nbt.NewList(nbt.Key("Pos"), nbt.Owning)
	for _, v := range []float64{1.5, 64, -3.25} {
		attach(t, pos, nbt.NewDouble(v, nbt.NoKey, nbt.Owning))
	}
	attach(t, data, pos)
	attach(t, data, nbt.NewLongArray([]int64{7, 8}, nbt.Key("Seeds"), nbt.Owning))
	attach(t, root, data)

	path := filepath.Join(t.TempDir(), "level.dat")
	require.NoError(t, nbtfile.Save(root, path, nil))
	return path
}

func attach(t *testing.T, parent, child *nbt.Cursor) {
	t.Helper()
	require.NoError(t, parent.InsertBefore(nil, child))
	child.SetOwnership(nbt.Borrowing)
	child.Close()
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, true
	byteOrder = "big"
	cfg = defaultConfig()
	treeFormat, treeDepth, treeMaxItems, treeNoTypes, treeCompact = "", 0, 16, false, false
	getShowType = false
	setType, setBackup, setDryRun = "string", false, false
	rmBackup, rmDryRun = false, false
	cpBackup, cpDryRun = false, false
	convertCompression, convertByteOrder, convertLevel = "", "", 0
	diffPath, diffFull = "", false
	validateLimits = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
