// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcell/cell"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NUMCELL_LOG_LEVEL", "error")
	t.Setenv("NUMCELL_WORKERS", "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestCellCmd_YAML(t *testing.T) {
	out, err := execute(t, "cell", "13", "2", "1", "4", "5", "6", "--evaluate", "--config", missingConfig(t))
	require.NoError(t, err)
	require.Contains(t, out, "depth: 2")
	require.Contains(t, out, "value: 156/5")
}

func TestCellCmd_Text(t *testing.T) {
	out, err := execute(t, "cell", "5", "--text", "--signs", "000001", "--config", missingConfig(t))
	require.NoError(t, err)
	require.Equal(t, "[0] signs=000001 meta=0 a=5 b=0 c=0 d=0 e=0 f=0 links=-\n", out)
}

func TestCellCmd_CarriedSigns(t *testing.T) {
	out, err := execute(t, "cell", "13", "--text", "--signs", "000001", "--config", missingConfig(t))
	require.NoError(t, err)
	require.Equal(t,
		"[0] signs=000001 meta=0 a=3 b=0 c=0 d=0 e=0 f=0 links=left*\n"+
			"[1] signs=000001 meta=1 a=1 b=0 c=0 d=0 e=0 f=0 links=-\n", out)
}

func TestCellCmd_IgnoresConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numcell.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layer: [not, a, map\n"), 0644))

	out, err := execute(t, "cell", "5", "--text", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "a=5")

	_, err = execute(t, "inspect", "--config", path)
	require.Error(t, err)
}

func TestCellCmd_Errors(t *testing.T) {
	cfg := missingConfig(t)
	_, err := execute(t, "cell", "x1", "--config", cfg)
	require.ErrorContains(t, err, "not an integer")

	_, err = execute(t, "cell", "1", "--signs", "1000000", "--config", cfg)
	require.ErrorIs(t, err, cell.ErrInvalidSigns)

	_, err = execute(t, "cell", "1", "--radix", "1", "--config", cfg)
	require.ErrorIs(t, err, cell.ErrInvalidBase)

	_, err = execute(t, "cell", "1", "1", "0", "1", "1", "1", "--evaluate", "--config", cfg)
	require.ErrorIs(t, err, cell.ErrUndefinedEvaluation)

	_, err = execute(t, "cell", "1", "2", "3", "4", "5", "6", "7", "--config", cfg)
	require.Error(t, err)
}

func TestInspectCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
layer:
  inputs: [a, b]
  outputs: [x]
  scale: 1000
  weights: {x: {a: 2}}
`), 0644))

	out, err := execute(t, "inspect", "--config", path)
	require.NoError(t, err)

	var snap struct {
		Scale   int64                        `yaml:"scale"`
		Weights map[string]map[string]string `yaml:"weights"`
		Biases  map[string]string            `yaml:"biases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	require.Equal(t, int64(1000), snap.Scale)
	require.Equal(t, map[string]string{"a": "2000", "b": "1000"}, snap.Weights["x"])
	require.Equal(t, "1000", snap.Biases["x"])
}

func TestInspectCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layer: {inputs: []}\n"), 0644))
	_, err := execute(t, "inspect", "--config", path)
	require.Error(t, err)
}

func TestTrainCmd_Replicas(t *testing.T) {
	out, err := execute(t, "train", "--replicas", "3", "--workers", "2", "--config", missingConfig(t))
	require.NoError(t, err)

	var runs []runSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 3)
	for i, r := range runs {
		require.Equal(t, []string{"run-0", "run-1", "run-2"}[i], r.Name)
		require.Equal(t, uint64(20), r.Steps)
		require.Len(t, r.History, 20)
		require.Equal(t, "8000", r.History[0])
		require.Equal(t, []map[string]string{{"y": "4"}}, r.FinalErrors)
		require.NotEmpty(t, r.RunID)
	}
}
