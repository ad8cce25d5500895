package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/rndtable/internal/game/damage"
)

var weaponsDir = filepath.Join("..", "..", "content", "weapons")

func TestRun_PelletsJSON(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-pellets", "1", "-from", "0", "-to", "2", "-format", "json"}, &out)
	require.NoError(t, err)

	var res damage.RangeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, []int{5, 10, 15}, res.PossibleDamageValues)
	assert.Len(t, res.Results, 3)
	assert.Equal(t, 768, res.TotalShots)
}

func TestRun_WeaponText(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-weapon", "shotgun", "-weapons-dir", weaponsDir, "-from", "3"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Shotgun (7 pellets)")
	assert.Contains(t, out.String(), "total shots: 256")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: warn
analysis:
  weapon: super_shotgun
  weapons_dir: `+weaponsDir+`
  extra_calls_from: 0
  extra_calls_to: 1
report:
  format: yaml
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, &out))
	assert.Contains(t, out.String(), "pellets: 20")
	assert.Contains(t, out.String(), "total_shots: 512")
}

func TestRun_Trace(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-pellets", "2", "-from", "1", "-trace-start", "0", "-format", "json"}, &out)
	require.NoError(t, err)

	var tr damage.Trace
	require.NoError(t, json.Unmarshal(out.Bytes(), &tr))
	assert.Equal(t, 25, tr.Total)
}

func TestRun_InvalidParameters(t *testing.T) {
	err := run([]string{"-pellets", "0"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-pellets", "1", "-from", "5", "-to", "2"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-weapon", "bfg", "-weapons-dir", weaponsDir}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown weapon")

	err = run([]string{"-format", "csv"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "report.format")
}

func TestRun_FromAloneOverridesConfiguredUpperBound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
analysis:
  pellets: 7
  extra_calls_from: 0
  extra_calls_to: 16
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-from", "3", "-format", "json"}, &out))

	var res damage.RangeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Results, 1)
	assert.Equal(t, 3, res.Results[0].ExtraCalls)
	assert.Equal(t, 256, res.TotalShots)
}

func TestRun_ConfigFileRangeWithoutFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
analysis:
  pellets: 1
  extra_calls_from: 2
  extra_calls_to: 5
report:
  format: json
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, &out))

	var res damage.RangeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Len(t, res.Results, 4)
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "reading config file")
}

func TestRun_TitleUnitFollowsPelletCount(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-weapon", "pistol", "-weapons-dir", weaponsDir}, &out))
	assert.Contains(t, out.String(), "Pistol (1 pellet)\n")

	out.Reset()
	require.NoError(t, run([]string{"-weapon", "super_shotgun", "-weapons-dir", weaponsDir}, &out))
	assert.Contains(t, out.String(), "Super Shotgun (20 pellets)\n")
}
