package cli

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/view"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const testConfig = `
log:
  level: error
chart:
  symbol: MSFT
  width: 300
  height: 200
source:
  type: mock
  mock_days: 30
`

func TestRenderCommand_WritesPNG(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "chart.png")

	stdout, err := run(t, "render", "--config", cfgPath, "--out", out, "--width", "320")
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderCommand_JSON(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)

	stdout, err := run(t, "render", "--config", cfgPath, "--json")
	require.NoError(t, err)

	var snap view.Snapshot
	require.NoError(t, json.Unmarshal([]byte(stdout), &snap))
	assert.Equal(t, "MSFT", snap.Symbol)
	assert.Len(t, snap.Frame.PricePath, 30)
	assert.Len(t, snap.Frame.VolumeBars, 30)
}

func TestConfigValidate_Invalid(t *testing.T) {
	cfgPath := writeConfig(t, "source:\n  type: file\n")
	_, err := run(t, "config", "validate", "--config", cfgPath)
	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)
	stdout, err := run(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "symbol: MSFT")
}

func TestVersionCommand(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stockchart dev\n", stdout)
}

func TestRenderCommand_ValidatesOverrides(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "chart.png")

	for _, args := range [][]string{
		{"--width", "100000"},
		{"--height", "10"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := run(t, append([]string{"render", "--config", cfgPath, "--out", out}, args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.NoFileExists(t, out)
		})
	}
}
