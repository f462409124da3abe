package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/glacionet/app"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GLACIONET_CONFIG", "")
}

func snapshot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, run(context.Background(), append([]string{"-snapshot", "-width", "140", "-height", "50"}, args...), &out, clock))
	return out.String()
}

func TestSnapshotDefaultPage(t *testing.T) {
	isolate(t)
	out := snapshot(t)
	assert.Contains(t, out, "AI-Powered Glacier Health Monitoring")
	assert.Contains(t, out, "Current Status")
}

func TestSnapshotPageFlag(t *testing.T) {
	isolate(t)
	assert.Contains(t, snapshot(t, "-page", "map"), "Glacier Monitor")
	assert.Contains(t, snapshot(t, "-page", "predictions"), "Key Risk Factors")
}

func TestSnapshotDataFlag(t *testing.T) {
	isolate(t)
	doc := `
[glacier]
name = "Gangotri Glacier"
region = "Garhwal Himalaya"
elevation = 4000
area_km2 = 143.0
coordinates = [30.9265, 79.0808]

[predictions]
glof_risk = 0.41
water_security_index = 0.7
`
	path := filepath.Join(t.TempDir(), "gangotri.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out := snapshot(t, "-page", "map", "-data", path)
	assert.Contains(t, out, "Gangotri Glacier, Garhwal Himalaya")
	assert.Contains(t, out, "30.9265°N, 79.0808°E")
}

func TestStartPageFromConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nstart_page = \"predictions\"\n"), 0o644))
	t.Setenv("GLACIONET_CONFIG", path)
	assert.Contains(t, snapshot(t), "AI Analysis Summary")
}

func TestRunRejectsBadInput(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	clock := clockwork.NewRealClock()

	err := run(context.Background(), []string{"-snapshot", "-page", "settings"}, &out, clock)
	require.ErrorIs(t, err, app.ErrUnknownPage)

	err = run(context.Background(), []string{"-snapshot", "-width", "0"}, &out, clock)
	require.Error(t, err)

	err = run(context.Background(), []string{"-snapshot", "-data", filepath.Join(t.TempDir(), "missing.toml")}, &out, clock)
	require.Error(t, err)

	err = run(context.Background(), []string{"stray"}, &out, clock)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunRejectsUnknownConfiguredPage(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nstart_page = \"settings\"\n"), 0o644))
	t.Setenv("GLACIONET_CONFIG", path)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-snapshot"}, &out, clockwork.NewRealClock())
	require.ErrorIs(t, err, app.ErrUnknownPage)
	assert.Contains(t, err.Error(), "ui.start_page")
	assert.Empty(t, out.String())
}
