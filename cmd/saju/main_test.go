// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub036/window"
)

// run executes the CLI with args in an empty working directory and home.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func TestRelationsCmd_Chart(t *testing.T) {
	out, err := run(t, "relations", "甲子", "乙丑", "丙寅", "丁卯")
	require.NoError(t, err)

	var got struct {
		Chart struct{ Text string }
		Hits  []struct {
			Kind   string
			Detail string
		}
		Counts map[string]int
	}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "甲子 乙丑 丙寅 丁卯", got.Chart.Text)
	assert.Equal(t, 1, got.Counts["six_combination"])
	assert.Equal(t, 1, got.Counts["punishment"])
}

func TestRelationsCmd_Flags(t *testing.T) {
	out, err := run(t, "relations", "戊子 壬子 甲寅 己巳", "--clash-mode", "5", "--earthly=false", "--void=false")
	require.NoError(t, err)
	var got struct{ Counts map[string]int }
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, map[string]int{"heavenly_combination": 1, "heavenly_clash": 1}, got.Counts)

	_, err = run(t, "relations", "甲子 乙丑 丙寅", "--clash-mode", "6")
	assert.Error(t, err)
}

func TestChartCmd_Birth(t *testing.T) {
	out, err := run(t, "chart", "--birth", "1990-05-17 14:30", "--gender", "female")
	require.NoError(t, err)
	var got struct {
		Profile struct {
			BirthYear int `json:"birth_year"`
			Daeun     []struct {
				StartAge int `json:"start_age"`
			}
		}
	}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, 1990, got.Profile.BirthYear)
	assert.Len(t, got.Profile.Daeun, 8)

	_, err = run(t, "chart", "--birth", "1990-05-17", "--gender", "x")
	assert.Error(t, err)
}

func TestAnalyzeCmd_Date(t *testing.T) {
	out, err := run(t, "analyze", "--birth", "1990-05-17 14:30", "--gender", "m", "--date", "2026-10-16")
	require.NoError(t, err)
	var got struct {
		Iljin struct {
			Score  int
			GanZhi string `json:"ganzhi"`
		}
	}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.NotEmpty(t, got.Iljin.GanZhi)
	assert.GreaterOrEqual(t, got.Iljin.Score, 15)
	assert.LessOrEqual(t, got.Iljin.Score, 95)
}

func TestWindowCmd_Range(t *testing.T) {
	args := []string{"window", "--birth", "1990-05-17 14:30", "--gender", "female",
		"--event", "marriage", "--from", "2026-10-01", "--to", "2026-10-10", "--parallelism", "2"}
	out, err := run(t, append(args, "--days")...)
	require.NoError(t, err)

	var got struct {
		Score    int         `json:"score"`
		BestDays []time.Time `json:"best_days"`
		Days     []json.RawMessage
	}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Len(t, got.BestDays, window.MaxBestDays)
	assert.Len(t, got.Days, 10)
	assert.GreaterOrEqual(t, got.Score, 15)

	_, err = run(t, "window", "--birth", "1990-05-17", "--gender", "f",
		"--event", "marriage", "--from", "2026-10-10", "--to", "2026-10-01")
	assert.ErrorIs(t, err, window.ErrInvertedRange)

	_, err = run(t, "window", "--birth", "1990-05-17", "--gender", "f",
		"--event", "picnic", "--from", "2026-10-01", "--to", "2026-10-02")
	assert.ErrorIs(t, err, window.ErrUnknownEvent)
}

func TestEventsCmd_List(t *testing.T) {
	out, err := run(t, "events")
	require.NoError(t, err)
	var got []struct {
		Event   string
		Weights map[string]float64
	}
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got, window.NumEvents)
	assert.Equal(t, "marriage", got[0].Event)
	assert.InDelta(t, 0.35, got[0].Weights["iljin"], 1e-9)
}

func TestParseTime_Layouts(t *testing.T) {
	for _, s := range []string{"2026-10-16", "2026-10-16 09:30", "2026-10-16T09:30"} {
		got, err := parseTime(s, time.UTC)
		require.NoError(t, err, s)
		assert.Equal(t, 16, got.Day())
	}
	_, err := parseTime("16/10/2026", time.UTC)
	assert.Error(t, err)
}
