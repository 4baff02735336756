package internal

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monejava/neptune-demo/internal/demo"
	"github.com/monejava/neptune-demo/internal/types"
)

func init() {
	color.NoColor = true
}

func sampleReport(success bool) *demo.Report {
	r := &demo.Report{
		RunID:    "3f1c8a52-9b1e-4f0e-8e57-0c5f0d2f4a11",
		Demo:     demo.KindBolt,
		Endpoint: "bolt+s://cluster:8182",
		Health:   types.Healthy("connected to Neptune over Bolt"),
		Steps: []demo.StepResult{
			{Name: "test-connection", Status: demo.StepStatusOK, Rows: 1, Duration: demo.Duration(12 * time.Millisecond)},
			{Name: "create-sample-data", Status: demo.StepStatusOK, Rows: 1, Duration: demo.Duration(40 * time.Millisecond)},
		},
		Duration: demo.Duration(1200 * time.Millisecond),
		Success:  success,
	}
	if !success {
		r.Steps[1].Status = demo.StepStatusFailed
		r.Steps = append(r.Steps, demo.StepResult{Name: "cleanup", Status: demo.StepStatusSkipped})
		r.Error = "step create-sample-data failed"
	}
	return r
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseOutputFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestTextFormatter_PrintReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).PrintReport(sampleReport(true)))

	out := buf.String()
	assert.Contains(t, out, "Neptune Bolt Demo")
	assert.Contains(t, out, "test-connection")
	assert.Contains(t, out, "12ms")
	assert.Contains(t, out, "Run ID:   3f1c8a52-9b1e-4f0e-8e57-0c5f0d2f4a11")
	assert.Contains(t, out, "✓ Neptune Bolt Demo completed in 1.2s")
}

func TestTextFormatter_PrintReportFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).PrintReport(sampleReport(false)))

	out := buf.String()
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "✗ Neptune Bolt Demo failed: step create-sample-data failed")
}

func TestJSONFormatter_PrintReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).PrintReport(sampleReport(true)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "bolt", decoded["demo"])
	assert.Equal(t, true, decoded["success"])
	assert.Len(t, decoded["steps"], 2)
}
