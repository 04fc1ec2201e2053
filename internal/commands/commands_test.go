package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../model/testdata/mapping_models.yaml"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestResolve_Table(t *testing.T) {
	out, _, err := execute(t, "resolve", "--models", fixture)
	require.NoError(t, err)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "BasicMappingModel")
	assert.Regexp(t, `ComplexMappingModel\s+some_float\s+someFloat\s+real`, out)
	assert.Regexp(t, `ComplexMappingModel\s+someField\s+someField\s+long`, out)
	assert.Regexp(t, `WriteOnlyModel\s+-`, out)
	assert.NotContains(t, out, "privateGetter")
	assert.NotContains(t, out, "PlainModel")
}

func TestResolve_Kusto(t *testing.T) {
	out, _, err := execute(t, "resolve", "-m", fixture, "--type", "CommonMappingModel", "--format", "kusto")
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"column": "some_float", "datatype": "real", "Properties": {"Path": "$.someFloat"}},
		{"column": "someInteger", "datatype": "long", "Properties": {"Path": "$.someInteger"}}
	]`, out)
}

func TestResolve_JSON(t *testing.T) {
	out, _, err := execute(t, "resolve", "-m", fixture, "-t", "BasicMappingModel", "-f", "json")
	require.NoError(t, err)

	var docs []struct {
		Type     string `json:"type"`
		Mappings []struct {
			Column string `json:"column"`
			Path   string `json:"path"`
		} `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "BasicMappingModel", docs[0].Type)
	assert.Len(t, docs[0].Mappings, 2)
}

func TestResolve_NotARow(t *testing.T) {
	_, _, err := execute(t, "resolve", "-m", fixture, "-t", "PlainModel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a row model")
}

func TestResolve_KustoNeedsSingleType(t *testing.T) {
	_, _, err := execute(t, "resolve", "-m", fixture, "-f", "kusto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs exactly one type")
}

func TestResolve_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "resolve", "-m", fixture, "-f", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "csv"`)
}

func TestResolve_MissingFlag(t *testing.T) {
	_, _, err := execute(t, "resolve")
	require.Error(t, err)
}

func TestResolve_Debug(t *testing.T) {
	_, stderr, err := execute(t, "--debug", "resolve", "-m", fixture, "-t", "ComplexMappingModel")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Hierarchy")
	assert.Contains(t, stderr, "privateGetter")
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", "-m", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (5 models)")
}

func TestCheck_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
models:
  - name: A
    base: Missing
    members:
      - name: x
        ignore: true
        rename: y
`), 0o600))

	out, _, err := execute(t, "check", "-m", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")
	assert.Contains(t, out, `error: A: base "Missing" not found [unknown_base]`)
	assert.Contains(t, out, "warning: A.x: rename has no effect on an ignored member [rename_on_ignored]")

	_, _, err = execute(t, "resolve", "-m", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model file")
}

func TestAnalyze(t *testing.T) {
	out, _, err := execute(t, "analyze", "--pkg", "row-mapper/examples/telemetry")
	require.NoError(t, err)

	assert.Regexp(t, `telemetry\.Heartbeat\s+Timestamp\s+At\s+datetime`, out)
	assert.Regexp(t, `telemetry\.Redeploy\s+attempt\s+Attempt\s+long`, out)
	assert.NotContains(t, out, "Settings")
}

func TestAnalyze_SchemaWithCustomTags(t *testing.T) {
	out, _, err := execute(t, "analyze", "-p", "row-mapper/examples/telemetry",
		"-t", "Heartbeat", "-f", "schema", "--tags", "kusto")
	require.NoError(t, err)

	var schema struct {
		Title      string                    `json:"title"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &schema))

	assert.Equal(t, "telemetry.Heartbeat", schema.Title)
	assert.Contains(t, schema.Properties, "Timestamp")
	// json tags are not consulted, so Interval keeps its Go name.
	assert.Contains(t, schema.Properties, "Interval")
	assert.Equal(t, "date-time", schema.Properties["Timestamp"]["format"])
}

func TestAnalyze_UnknownType(t *testing.T) {
	_, _, err := execute(t, "analyze", "-p", "row-mapper/examples/telemetry", "-t", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAnalyze_EmitModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.yaml")

	fromSource, _, err := execute(t, "analyze", "-p", "row-mapper/examples/telemetry",
		"-t", "Redeploy", "-f", "json", "--emit-model", path)
	require.NoError(t, err)

	fromModel, _, err := execute(t, "resolve", "-m", path, "-t", "telemetry.Redeploy", "-f", "json")
	require.NoError(t, err)

	assert.JSONEq(t, fromSource, fromModel)
}

func TestResolve_VerboseLogsCacheSize(t *testing.T) {
	_, stderr, err := execute(t, "-v", "resolve", "-m", fixture)
	require.NoError(t, err)

	assert.Contains(t, stderr, `msg="resolution done" types=4 cached=4`)
}
