package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"row-mapper/internal/rowmap"
)

var sample = []rowmap.ColumnMapping{
	{ColumnName: "some_float", SourcePath: "someFloat", DataType: "float32"},
	{ColumnName: "someInteger", SourcePath: "someInteger", DataType: "int"},
	{ColumnName: "Timestamp", SourcePath: "At", DataType: "time.Time"},
	{ColumnName: "payload", SourcePath: "Payload", DataType: "map[string]any"},
}

func TestKustoType(t *testing.T) {
	tests := []struct {
		goType string
		want   string
	}{
		{goType: "bool", want: "bool"},
		{goType: "int", want: "long"},
		{goType: "int32", want: "int"},
		{goType: "uint", want: "long"},
		{goType: "uint16", want: "int"},
		{goType: "int64", want: "long"},
		{goType: "float32", want: "real"},
		{goType: "*float64", want: "real"},
		{goType: "string", want: "string"},
		{goType: "time.Time", want: "datetime"},
		{goType: "time.Duration", want: "timespan"},
		{goType: "[]string", want: "dynamic"},
		{goType: "", want: "dynamic"},
	}

	for _, tt := range tests {
		t.Run(tt.goType, func(t *testing.T) {
			assert.Equal(t, tt.want, KustoType(tt.goType))
		})
	}
}

func TestKustoJSON(t *testing.T) {
	data, err := KustoJSON(sample[:2])
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"column": "some_float", "datatype": "real", "Properties": {"Path": "$.someFloat"}},
		{"column": "someInteger", "datatype": "long", "Properties": {"Path": "$.someInteger"}}
	]`, string(data))
}

func TestJSONPath(t *testing.T) {
	tests := []struct {
		member string
		want   string
	}{
		{member: "someFloat", want: "$.someFloat"},
		{member: "_hidden2", want: "$._hidden2"},
		{member: "some-name", want: "$['some-name']"},
		{member: "2nd", want: "$['2nd']"},
		{member: "it's", want: `$['it\'s']`},
		{member: "", want: "$['']"},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONPath(tt.member))
		})
	}
}

func TestKustoJSON_Empty(t *testing.T) {
	data, err := KustoJSON(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestYAML(t *testing.T) {
	data, err := YAML(
		Document{Type: "CommonMappingModel", Mappings: sample[:2]},
		Document{Type: "Empty", Mappings: []rowmap.ColumnMapping{}},
	)
	require.NoError(t, err)

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var first Document
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "CommonMappingModel", first.Type)
	assert.Equal(t, sample[:2], first.Mappings)

	var second Document
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "Empty", second.Type)
	assert.Empty(t, second.Mappings)
}

func TestJSONSchema(t *testing.T) {
	schema := JSONSchema("telemetry.Heartbeat", sample)

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, "telemetry.Heartbeat", schema.Title)
	require.Len(t, schema.Properties, 4)

	assert.Equal(t, "number", schema.Properties["some_float"].Type)
	assert.Equal(t, "source: someFloat", schema.Properties["some_float"].Description)
	assert.Equal(t, "integer", schema.Properties["someInteger"].Type)
	assert.Empty(t, schema.Properties["someInteger"].Description)
	assert.Equal(t, "date-time", schema.Properties["Timestamp"].Format)
	assert.Empty(t, schema.Properties["payload"].Type)

	data, err := JSONSchemaBytes("telemetry.Heartbeat", sample)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])
}
