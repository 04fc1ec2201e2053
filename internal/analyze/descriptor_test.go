package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"row-mapper/examples/telemetry"
	"row-mapper/internal/rowmap"
)

func TestTypeGraph_RowTypes(t *testing.T) {
	graph := loadTelemetry(t)

	var names []string
	for _, id := range graph.RowTypes() {
		names = append(names, id.Name)
	}

	assert.Equal(t, []string{"DeploymentEvent", "Heartbeat", "Measurement", "ProbeResult", "Redeploy", "Silent"}, names)
}

func TestTypeGraph_Lookup(t *testing.T) {
	graph := loadTelemetry(t)

	id, err := graph.Lookup("Heartbeat")
	require.NoError(t, err)
	assert.Equal(t, TypeID{PkgPath: telemetryPkg, Name: "Heartbeat"}, id)

	id, err = graph.Lookup(telemetryPkg + ".Silent")
	require.NoError(t, err)
	assert.Equal(t, "Silent", id.Name)

	id, err = graph.Lookup("telemetry.Redeploy")
	require.NoError(t, err)
	assert.Equal(t, TypeID{PkgPath: telemetryPkg, Name: "Redeploy"}, id)

	_, err = graph.Lookup("other.Redeploy")
	require.Error(t, err)

	_, err = graph.Lookup("Nope")
	require.Error(t, err)

	_, err = graph.Lookup("HeartBeat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Heartbeat"?`)
}

func TestTypeGraph_Descriptor(t *testing.T) {
	graph := loadTelemetry(t)
	r := rowmap.NewResolver()

	tests := []struct {
		name string
		want map[string]string
	}{
		{name: "ProbeResult", want: map[string]string{"Latency": "Latency", "Endpoint": "Endpoint"}},
		{name: "Measurement", want: map[string]string{"value": "Value", "Count": "Count"}},
		{name: "DeploymentEvent", want: map[string]string{"Component": "Component", "value": "Value", "Count": "Count"}},
		{name: "Heartbeat", want: map[string]string{"Timestamp": "At", "interval": "Interval"}},
		{name: "Redeploy", want: map[string]string{"attempt": "Attempt", "Component": "Component", "Count": "Count"}},
		{name: "Silent", want: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := graph.Descriptor(TypeID{PkgPath: telemetryPkg, Name: tt.name}, rowmap.DefaultTags)
			require.NoError(t, err)

			mappings, err := r.Resolve(desc)
			require.NoError(t, err)

			got := make(map[string]string, len(mappings))
			for _, m := range mappings {
				got[m.ColumnName] = m.SourcePath
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeGraph_DescriptorNotARow(t *testing.T) {
	graph := loadTelemetry(t)

	desc, err := graph.Descriptor(TypeID{PkgPath: telemetryPkg, Name: "Settings"}, rowmap.DefaultTags)
	require.NoError(t, err)

	_, err = rowmap.NewResolver().Resolve(desc)
	require.ErrorIs(t, err, rowmap.ErrInvalidModelType)

	level, err := graph.Descriptor(TypeID{PkgPath: telemetryPkg, Name: "Level"}, rowmap.DefaultTags)
	require.NoError(t, err)
	assert.False(t, level.RowModel(), "non-struct marker types are not rows")

	_, err = rowmap.NewResolver().Resolve(level)
	require.ErrorIs(t, err, rowmap.ErrInvalidModelType)

	_, err = graph.Descriptor(TypeID{PkgPath: telemetryPkg, Name: "Missing"}, rowmap.DefaultTags)
	require.Error(t, err)
}

// Source analysis and reflection must agree on every row type.
func TestTypeGraph_MatchesReflection(t *testing.T) {
	graph := loadTelemetry(t)

	reflected := map[string]reflect.Type{
		"ProbeResult":     reflect.TypeFor[telemetry.ProbeResult](),
		"Measurement":     reflect.TypeFor[telemetry.Measurement](),
		"DeploymentEvent": reflect.TypeFor[telemetry.DeploymentEvent](),
		"Heartbeat":       reflect.TypeFor[telemetry.Heartbeat](),
		"Redeploy":        reflect.TypeFor[telemetry.Redeploy](),
		"Silent":          reflect.TypeFor[telemetry.Silent](),
	}

	for _, id := range graph.RowTypes() {
		t.Run(id.Name, func(t *testing.T) {
			typ, ok := reflected[id.Name]
			require.True(t, ok, "no reflected counterpart for %s", id)

			fromSource, err := graph.Descriptor(id, rowmap.DefaultTags)
			require.NoError(t, err)

			fromReflect := rowmap.Describe(typ)
			assert.Equal(t, typ, fromReflect.Key)

			// Only reflected descriptors carry a type-valued cache key.
			fromReflect.Key = nil
			assert.Equal(t, fromReflect, fromSource)
		})
	}
}
