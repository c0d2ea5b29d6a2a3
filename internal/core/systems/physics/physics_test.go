package physics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDistance(t *testing.T) {
	a, b := V3(0, 0, 0), V3(1, 2, 2)
	assert.Equal(t, 9.0, DistanceSquared3(a, b))
	assert.Equal(t, 3.0, Distance3(a, b))
	assert.Equal(t, DistanceSquared3(a, b), DistanceSquared3(b, a))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Vec3{}, Centroid(nil))
	assert.Equal(t, V3(1, 1, 0), Centroid([]Vec3{V3(0, 0, 0), V3(2, 2, 0)}))
}

func TestVec3Encoding(t *testing.T) {
	data, err := json.Marshal(V3(1, 2.5, -3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5, -3]`, string(data))

	var fromJSON Vec3
	require.NoError(t, json.Unmarshal([]byte(`[4, 5, 6]`), &fromJSON))
	assert.Equal(t, V3(4, 5, 6), fromJSON)

	var fromYAML []Vec3
	require.NoError(t, yaml.Unmarshal([]byte("- [1, 0, 0]\n- [0, 1, 0]\n"), &fromYAML))
	assert.Equal(t, []Vec3{V3(1, 0, 0), V3(0, 1, 0)}, fromYAML)

	var bad Vec3
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &bad))
}
