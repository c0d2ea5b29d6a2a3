package physics

// Minimal 3D vector helpers shared by clustering and spawn placement.

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Vec3 is a point or direction in world space.
type Vec3 struct{ X, Y, Z float64 }

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSquared avoids the square root; compare against squared thresholds.
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

// DistanceSquared3 is the squared Euclidean distance between two points.
func DistanceSquared3(a, b Vec3) float64 { return b.Sub(a).LengthSquared() }

// Distance3 is the Euclidean distance between two points.
func Distance3(a, b Vec3) float64 { return math.Sqrt(DistanceSquared3(a, b)) }

// Centroid returns the mean of points, or the zero vector for none.
func Centroid(points []Vec3) Vec3 {
	if len(points) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Vec3 is encoded as a [x, y, z] array in JSON and YAML.

func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var xyz []float64
	if err := json.Unmarshal(data, &xyz); err != nil {
		return err
	}
	return v.set(xyz)
}

func (v Vec3) MarshalYAML() (any, error) {
	return []float64{v.X, v.Y, v.Z}, nil
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xyz []float64
	if err := node.Decode(&xyz); err != nil {
		return err
	}
	return v.set(xyz)
}

func (v *Vec3) set(xyz []float64) error {
	if len(xyz) != 3 {
		return fmt.Errorf("vec3: expected 3 components, got %d", len(xyz))
	}
	v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
	return nil
}
