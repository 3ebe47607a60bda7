package hinge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/hinge/joint"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSphereLimitedPositionError(t *testing.T) {
	tests := []struct {
		name     string
		cx       mgl64.Vec3
		radius   float64
		expected mgl64.Vec3
	}{
		{
			name:     "inside the sphere is no violation",
			cx:       mgl64.Vec3{0.3, 0.4, 0},
			radius:   1,
			expected: mgl64.Vec3{},
		},
		{
			name:     "outside keeps only the radial excess",
			cx:       mgl64.Vec3{0, 3, 4},
			radius:   1,
			expected: mgl64.Vec3{0, 2.4, 3.2},
		},
		{
			name:     "zero radius degenerates to locked",
			cx:       mgl64.Vec3{1, -2, 3},
			radius:   0,
			expected: mgl64.Vec3{1, -2, 3},
		},
		{
			name:     "zero-length error has no direction to clip",
			cx:       mgl64.Vec3{},
			radius:   0,
			expected: mgl64.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphereLimitedPositionError(tt.cx, tt.radius)
			if got.Sub(tt.expected).Len() > 1e-12 {
				t.Errorf("SphereLimitedPositionError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSphereLimitedPositionErrorExcess(t *testing.T) {
	// |cx| = radius + d in an arbitrary direction leaves exactly d,
	// parallel to cx
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		dir := randomUnitAxis(r)
		radius := 0.1 + 5*r.Float64()
		d := 0.01 + 3*r.Float64()
		got := SphereLimitedPositionError(dir.Mul(radius+d), radius)
		if !scalar.EqualWithinAbs(got.Len(), d, 1e-9) {
			t.Fatalf("|result| = %v, want %v", got.Len(), d)
		}
		if !scalar.EqualWithinAbs(got.Dot(dir), d, 1e-9) {
			t.Fatalf("result %v not parallel to %v", got, dir)
		}
	}
}

func TestCylinderLimitedPositionError(t *testing.T) {
	axisX := mgl64.Vec3{1, 0, 0}
	tests := []struct {
		name       string
		cx         mgl64.Vec3
		limit      float64
		axisMotion joint.MotionType
		expected   mgl64.Vec3
	}{
		{
			name:       "free axis drops the axial part, plane clipped",
			cx:         mgl64.Vec3{5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionFree,
			expected:   mgl64.Vec3{0, 2.4, 3.2},
		},
		{
			name:       "locked axis keeps the axial part in full",
			cx:         mgl64.Vec3{5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionLocked,
			expected:   mgl64.Vec3{5, 2.4, 3.2},
		},
		{
			name:       "inside the cylinder only the axial part remains",
			cx:         mgl64.Vec3{5, 0.3, 0.4},
			limit:      1,
			axisMotion: joint.MotionLocked,
			expected:   mgl64.Vec3{5, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CylinderLimitedPositionError(tt.cx, axisX, tt.limit, tt.axisMotion)
			if got.Sub(tt.expected).Len() > 1e-12 {
				t.Errorf("CylinderLimitedPositionError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineLimitedPositionError(t *testing.T) {
	axisX := mgl64.Vec3{1, 0, 0}
	tests := []struct {
		name       string
		cx         mgl64.Vec3
		limit      float64
		axisMotion joint.MotionType
		expected   mgl64.Vec3
	}{
		{
			name:       "free axis absorbs its component",
			cx:         mgl64.Vec3{5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionFree,
			expected:   mgl64.Vec3{0, 3, 4},
		},
		{
			name:       "limited within the limit absorbs its component",
			cx:         mgl64.Vec3{0.5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionLimited,
			expected:   mgl64.Vec3{0, 3, 4},
		},
		{
			name:       "limited beyond the limit keeps the excess",
			cx:         mgl64.Vec3{5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionLimited,
			expected:   mgl64.Vec3{4, 3, 4},
		},
		{
			name:       "limited beyond the limit on the negative side",
			cx:         mgl64.Vec3{-5, 3, 4},
			limit:      1,
			axisMotion: joint.MotionLimited,
			expected:   mgl64.Vec3{-4, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineLimitedPositionError(tt.cx, axisX, tt.limit, tt.axisMotion)
			if got.Sub(tt.expected).Len() > 1e-12 {
				t.Errorf("LineLimitedPositionError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLimitedPositionError(t *testing.T) {
	locked := joint.MotionLocked
	limited := joint.MotionLimited
	free := joint.MotionFree
	ident := mgl64.QuatIdent()

	tests := []struct {
		name     string
		settings joint.Settings
		r0       mgl64.Quat
		cx       mgl64.Vec3
		expected mgl64.Vec3
	}{
		{
			name:     "all locked is a point constraint",
			settings: joint.Settings{LinearMotionTypes: [3]joint.MotionType{locked, locked, locked}},
			r0:       ident,
			cx:       mgl64.Vec3{1, -2, 3},
			expected: mgl64.Vec3{1, -2, 3},
		},
		{
			name: "all limited with zero limit degenerates to locked",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, limited, limited},
			},
			r0:       ident,
			cx:       mgl64.Vec3{1, -2, 3},
			expected: mgl64.Vec3{1, -2, 3},
		},
		{
			name: "all limited inside the sphere",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, limited, limited},
				LinearLimit:       10,
			},
			r0:       ident,
			cx:       mgl64.Vec3{1, -2, 3},
			expected: mgl64.Vec3{},
		},
		{
			name: "soft limits count as free for projection",
			settings: joint.Settings{
				LinearMotionTypes:       [3]joint.MotionType{limited, limited, limited},
				LinearLimit:             0,
				SoftLinearLimitsEnabled: true,
			},
			r0:       ident,
			cx:       mgl64.Vec3{1, -2, 3},
			expected: mgl64.Vec3{},
		},
		{
			name: "cylinder about the free X axis",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{free, limited, limited},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{5, 3, 4},
			expected: mgl64.Vec3{0, 2.4, 3.2},
		},
		{
			name: "cylinder about the locked X axis",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{locked, limited, limited},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{5, 3, 4},
			expected: mgl64.Vec3{5, 2.4, 3.2},
		},
		{
			name: "cylinder about the Y axis",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, free, limited},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{3, 5, 4},
			expected: mgl64.Vec3{2.4, 0, 3.2},
		},
		{
			name: "cylinder about the Z axis",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, limited, free},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{3, 4, 5},
			expected: mgl64.Vec3{2.4, 3.2, 0},
		},
		{
			name: "prismatic line limit",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, free, free},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{5, 3, 4},
			expected: mgl64.Vec3{4, 0, 0},
		},
		{
			name: "line limit within the limit",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, free, free},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{0.5, 3, 4},
			expected: mgl64.Vec3{},
		},
		{
			name: "line limit with a locked axis",
			settings: joint.Settings{
				LinearMotionTypes: [3]joint.MotionType{limited, locked, free},
				LinearLimit:       1,
			},
			r0:       ident,
			cx:       mgl64.Vec3{-5, 3, 4},
			expected: mgl64.Vec3{-4, 3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LimitedPositionError(tt.settings, tt.r0, tt.cx)
			if got.Sub(tt.expected).Len() > 1e-12 {
				t.Errorf("LimitedPositionError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLimitedPositionErrorRotatedFrame(t *testing.T) {
	// the limit shape follows the parent frame, not the world axes
	r0 := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	settings := joint.Settings{
		LinearMotionTypes: [3]joint.MotionType{joint.MotionLimited, joint.MotionFree, joint.MotionFree},
		LinearLimit:       0,
	}
	// the frame's X axis points along world Y, so only the world Y
	// component survives
	got := LimitedPositionError(settings, r0, mgl64.Vec3{1, 2, 3})
	if got.Sub(mgl64.Vec3{0, 2, 0}).Len() > 1e-9 {
		t.Errorf("LimitedPositionError() = %v, want (0, 2, 0)", got)
	}
}

func TestLimitedPositionErrorFreeAxisNeverViolates(t *testing.T) {
	// whatever the shape, the component along a free axis is absorbed
	r := rand.New(rand.NewSource(8))
	motions := [][3]joint.MotionType{
		{joint.MotionFree, joint.MotionLimited, joint.MotionLimited},
		{joint.MotionFree, joint.MotionLocked, joint.MotionLimited},
		{joint.MotionFree, joint.MotionFree, joint.MotionLimited},
		{joint.MotionFree, joint.MotionFree, joint.MotionFree},
	}
	for i := 0; i < 200; i++ {
		r0 := randomUnitQuat(r)
		cx := mgl64.Vec3{10 * r.NormFloat64(), 10 * r.NormFloat64(), 10 * r.NormFloat64()}
		for _, motion := range motions {
			settings := joint.Settings{LinearMotionTypes: motion, LinearLimit: r.Float64()}
			got := LimitedPositionError(settings, r0, cx)
			freeAxis := r0.Rotate(mgl64.Vec3{1, 0, 0})
			if math.Abs(got.Dot(freeAxis)) > 1e-9 {
				t.Fatalf("free-axis violation %v for motion %v, cx %v",
					got.Dot(freeAxis), motion, cx)
			}
		}
	}
}
