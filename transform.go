package onroad

import "golang.org/x/image/math/f64"

// Transform is the 3x3 linear map from car space to homogeneous surface
// coordinates, stored in row-major order:
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
//
// It combines camera intrinsics, calibration and the installation offset.
// The renderer treats it as opaque and receives a fresh one every frame.
type Transform f64.Mat3

// IdentityTransform returns the identity map.
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Apply multiplies the transform by the column vector v.
func (t Transform) Apply(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		t[0]*v[0] + t[1]*v[1] + t[2]*v[2],
		t[3]*v[0] + t[4]*v[1] + t[5]*v[2],
		t[6]*v[0] + t[7]*v[1] + t[8]*v[2],
	}
}

// Multiply returns t * other, i.e. other is applied first.
// Hosts use it to compose intrinsics with a calibration rotation.
func (t Transform) Multiply(other Transform) Transform {
	var out Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = t[r*3]*other[c] + t[r*3+1]*other[3+c] + t[r*3+2]*other[6+c]
		}
	}
	return out
}

// IsIdentity reports whether t is exactly the identity map.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
