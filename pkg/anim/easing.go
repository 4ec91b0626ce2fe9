package anim

// Easing maps normalized time in [0, 1] to animation progress.
type Easing struct {
	transform func(float64) float64
}

// CustomEasing wraps f as an Easing.
func CustomEasing(f func(t float64) float64) Easing {
	return Easing{transform: f}
}

// TransformTime applies the easing to t.
func (e Easing) TransformTime(t float64) float64 {
	if e.transform == nil {
		return t
	}
	return e.transform(t)
}

var (
	// Linear is the identity easing.
	Linear = CustomEasing(func(t float64) float64 { return t })

	// CubicInOut accelerates then decelerates: 3t² - 2t³.
	CubicInOut = CustomEasing(func(t float64) float64 {
		t2 := t * t
		return 3*t2 - 2*t2*t
	})
)

// Interpolation blends two values of T by progress t.
type Interpolation[T any] interface {
	Interpolate(t float64, x, y T) T
}

// InterpolationFunc adapts a function to Interpolation.
type InterpolationFunc[T any] func(t float64, x, y T) T

// Interpolate implements Interpolation.
func (f InterpolationFunc[T]) Interpolate(t float64, x, y T) T {
	return f(t, x, y)
}

// Float64 interpolates linearly between two floats.
type Float64 struct{}

// Interpolate implements Interpolation.
func (Float64) Interpolate(t float64, x, y float64) float64 {
	return x + t*(y-x)
}
