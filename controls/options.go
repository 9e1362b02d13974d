package controls

// Option is a functional option for configuring OrbitControls.
type Option func(*OrbitControls)

// WithDamping enables or disables inertia.
func WithDamping(enabled bool) Option {
	return func(oc *OrbitControls) {
		oc.EnableDamping = enabled
	}
}

// WithDampingFactor sets the fraction of the pending motion applied per
// Update when damping is enabled.
func WithDampingFactor(factor float32) Option {
	return func(oc *OrbitControls) {
		oc.DampingFactor = factor
	}
}

// WithRotateSpeed sets the drag-to-rotation multiplier.
func WithRotateSpeed(speed float32) Option {
	return func(oc *OrbitControls) {
		oc.RotateSpeed = speed
	}
}

// WithZoomSpeed sets the dolly multiplier; each wheel step scales the
// distance by 0.95^speed.
func WithZoomSpeed(speed float32) Option {
	return func(oc *OrbitControls) {
		oc.ZoomSpeed = speed
	}
}

// WithPanSpeed sets the drag-to-pan multiplier.
func WithPanSpeed(speed float32) Option {
	return func(oc *OrbitControls) {
		oc.PanSpeed = speed
	}
}

// WithDistanceBounds limits how close and how far the camera may orbit.
func WithDistanceBounds(min, max float32) Option {
	return func(oc *OrbitControls) {
		oc.MinDistance = min
		oc.MaxDistance = max
	}
}

// WithPolarBounds limits the angle from the +Y axis, in radians.
func WithPolarBounds(min, max float32) Option {
	return func(oc *OrbitControls) {
		oc.MinPolarAngle = min
		oc.MaxPolarAngle = max
	}
}
