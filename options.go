package intrusive

// Options toggles runtime checks on a Translator. The zero value performs no
// per-call checks.
type Options struct {
	// CheckAlignment makes ContainerOf verify that the recovered container
	// address satisfies the container's alignment, panicking with
	// ErrMisaligned otherwise. It catches some, not all, field pointers that
	// do not belong to a container.
	CheckAlignment bool
}
