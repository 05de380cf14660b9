package bound

// Referencer is implemented by payloads that expose a shared, read-only view.
// Holders of the view must not write through it.
type Referencer[U any] interface {
	AsRef() U
}

// MutReferencer is implemented by pointers to payloads that expose an
// exclusive, writable view. Only one such view should be live at a time.
type MutReferencer[T any, U any] interface {
	*T
	AsMut() U
}

