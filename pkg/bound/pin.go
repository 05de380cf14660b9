package bound

// Pin is a view whose backing storage stays at the same address for as long
// as the pin is alive. Go never moves heap objects, so nothing is checked at
// run time; Pin only keeps the promise visible in signatures.
type Pin[P any] struct {
	view P
}

// NewPin pins view. The caller must not relocate or swap out the storage
// behind view while the returned pin, or any projection of it, is in use.
func NewPin[P any](view P) Pin[P] {
	return Pin[P]{view: view}
}

func (p Pin[P]) Get() P {
	return p.view
}
