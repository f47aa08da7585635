package layout

// Reading is one sensor's state at render time. History, when present, is
// ordered oldest-first and bounded by the supplier.
type Reading struct {
	Value   float64
	Unit    string
	History []float64
}

// SensorSnapshot maps sensor identifiers to their current readings. The
// host application supplies one per tick; the core only reads it.
type SensorSnapshot map[string]Reading

// Reading returns the reading bound to id, or a MissingSensorError.
func (s SensorSnapshot) Reading(id string) (Reading, error) {
	r, ok := s[id]
	if !ok {
		return Reading{}, &MissingSensorError{Sensor: id}
	}
	return r, nil
}

// AssetLoader resolves path-referenced font and image assets to raw bytes.
// It is supplied by the host application; the core never touches the
// filesystem on its own.
type AssetLoader func(path string) ([]byte, error)
