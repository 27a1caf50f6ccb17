package ui

// Action identifies a HUD button press for the app to act on.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionStep
	ActionClear
	ActionRandomize
	ActionSlower
	ActionFaster
)

// Stats carries the readout values the HUD displays each frame.
type Stats struct {
	Generation int
	LiveCells  int
	Occupancy  float64
	Growth     int
	Running    bool
	TPS        int
}
