package dashboard

// LoadState represents the fetch lifecycle of the dashboard.
//
// State transitions:
//
//	Idle ──> Loading ──> Loaded
//	            │ ▲
//	            ▼ │ (retry / window change)
//	          Failed
//
// Bucket changes never touch the load state; they are a pure read-side
// filter over the currently loaded collection.
type LoadState int

const (
	// Idle means no fetch was requested yet.
	Idle LoadState = iota

	// Loading means a fetch is in flight.
	Loading

	// Loaded means the last fetch succeeded and its collection is current.
	Loaded

	// Failed means the last fetch failed; the error message is exposed and
	// a manual retry re-enters Loading.
	Failed
)

// String returns the human-readable name of the load state.
// Implements the fmt.Stringer interface.
func (s LoadState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
