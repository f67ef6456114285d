package movement

// Mode is the locomotion variant that currently owns the integrator.
type Mode int

const (
	// ModeFree is walking and jumping. It never holds the velocity lock.
	ModeFree Mode = iota
	ModeDashing
	ModeLedge
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeDashing:
		return "dashing"
	case ModeLedge:
		return "ledge"
	default:
		return "unknown"
	}
}
