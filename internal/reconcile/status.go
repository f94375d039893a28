package reconcile

//go:generate go tool stringer -type=Status -trimprefix=Status -output=status_string.go

// Status is the classification of one status attribute in a write response.
type Status int

const (
	// StatusUnchanged is the empty wire status.
	StatusUnchanged Status = iota
	// StatusAccepted covers "success" and "updated".
	StatusAccepted
	// StatusFailed is "error"; the element must carry a message.
	StatusFailed
)

// ParseStatus maps a wire status value. ok is false for values outside the
// vocabulary.
func ParseStatus(s string) (status Status, ok bool) {
	switch s {
	case "":
		return StatusUnchanged, true
	case "success", "updated":
		return StatusAccepted, true
	case "error":
		return StatusFailed, true
	default:
		return 0, false
	}
}
