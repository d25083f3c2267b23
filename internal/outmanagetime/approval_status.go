package outmanagetime

// ApprovedCode is the approval_status_code value that counts toward usage.
const ApprovedCode = "APPROVED"

// ApprovalStatus is the typed reading of approval_status_code. The raw code
// is kept next to it so unknown values still round-trip.
type ApprovalStatus int

const (
	StatusUnknown ApprovalStatus = iota
	StatusRequested
	StatusPending
	StatusApproved
	StatusRejected
	StatusCancelled
)

// ParseApprovalStatus matches codes exactly, the same way the summary query
// compares approval_status_code.
func ParseApprovalStatus(code string) ApprovalStatus {
	switch code {
	case "REQUESTED":
		return StatusRequested
	case "PENDING":
		return StatusPending
	case ApprovedCode:
		return StatusApproved
	case "REJECTED":
		return StatusRejected
	case "CANCELLED", "CANCELED":
		return StatusCancelled
	}
	return StatusUnknown
}

func (s ApprovalStatus) String() string {
	switch s {
	case StatusRequested:
		return "requested"
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// CountsTowardUsage reports whether entries in this status reduce the balance.
func (s ApprovalStatus) CountsTowardUsage() bool {
	return s == StatusApproved
}
