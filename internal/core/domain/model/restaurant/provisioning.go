package restaurant

// ProvisioningState tells how much of a restaurant exists across the two stores.
type ProvisioningState int

const (
	// Failed means nothing is left behind: the document write failed and the
	// relational row was compensated away.
	Failed ProvisioningState = iota
	// RelationalOnly means the row exists without its location document. It is the
	// result of creating a restaurant without a location, or of a failed compensation.
	RelationalOnly
	// Provisioned means both halves exist.
	Provisioned
)

func (s ProvisioningState) String() string {
	switch s {
	case Provisioned:
		return "PROVISIONED"
	case RelationalOnly:
		return "RELATIONAL_ONLY"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
