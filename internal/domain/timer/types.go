package timer

// Kind tags which window fields of a Timer are meaningful. It never changes
// after creation.
type Kind string

const (
	KindFixed     Kind = "fixed"
	KindEvergreen Kind = "evergreen"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFixed, KindEvergreen:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Status is computed on read, never stored.
type Status string

const (
	StatusInactive  Status = "inactive"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	// StatusInvalid marks a malformed window (missing instants, end <= start).
	// Distinct from StatusExpired: an invalid timer was never showable.
	StatusInvalid Status = "invalid"
	// StatusUnknown is the status of an absent record.
	StatusUnknown Status = "unknown"
)

func (s Status) String() string {
	return string(s)
}

// Scope restricts which storefront contexts a timer applies to.
type Scope string

const (
	ScopeAll         Scope = "all"
	ScopeProducts    Scope = "products"
	ScopeCollections Scope = "collections"
)

func NewScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeProducts, ScopeCollections:
		return Scope(s), nil
	default:
		return "", ErrInvalidScope
	}
}

func (s Scope) String() string {
	return string(s)
}
