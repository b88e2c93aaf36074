package timer

import (
	"errors"
)

var (
	ErrInvalidKind       = errors.New("invalid timer kind")
	ErrInvalidScope      = errors.New("invalid targeting scope")
	ErrInvalidWindow     = errors.New("fixed window requires end after start")
	ErrMissingWindow     = errors.New("fixed timer requires start and end instants")
	ErrInvalidDuration   = errors.New("evergreen duration must be between 1 and 10080 minutes")
	ErrEmptyTargetingIDs = errors.New("scoped targeting requires at least one id")
	ErrEmptyShop         = errors.New("shop cannot be empty")
)

const (
	// MinDurationMinutes and MaxDurationMinutes bound an evergreen window
	// (one minute to seven days).
	MinDurationMinutes = 1
	MaxDurationMinutes = 10080
)

// Targeting restricts which product/collection contexts a timer applies to.
// The zero value means "everywhere" (permissive default for records that
// predate targeting).
type Targeting struct {
	scope Scope
	ids   []string
}

func NewTargeting(scope Scope, ids []string) (Targeting, error) {
	if scope == "" {
		scope = ScopeAll
	}
	if scope != ScopeAll && scope != ScopeProducts && scope != ScopeCollections {
		return Targeting{}, ErrInvalidScope
	}
	if scope == ScopeAll {
		return Targeting{scope: ScopeAll}, nil
	}
	cleaned := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}
	if len(cleaned) == 0 {
		return Targeting{}, ErrEmptyTargetingIDs
	}
	return Targeting{scope: scope, ids: cleaned}, nil
}

// TargetingEverywhere is the explicit "no restriction" value.
func TargetingEverywhere() Targeting {
	return Targeting{scope: ScopeAll}
}

// ReconstructTargeting hydrates stored targeting without re-validating id
// presence; an empty scope maps to ScopeAll.
func ReconstructTargeting(scope string, ids []string) Targeting {
	s := Scope(scope)
	if s != ScopeProducts && s != ScopeCollections {
		s = ScopeAll
	}
	return Targeting{scope: s, ids: ids}
}

func (t Targeting) Scope() Scope {
	if t.scope == "" {
		return ScopeAll
	}
	return t.scope
}

func (t Targeting) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

func (t Targeting) contains(id string) bool {
	for _, v := range t.ids {
		if v == id {
			return true
		}
	}
	return false
}
