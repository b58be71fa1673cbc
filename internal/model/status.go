package model

import (
	"errors"
	"fmt"
)

// ItemStatus is the review state of a fetched item. The zero value is not a
// valid status so an unset field never passes for Pending.
type ItemStatus uint8

const (
	StatusPending ItemStatus = iota + 1
	StatusProcessing
	StatusApproved
	StatusPublished
	StatusRejected
	// StatusAbsorbed marks a secondary item consumed by a combine-mode
	// generation. It never produced a post of its own.
	StatusAbsorbed
)

var (
	ErrUnknownStatus     = errors.New("unknown item status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func (s ItemStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusApproved:
		return "approved"
	case StatusPublished:
		return "published"
	case StatusRejected:
		return "rejected"
	case StatusAbsorbed:
		return "absorbed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Terminal reports whether no automated transition leaves s.
func (s ItemStatus) Terminal() bool {
	return s == StatusPublished || s == StatusAbsorbed
}

func (s ItemStatus) Valid() bool {
	return s >= StatusPending && s <= StatusAbsorbed
}

func ParseItemStatus(raw string) (ItemStatus, error) {
	switch raw {
	case "pending":
		return StatusPending, nil
	case "processing":
		return StatusProcessing, nil
	case "approved":
		return StatusApproved, nil
	case "published":
		return StatusPublished, nil
	case "rejected":
		return StatusRejected, nil
	case "absorbed":
		return StatusAbsorbed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

func (s ItemStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *ItemStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseItemStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Event drives an item from one status to the next.
type Event uint8

const (
	EventGenerationStarted Event = iota + 1
	EventGenerationSucceeded
	EventGenerationFailed
	EventPublished
	EventRejected
	EventReapproved
	EventAbsorbed
)

func (e Event) String() string {
	switch e {
	case EventGenerationStarted:
		return "generation_started"
	case EventGenerationSucceeded:
		return "generation_succeeded"
	case EventGenerationFailed:
		return "generation_failed"
	case EventPublished:
		return "published"
	case EventRejected:
		return "rejected"
	case EventReapproved:
		return "reapproved"
	case EventAbsorbed:
		return "absorbed"
	default:
		return fmt.Sprintf("event(%d)", uint8(e))
	}
}

// Transition returns the status reached from s on e, or ErrInvalidTransition.
//
//	pending    --generation_started-->   processing
//	processing --generation_succeeded--> approved
//	processing --generation_failed-->    pending
//	processing --absorbed-->             absorbed
//	approved   --published-->            published
//	approved   --rejected-->             rejected
//	rejected   --reapproved-->           approved
func Transition(s ItemStatus, e Event) (ItemStatus, error) {
	if s.Terminal() {
		return s, fmt.Errorf("%w: %s is final", ErrInvalidTransition, s)
	}
	switch s {
	case StatusPending:
		if e == EventGenerationStarted {
			return StatusProcessing, nil
		}
	case StatusProcessing:
		switch e {
		case EventGenerationSucceeded:
			return StatusApproved, nil
		case EventGenerationFailed:
			return StatusPending, nil
		case EventAbsorbed:
			return StatusAbsorbed, nil
		}
	case StatusApproved:
		switch e {
		case EventPublished:
			return StatusPublished, nil
		case EventRejected:
			return StatusRejected, nil
		}
	case StatusRejected:
		if e == EventReapproved {
			return StatusApproved, nil
		}
	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}
