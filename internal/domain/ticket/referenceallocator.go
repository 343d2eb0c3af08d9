package ticket

import "fmt"

// ReferenceWidth is the length of an auto-allocated reference number
// and of any admin-supplied override.
const ReferenceWidth = 4

// ReferenceAllocator derives a ticket's public reference number.
type ReferenceAllocator interface {
	Allocate(ticketID uint) (string, error)
}

// SequentialReferenceAllocator zero-pads the ticket id, so uniqueness follows
// from the id itself. Ids above 9999 produce longer references rather than
// wrapping around.
type SequentialReferenceAllocator struct{}

func NewSequentialReferenceAllocator() SequentialReferenceAllocator {
	return SequentialReferenceAllocator{}
}

func (SequentialReferenceAllocator) Allocate(ticketID uint) (string, error) {
	if ticketID == 0 {
		return "", fmt.Errorf("cannot allocate reference for unsaved ticket")
	}
	return fmt.Sprintf("%0*d", ReferenceWidth, ticketID), nil
}
