package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000

	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldZone            = "zone_id"
	FieldReferenceNumber = "reference_number"
)

type Ticket struct {
	id                    uint
	referenceNumber       string
	title                 string
	description           string
	status                vo.TicketStatus
	creatorID             uint
	zoneID                *uint
	photoReference        *string
	rejectionReason       *string
	acknowledgedByCreator bool
	createdAt             time.Time
	updatedAt             time.Time

	events []events.DomainEvent
}

// NewTicket opens a ticket on behalf of a user. The reference number is
// stamped after the first save, once the id is known.
func NewTicket(
	creator authorization.Actor,
	title string,
	description string,
	zoneID *uint,
	photoReference *string,
) (*Ticket, error) {
	if creator.Role != authorization.RoleUser {
		return nil, errors.NewForbiddenError("only users can open tickets")
	}
	if creator.UserID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, errors.NewMissingFieldError(FieldTitle)
	}
	if description == "" {
		return nil, errors.NewMissingFieldError(FieldDescription)
	}
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:          title,
		description:    description,
		status:         vo.StatusOpen,
		creatorID:      creator.UserID,
		zoneID:         zoneID,
		photoReference: photoReference,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	referenceNumber string,
	title string,
	description string,
	status vo.TicketStatus,
	creatorID uint,
	zoneID *uint,
	photoReference *string,
	rejectionReason *string,
	acknowledgedByCreator bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:                    id,
		referenceNumber:       referenceNumber,
		title:                 title,
		description:           description,
		status:                status,
		creatorID:             creatorID,
		zoneID:                zoneID,
		photoReference:        photoReference,
		rejectionReason:       rejectionReason,
		acknowledgedByCreator: acknowledgedByCreator,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ReferenceNumber() string {
	return t.referenceNumber
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) ZoneID() *uint {
	if t.zoneID == nil {
		return nil
	}
	id := *t.zoneID
	return &id
}

func (t *Ticket) PhotoReference() *string {
	return t.photoReference
}

func (t *Ticket) RejectionReason() *string {
	return t.rejectionReason
}

func (t *Ticket) AcknowledgedByCreator() bool {
	return t.acknowledgedByCreator
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignReference stamps the allocated reference number. It can only happen once.
func (t *Ticket) AssignReference(allocator ReferenceAllocator) error {
	if t.referenceNumber != "" {
		return fmt.Errorf("ticket reference number is already set")
	}
	ref, err := allocator.Allocate(t.id)
	if err != nil {
		return err
	}
	t.referenceNumber = ref
	return nil
}

// AttachPhoto records the storage key of the photo uploaded with a new ticket.
func (t *Ticket) AttachPhoto(key string) error {
	if t.id != 0 {
		return fmt.Errorf("photo can only be attached before the ticket is saved")
	}
	if strings.TrimSpace(key) == "" {
		return nil
	}
	t.photoReference = &key
	return nil
}

// CanBeAccessedBy is the single read/comment predicate for tickets.
func (t *Ticket) CanBeAccessedBy(actor authorization.Actor) bool {
	return actor.CanAccessOwnedBy(t.creatorID)
}

// IsCreator reports whether actor opened this ticket.
func (t *Ticket) IsCreator(actor authorization.Actor) bool {
	return actor.UserID != 0 && actor.UserID == t.creatorID
}

// ChangeStatus applies an admin status change and keeps the rejection reason
// present exactly while the ticket is Rejected. It returns whether the status
// value changed; only then is a StatusChangedEvent recorded.
func (t *Ticket) ChangeStatus(actor authorization.Actor, newStatus vo.TicketStatus, rejectionReason *string) (bool, error) {
	if !actor.IsAdmin() {
		return false, errors.NewForbiddenError("only the administrator can change ticket status")
	}
	if !newStatus.IsValid() {
		return false, errors.NewInvalidStatusError(newStatus.String())
	}
	if !t.status.CanTransitionTo(newStatus) {
		return false, fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	now := biztime.NowUTC()
	oldStatus := t.status

	if newStatus.IsRejected() {
		switch {
		case rejectionReason != nil:
			reason := *rejectionReason
			t.rejectionReason = &reason
		case t.rejectionReason == nil:
			empty := ""
			t.rejectionReason = &empty
		}
	} else {
		t.rejectionReason = nil
	}

	if oldStatus == newStatus {
		t.updatedAt = now
		return false, nil
	}

	t.status = newStatus
	t.updatedAt = now
	t.recordEvent(NewStatusChangedEvent(t, oldStatus, actor.UserID, now))
	return true, nil
}

// FieldEdits carries an admin's partial edit. Nil pointers leave a field untouched.
// ZoneSet distinguishes "detach the zone" (ZoneSet with nil ZoneID) from "leave it".
type FieldEdits struct {
	Title           *string
	Description     *string
	ZoneSet         bool
	ZoneID          *uint
	ReferenceNumber *string
}

// EditFields applies an admin edit and returns the names of fields whose value
// actually changed. A FieldsEditedEvent is recorded only when that list is non-empty.
func (t *Ticket) EditFields(actor authorization.Actor, edits FieldEdits) ([]string, error) {
	if !actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can edit tickets")
	}

	title := t.title
	description := t.description
	if edits.Title != nil {
		title = strings.TrimSpace(*edits.Title)
		if title == "" {
			return nil, errors.NewMissingFieldError(FieldTitle)
		}
	}
	if edits.Description != nil {
		description = strings.TrimSpace(*edits.Description)
		if description == "" {
			return nil, errors.NewMissingFieldError(FieldDescription)
		}
	}
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	var changed []string
	if title != t.title {
		t.title = title
		changed = append(changed, FieldTitle)
	}
	if description != t.description {
		t.description = description
		changed = append(changed, FieldDescription)
	}
	if edits.ZoneSet && !sameZone(t.zoneID, edits.ZoneID) {
		if edits.ZoneID == nil {
			t.zoneID = nil
		} else {
			id := *edits.ZoneID
			t.zoneID = &id
		}
		changed = append(changed, FieldZone)
	}
	if edits.ReferenceNumber != nil {
		ref := *edits.ReferenceNumber
		// Overrides of any other length are ignored; duplicates are accepted.
		if utf8.RuneCountInString(ref) == ReferenceWidth && ref != t.referenceNumber {
			t.referenceNumber = ref
			changed = append(changed, FieldReferenceNumber)
		}
	}

	if len(changed) == 0 {
		return nil, nil
	}

	now := biztime.NowUTC()
	t.updatedAt = now
	t.recordEvent(NewFieldsEditedEvent(t, changed, actor.UserID, now))
	return changed, nil
}

// Acknowledge records the creator's acceptance of a closed ticket. It is a
// no-op unless the ticket is Resolved or Rejected and not yet acknowledged.
func (t *Ticket) Acknowledge(actor authorization.Actor) (bool, error) {
	if !t.IsCreator(actor) {
		return false, errors.NewForbiddenError("only the ticket creator can acknowledge closure")
	}
	if !t.status.IsClosed() || t.acknowledgedByCreator {
		return false, nil
	}
	t.acknowledgedByCreator = true
	t.updatedAt = biztime.NowUTC()
	return true, nil
}

// AddComment appends a comment authored by actor. Comments by the administrator
// are announced to the creator; comments by the creator are not.
func (t *Ticket) AddComment(actor authorization.Actor, authorAccessCode, text string) (*Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.NewEmptyCommentError(text)
	}
	if !t.CanBeAccessedBy(actor) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comment, err := NewComment(t.id, actor.UserID, authorAccessCode, trimmed)
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		t.recordEvent(NewCommentAddedEvent(t, actor.UserID, comment.CreatedAt()))
	}
	return comment, nil
}

// PullEvents returns and clears the events recorded since the last pull.
func (t *Ticket) PullEvents() []events.DomainEvent {
	out := t.events
	t.events = nil
	return out
}

func (t *Ticket) recordEvent(e events.DomainEvent) {
	t.events = append(t.events, e)
}

func validateLengths(title, description string) error {
	if utf8.RuneCountInString(title) > maxTitleLength {
		return errors.NewValidationError(
			fmt.Sprintf("title exceeds maximum length of %d characters", maxTitleLength), title)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return errors.NewValidationError(
			fmt.Sprintf("description exceeds maximum length of %d characters", maxDescriptionLength))
	}
	return nil
}

func sameZone(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
