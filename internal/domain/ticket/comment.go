package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

const maxCommentLength = 5000

// Comment is an append-only entry in a ticket's thread. The author's access
// code is copied at write time so the thread stays readable after the author
// is deleted.
type Comment struct {
	id               uint
	ticketID         uint
	authorID         uint
	authorAccessCode string
	text             string
	createdAt        time.Time
}

func NewComment(ticketID, authorID uint, authorAccessCode, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewEmptyCommentError(text)
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("comment exceeds maximum length of %d characters", maxCommentLength))
	}

	return &Comment{
		ticketID:         ticketID,
		authorID:         authorID,
		authorAccessCode: authorAccessCode,
		text:             text,
		createdAt:        biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	authorAccessCode string,
	text string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:               id,
		ticketID:         ticketID,
		authorID:         authorID,
		authorAccessCode: authorAccessCode,
		text:             text,
		createdAt:        createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorAccessCode() string {
	return c.authorAccessCode
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// FallbackAuthorLabel names an author whose user record no longer exists.
func (c *Comment) FallbackAuthorLabel() string {
	return "User " + c.authorAccessCode
}
