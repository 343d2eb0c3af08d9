package zone

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

const maxNameLength = 100

// Zone is a flat location tag a ticket can point at.
type Zone struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewZone(name string) (*Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewMissingFieldError("name")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("zone name cannot exceed %d characters", maxNameLength), name)
	}
	return &Zone{name: name, createdAt: biztime.NowUTC()}, nil
}

func ReconstructZone(id uint, name string, createdAt time.Time) (*Zone, error) {
	if id == 0 {
		return nil, fmt.Errorf("zone ID cannot be zero")
	}
	return &Zone{id: id, name: name, createdAt: createdAt}, nil
}

func (z *Zone) ID() uint {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) CreatedAt() time.Time {
	return z.createdAt
}

func (z *Zone) SetID(id uint) error {
	if z.id != 0 {
		return fmt.Errorf("zone ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("zone ID cannot be zero")
	}
	z.id = id
	return nil
}
