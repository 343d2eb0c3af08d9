package notification

import (
	"fmt"
	"strings"
)

func StatusChangedMessage(referenceNumber, newStatus string) string {
	return fmt.Sprintf("ticket #%s status changed to %s", referenceNumber, strings.ToUpper(newStatus))
}

func FieldsEditedMessage(referenceNumber string) string {
	return fmt.Sprintf("ticket #%s details were updated by the administrator", referenceNumber)
}

func CommentAddedMessage(referenceNumber string) string {
	return fmt.Sprintf("the administrator commented on ticket #%s", referenceNumber)
}
