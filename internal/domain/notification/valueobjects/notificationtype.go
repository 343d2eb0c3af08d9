package valueobjects

// NotificationKind names the event a notification announces.
type NotificationKind string

const (
	KindCommentAdded  NotificationKind = "CommentAdded"
	KindStatusChanged NotificationKind = "StatusChanged"
	KindFieldsEdited  NotificationKind = "FieldsEdited"
)

var validNotificationKinds = map[NotificationKind]bool{
	KindCommentAdded:  true,
	KindStatusChanged: true,
	KindFieldsEdited:  true,
}

func (k NotificationKind) String() string {
	return string(k)
}

func (k NotificationKind) IsValid() bool {
	return validNotificationKinds[k]
}
