package models

// All returns every model owned by the schema, in foreign-key dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ZoneModel{},
		&TicketModel{},
		&CommentModel{},
		&NotificationModel{},
	}
}
