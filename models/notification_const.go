package models

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationAlert   NotificationKind = "alert"
)

// RecipientAll addresses a notification to every role's inbox.
const RecipientAll = "ALL"
