package notification

import "context"

type Repository interface {
	// Create inserts a single notification
	Create(ctx context.Context, n *Notification) error

	// CreateBatch inserts notifications in one round trip
	CreateBatch(ctx context.Context, notifications []*Notification) error

	// GetByRecipient retrieves a page of a profile's notifications,
	// newest first
	GetByRecipient(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) ([]*Notification, int, error)

	// GetUnreadCount counts a profile's unread notifications
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)

	// MarkAsRead flips the read flag on the given notifications
	MarkAsRead(ctx context.Context, notificationIDs []string, recipientID string) error

	// MarkAllAsRead flips the read flag on all of a profile's notifications
	MarkAllAsRead(ctx context.Context, recipientID string) error
}
