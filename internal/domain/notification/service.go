package notification

import "context"

// Service defines notification queuing and delivery. Queuing is
// fire-and-forget: callers never roll back on notification failure.
type Service interface {
	// QueueNotification queues a notification for async persistence and
	// SSE push
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	// GetNotifications retrieves a page of the profile's notifications
	GetNotifications(ctx context.Context, profileID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)

	// GetUnreadCount counts unread notifications
	GetUnreadCount(ctx context.Context, profileID string) (int, error)

	// MarkAsRead flips the read flag on selected notifications
	MarkAsRead(ctx context.Context, profileID string, req MarkAsReadRequest) error

	// MarkAllAsRead flips the read flag on everything
	MarkAllAsRead(ctx context.Context, profileID string) error

	// Subscribe opens an SSE subscription for the profile
	Subscribe(ctx context.Context, profileID string) (<-chan SSEEvent, func())

	// Stop drains the queue and stops the background workers
	Stop()
}
