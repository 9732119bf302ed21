package usecase

const (
	EventMessageReceived          = "message_received"
	EventApplicationCreated       = "application_created"
	EventApplicationStatusChanged = "application_status_changed"
)

// Notifier pushes an event to every live connection of a user. Delivery is
// best effort and must not block the caller.
type Notifier interface {
	NotifyUser(userID int64, eventType string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) NotifyUser(int64, string, any) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
