package notify

import "context"

// Dispatcher prefers a live websocket and falls back to push notifications.
type Dispatcher struct {
	Hub    *Hub
	Push   *FCMSender
	Logger Logger
}

func (d *Dispatcher) Notify(ctx context.Context, userID string, ev Event) {
	if d.Hub != nil && d.Hub.Push(userID, ev) {
		return
	}
	if d.Push == nil {
		return
	}
	if err := d.Push.Send(ctx, userID, ev); err != nil {
		d.Logger.Errorf("notify %s: %v", userID, err)
	}
}
