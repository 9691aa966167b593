//go:build !linux

package notify

// noopNotifier stands in where there is no notification daemon to talk
// to. Track changes simply go unannounced.
type noopNotifier struct{}

// New returns a notifier that silently drops everything on platforms
// without the D-Bus notification service.
func New() (Notifier, error) {
	return &noopNotifier{}, nil
}

func (n *noopNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (n *noopNotifier) Close(_ uint32) error {
	return nil
}
