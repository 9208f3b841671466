package ports

// Notifier shows short user-facing status messages. Cosmetic by contract:
// no caller depends on delivery.
type Notifier interface {
	Notify(msg string)
}
