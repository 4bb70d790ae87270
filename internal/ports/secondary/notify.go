package secondary

// NotifyKind classifies a user-facing notification.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
	NotifyInfo    NotifyKind = "info"
	NotifyWarning NotifyKind = "warning"
)

// Notifier is the toast sink: the only user-visible failure channel of the
// core. Fire-and-forget, no return value consumed.
type Notifier interface {
	Notify(message string, kind NotifyKind)
}

// Confirmer gates destructive operations behind an explicit confirmation.
type Confirmer interface {
	Confirm(message string) bool
}
