// Package notify shows transient toast messages.
//
// A Notifier mounts each message on a Renderer and retracts it on its own
// after a fixed duration. Renderers decide what "visible" means: Board keeps
// an in-memory stack of toasts for hosts that draw them, LogRenderer writes
// them to a zap logger.
package notify
