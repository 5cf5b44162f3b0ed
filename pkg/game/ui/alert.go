package ui

import "alphapoint/pkg/game/locale"

// Alert is a recoverable input problem shown to the player once.
type Alert struct {
	Message string
}

func (a *Alert) Error() string {
	return a.Message
}

// alertf returns an alert with the catalogue text for key
func alertf(key string, args ...any) *Alert {
	return &Alert{Message: locale.Getf(key, args...)}
}
