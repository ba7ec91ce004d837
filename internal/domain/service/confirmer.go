package service

import "context"

// Confirmer asks the person at the keyboard to approve a destructive action.
type Confirmer interface {
	// Confirm returns true when the prompt was accepted.
	Confirm(ctx context.Context, prompt string) (bool, error)
}
