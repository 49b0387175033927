// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/mixel34p/Yo-kaidle-sub001/models"

// ReconcileChoice is the outcome of the reconciliation dialog.
type ReconcileChoice int

const (
	// ChoiceLater postpones the decision; nothing is synced.
	ChoiceLater ReconcileChoice = iota
	// ChoiceLocal keeps the device state and uploads it.
	ChoiceLocal
	// ChoiceCloud replaces the device state with the cloud record.
	ChoiceCloud
)

func (c ReconcileChoice) String() string {
	switch c {
	case ChoiceLocal:
		return "local"
	case ChoiceCloud:
		return "cloud"
	default:
		return "later"
	}
}

// Direction maps the choice to a manual sync direction. ok is false for
// ChoiceLater.
func (c ReconcileChoice) Direction() (dir models.SyncDirection, ok bool) {
	switch c {
	case ChoiceLocal:
		return models.SyncDirectionLocal, true
	case ChoiceCloud:
		return models.SyncDirectionCloud, true
	}
	return "", false
}

// ParseChoice parses the non-interactive --prefer value.
func ParseChoice(s string) (ReconcileChoice, bool) {
	switch s {
	case "local":
		return ChoiceLocal, true
	case "cloud":
		return ChoiceCloud, true
	case "later", "":
		return ChoiceLater, true
	}
	return ChoiceLater, false
}
