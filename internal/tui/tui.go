// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the reconciliation dialog shown when the local game
// state and the cloud record may disagree.
package tui

import (
	"context"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

type TUI struct {
	input  io.Reader
	output io.Writer

	// copy writes to the system clipboard.
	copy func(string) error

	logger *logger.Logger
}

type Option func(*TUI)

// WithIO replaces the terminal; used to run the dialog headless.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUI) {
		t.input = in
		t.output = out
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copyFn func(string) error) Option {
	return func(t *TUI) {
		t.copy = copyFn
	}
}

func New(logger *logger.Logger, opts ...Option) *TUI {
	t := &TUI{copy: clipboard.WriteAll, logger: logger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reconcile shows the dialog for summary and returns the user's decision.
// Quitting the dialog in any way yields ChoiceLater.
func (t *TUI) Reconcile(ctx context.Context, summary Summary) (ReconcileChoice, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.input != nil || t.output != nil {
		opts = append(opts, tea.WithInput(t.input), tea.WithOutput(t.output))
	} else {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newReconcileModel(summary, t.copy), opts...).Run()
	if err != nil {
		return ChoiceLater, err
	}

	result, ok := final.(reconcileModel)
	if !ok {
		return ChoiceLater, tea.ErrProgramKilled
	}

	t.logger.Info().Str("choice", result.choice.String()).Msg("reconciliation decided")
	return result.choice, nil
}
