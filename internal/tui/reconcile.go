// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type reconcileModel struct {
	summary Summary
	help    help.Model
	copy    func(string) error
	now     func() time.Time

	choice ReconcileChoice
	status string
	err    error
	done   bool
}

func newReconcileModel(summary Summary, copyFn func(string) error) reconcileModel {
	return reconcileModel{
		summary: summary,
		help:    help.New(),
		copy:    copyFn,
		now:     time.Now,
	}
}

func (m reconcileModel) Init() tea.Cmd { return nil }

func (m reconcileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.local):
			return m.decide(ChoiceLocal)
		case key.Matches(msg, keys.cloud):
			if !m.summary.Cloud.Exists {
				m.err = nil
				m.status = "There is no cloud save to restore"
				return m, nil
			}
			return m.decide(ChoiceCloud)
		case key.Matches(msg, keys.later):
			return m.decide(ChoiceLater)
		case key.Matches(msg, keys.copy):
			return m.copySessionID(), nil
		case key.Matches(msg, keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m reconcileModel) decide(choice ReconcileChoice) (tea.Model, tea.Cmd) {
	m.choice = choice
	m.done = true
	return m, tea.Quit
}

func (m reconcileModel) copySessionID() reconcileModel {
	m.status, m.err = "", nil
	if m.summary.SessionID == "" {
		m.status = "This device has no session id yet"
		return m
	}
	if err := m.copy(m.summary.SessionID); err != nil {
		m.err = fmt.Errorf("clipboard: %w", err)
		return m
	}
	m.status = "Session id copied"
	return m
}

func (m reconcileModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headline())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(m.localColumn()),
		" ",
		columnStyle.Render(m.cloudColumn()),
	))
	b.WriteString("\n")
	b.WriteString(m.diffLines())

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(keys)))

	return appStyle.Render(renderPage(titleStyle.Render("Cloud save"), b.String()))
}

func (m reconcileModel) headline() string {
	if m.summary.PreviewErr != nil {
		return errorStyle.Render(describePreviewError(m.summary.PreviewErr))
	}

	switch m.summary.Check.Reason {
	case models.ReasonDifferentSession:
		return warnStyle.Render("The cloud save was written by another device.")
	case models.ReasonNeverSynced:
		if m.summary.Cloud.Exists {
			return warnStyle.Render("A cloud save exists for this account. This device has never synced.")
		}
	case models.ReasonCheckFailed:
		return warnStyle.Render("Could not compare with the cloud save.")
	}
	return "Choose which save to keep."
}

func (m reconcileModel) localColumn() string {
	local := m.summary.Local
	lines := []string{
		headingStyle.Render("This device"),
		fmt.Sprintf("entries: %d", len(local)),
		fmt.Sprintf("size:    %s", humanBytes(local.Size())),
		fmt.Sprintf("session: %s", fitText(valueOrDash(m.summary.SessionID), 20)),
	}
	return strings.Join(lines, "\n")
}

func (m reconcileModel) cloudColumn() string {
	cloud := m.summary.Cloud
	if !cloud.Exists {
		return strings.Join([]string{headingStyle.Render("Cloud"), "no save"}, "\n")
	}

	updated := "-"
	if cloud.UpdatedAt != nil {
		updated = fmt.Sprintf("%s ago", m.summary.CloudAge(m.now()))
	}
	lines := []string{
		headingStyle.Render("Cloud"),
		fmt.Sprintf("entries: %d", len(cloud.Data)),
		fmt.Sprintf("size:    %s", humanBytes(cloud.Data.Size())),
		fmt.Sprintf("updated: %s", updated),
	}
	return strings.Join(lines, "\n")
}

func (m reconcileModel) diffLines() string {
	if !m.summary.Cloud.Exists {
		return ""
	}

	d := m.summary.Diff()
	var b strings.Builder
	fmt.Fprintf(&b, "same: %d  different: %d  only here: %d  only in cloud: %d\n",
		d.Same, len(d.Differ), len(d.OnlyLocal), len(d.OnlyCloud))
	if len(d.Differ) > 0 {
		fmt.Fprintf(&b, "different: %s\n", strings.Join(d.Differ, ", "))
	}
	return b.String()
}
