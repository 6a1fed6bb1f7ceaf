// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Coldspell Labs

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coldspell/aircast/pkg/bridge"
	"github.com/coldspell/aircast/pkg/gree"
	"github.com/spf13/cobra"
)

var tuiLenient bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Live capture monitor",
	Long: `Full-screen monitor showing the last decoded command, a rolling
capture log and codec statistics.

Supports both serial and WebSocket connections.`,
	RunE: runTui,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiLenient, "lenient", false, "Skip bit-count and checksum validation")
	rootCmd.AddCommand(tuiCmd)
}

// Messages
type tickMsg time.Time

type captureMsg struct {
	state   *gree.State
	bits    int
	timings int
	err     error
	when    time.Time
}

type frameErrMsg struct {
	err error
}

type connClosedMsg struct {
	err error
}

// TUI model
type tuiModel struct {
	connInfo  string
	stats     *bridge.Stats
	lastState *gree.State
	lastSeen  time.Time
	log       viewport.Model
	logLines  []string
	maxLog    int
	width     int
	height    int
	ready     bool
	closed    bool
	quitting  bool
}

func newTuiModel(connInfo string) tuiModel {
	return tuiModel{
		connInfo: connInfo,
		stats:    bridge.NewStats(),
		logLines: make([]string, 0),
		maxLog:   200,
		width:    80,
		height:   24,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) addLogLine(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > m.maxLog {
		m.logLines = m.logLines[len(m.logLines)-m.maxLog:]
	}
	m.log.SetContent(strings.Join(m.logLines, "\n"))
	m.log.GotoBottom()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := m.height - 12
		if logHeight < 3 {
			logHeight = 3
		}
		if !m.ready {
			m.log = viewport.New(m.width-4, logHeight)
			m.log.SetContent(strings.Join(m.logLines, "\n"))
			m.ready = true
		} else {
			m.log.Width = m.width - 4
			m.log.Height = logHeight
		}

	case tickMsg:
		m.stats.CalculateRates()
		return m, tickCmd()

	case captureMsg:
		m.stats.Captures++
		m.stats.TotalFrames++
		m.stats.Capture(msg.err)
		if msg.err != nil {
			m.addLogLine(fmt.Sprintf("[%s] unrecognized capture (%d timings): %v",
				msg.when.Format("15:04:05.000"), msg.timings, msg.err))
		} else {
			m.lastState = msg.state
			m.lastSeen = msg.when
			m.addLogLine(fmt.Sprintf("[%s] %s (%d bits)",
				msg.when.Format("15:04:05.000"), msg.state, msg.bits))
		}

	case frameErrMsg:
		m.stats.Frame(nil, msg.err)
		m.addLogLine(fmt.Sprintf("[frame error] %v", msg.err))

	case connClosedMsg:
		m.closed = true
		if msg.err != nil {
			m.addLogLine(fmt.Sprintf("[connection closed] %v", msg.err))
		} else {
			m.addLogLine("[connection closed]")
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("AIRCAST - CAPTURE MONITOR"))
	s.WriteString("\n")
	status := m.connInfo
	if m.closed {
		status += " (closed)"
	}
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit", status)))
	s.WriteString("\n\n")

	// Last decoded command
	if m.lastState != nil {
		s.WriteString(boxStyle.Render(fmt.Sprintf("%s %s\n%s",
			labelStyle.Render("Last command:"),
			headerStyle.Render(m.lastSeen.Format("15:04:05")),
			valueStyle.Render(m.lastState.String()))))
	} else {
		s.WriteString(boxStyle.Render(headerStyle.Render("Waiting for captures...")))
	}
	s.WriteString("\n\n")

	// Statistics
	stats := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("Captures:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Captures)),
		labelStyle.Render("Decoded:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Decoded)),
		labelStyle.Render("Rejected:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.DecodeErrors)),
		labelStyle.Render("CRC Errors:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.CRCErrors)),
	)
	s.WriteString(stats)
	s.WriteString("\n\n")

	// Rolling log
	if m.ready {
		s.WriteString(boxStyle.Render(m.log.View()))
	}
	s.WriteString("\n")

	return s.String()
}

func runTui(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if on, err := bridge.Encode(bridge.NewCaptureOn()); err == nil {
		conn.Write(on)
	}

	p := tea.NewProgram(newTuiModel(connInfo))

	// Reader goroutine: feed bridge frames into the program as
	// messages. Exits when the connection dies; the read error
	// surfaces as connClosedMsg.
	go func() {
		frames := bridge.NewDecoder()
		codec := gree.NewDecoder()
		buf := make([]byte, 512)

		for {
			n, err := conn.Read(buf)
			if err != nil {
				p.Send(connClosedMsg{err: err})
				return
			}
			for i := 0; i < n; i++ {
				packet, err := frames.DecodeByte(buf[i])
				if err != nil {
					p.Send(frameErrMsg{err: err})
					continue
				}
				if packet == nil || packet.Type() != bridge.MsgCapture {
					continue
				}
				timings, ok := packet.Timings()
				if !ok {
					p.Send(frameErrMsg{err: fmt.Errorf("capture frame without timings")})
					continue
				}
				state, bits, err := codec.Decode(timings, gree.Bits, !tuiLenient)
				p.Send(captureMsg{
					state:   state,
					bits:    bits,
					timings: len(timings),
					err:     err,
					when:    packet.Timestamp(),
				})
			}
		}
	}()

	_, err = p.Run()
	return err
}
