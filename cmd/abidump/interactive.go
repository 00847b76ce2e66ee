package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type modelState int

const (
	stateBrowse modelState = iota
	stateSignature
	stateResult
)

// headerLines is the number of lines View renders above the viewport.
const headerLines = 3

type interactiveModel struct {
	err      error
	st       styles
	view     viewport.Model
	input    textinput.Model
	req      decodeRequest
	result   string
	cd       callData
	notes    []wordNote
	history  []int
	selected int
	state    modelState
	ready    bool
}

func newInteractiveModel(input []byte, req decodeRequest) *interactiveModel {
	cd := splitInput(input)
	ti := textinput.New()
	ti.Placeholder = "transfer(address,uint256) or (uint256,bytes)"
	ti.Prompt = "signature: "
	ti.Width = 60
	ti.SetValue(req.sig)

	return &interactiveModel{
		st:    colorStyles(),
		input: ti,
		req:   req,
		cd:    cd,
		notes: annotate(cd.args),
		state: stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerLines - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateSignature {
			return m.updateSignature(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
				m.refresh()
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.notes)-1 {
				m.selected++
				m.refresh()
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				// Follow an offset to the word it points at.
				if len(m.notes) > 0 && m.notes[m.selected].target > 0 {
					m.history = append(m.history, m.selected)
					m.selected = m.notes[m.selected].target
					m.refresh()
				}
			case stateResult:
				m.state = stateBrowse
				m.refresh()
			}

		case "backspace", "h":
			if m.state == stateBrowse && len(m.history) > 0 {
				m.selected = m.history[len(m.history)-1]
				m.history = m.history[:len(m.history)-1]
				m.refresh()
			}

		case "s", "d":
			if m.state == stateBrowse {
				m.state = stateSignature
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateResult {
				m.state = stateBrowse
				m.refresh()
			}
		}
	}

	if m.ready && m.state == stateResult {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) updateSignature(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.state = stateBrowse
		m.refresh()
		return m, nil
	case "enter":
		m.input.Blur()
		m.decode()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) decode() {
	m.req.sig = m.input.Value()
	args, err := decodeInput(m.cd, m.req)
	m.err = err
	m.result = ""
	if err == nil {
		m.result = formatArgs(args, m.req.verbose, m.st)
	}
	m.state = stateResult
	m.refresh()
}

// refresh renders the current state into the viewport and keeps the
// selected word visible.
func (m *interactiveModel) refresh() {
	if !m.ready {
		return
	}

	if m.state == stateResult {
		if m.err != nil {
			m.view.SetContent(m.st.err.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			m.view.SetContent(m.result)
		}
		m.view.GotoTop()
		return
	}

	var b strings.Builder
	for i, n := range m.notes {
		line := fmt.Sprintf("%4d 0x%04x %x", n.index, n.index*32, n.word[:])
		if n.note != "" {
			line += "  " + n.note
		}
		if i == m.selected {
			b.WriteString(m.st.cur.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	m.view.SetContent(b.String())

	switch {
	case m.selected < m.view.YOffset:
		m.view.SetYOffset(m.selected)
	case m.selected >= m.view.YOffset+m.view.Height:
		m.view.SetYOffset(m.selected - m.view.Height + 1)
	}
}

func (m *interactiveModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.st.title.Render("ABI Dump"))
	fmt.Fprintf(&b, " %d words", len(m.notes))
	if m.cd.hasSelector {
		b.WriteString(" selector ")
		b.WriteString(m.st.value.Render(m.cd.selector.String()))
	}
	b.WriteString("\n")

	switch m.state {
	case stateSignature:
		b.WriteString(m.input.View())
	case stateResult:
		b.WriteString("Decoded with ")
		b.WriteString(m.st.note.Render(m.req.sig))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(m.view.View())
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.st.help.Render("↑/↓ select • enter follow offset • backspace back • s decode • q quit"))
	case stateSignature:
		b.WriteString(m.st.help.Render("enter decode • esc cancel"))
	case stateResult:
		b.WriteString(m.st.help.Render("↑/↓ scroll • enter/esc back • q quit"))
	}
	return b.String()
}

func runInteractive(input []byte, req decodeRequest) error {
	p := tea.NewProgram(newInteractiveModel(input, req), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
