package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/malonaz/urlreader/cli/tui/styles"
	"github.com/malonaz/urlreader/internal/i18n"
	"github.com/malonaz/urlreader/internal/markdown"
	"github.com/malonaz/urlreader/internal/session"
)

// homeView reads a URL and renders the summary returned by the backend.
type homeView struct {
	ctx     context.Context
	backend session.Backend
	locale  i18n.Locale

	state    session.Home
	input    textinput.Model
	viewport viewport.Model
	renderer *markdown.Renderer

	width  int
	height int
}

func newHomeView(ctx context.Context, backend session.Backend, locale i18n.Locale) (*homeView, error) {
	renderer, err := markdown.NewRenderer(styles.DefaultWidth)
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Width = styles.DefaultWidth

	v := &homeView{
		ctx:      ctx,
		backend:  backend,
		input:    input,
		viewport: viewport.New(styles.DefaultWidth, styles.MinViewportHeight),
		renderer: renderer,
	}
	v.setLocale(locale)
	return v, nil
}

func (v *homeView) setLocale(locale i18n.Locale) {
	v.locale = locale
	v.input.Placeholder = locale.T("input.url")
	v.refreshResult()
}

// focus gives the keyboard to the URL input.
func (v *homeView) focus() tea.Cmd {
	if v.state.Loading() {
		return nil
	}
	return v.input.Focus()
}

func (v *homeView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case parseDoneMsg:
		v.state.ApplyParse(msg.response, msg.err)
		v.refreshResult()
		return v.input.Focus()

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMapHome.ScrollUp):
			v.viewport.LineUp(v.viewport.Height / 2)
			return nil
		case key.Matches(msg, keyMapHome.ScrollDown):
			v.viewport.LineDown(v.viewport.Height / 2)
			return nil
		case key.Matches(msg, keyMapHome.Submit):
			return v.submit()
		}
		if v.state.Loading() {
			return nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.state.URL = v.input.Value()
	return cmd
}

func (v *homeView) submit() tea.Cmd {
	v.state.URL = v.input.Value()
	url, ok := v.state.Submit()
	if !ok {
		return nil
	}
	v.input.Blur()
	v.refreshResult()
	return parseCmd(v.ctx, v.backend, url)
}

func (v *homeView) setSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width - styles.InputStyle.GetHorizontalFrameSize() - 1

	viewportHeight := height - styles.InputStyle.GetVerticalFrameSize() - 1 - styles.StatusHeight
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}
	v.viewport.Width = width
	v.viewport.Height = viewportHeight
	v.renderer.SetWidth(width - styles.MessagePaddingLeft)
	v.refreshResult()
}

func (v *homeView) refreshResult() {
	if v.state.State != session.HomeResult || v.state.Result == nil {
		v.viewport.SetContent("")
		return
	}
	var b strings.Builder
	b.WriteString(styles.ResultLabelStyle.Render(v.locale.T("parse.result.title")))
	b.WriteString("\n")
	b.WriteString(v.renderer.Render(v.state.Result.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.ResultLabelStyle.Render(v.locale.T("parse.result.content")))
	b.WriteString("\n")
	b.WriteString(v.renderer.Render(v.state.Result.Content))
	v.viewport.SetContent(b.String())
	v.viewport.GotoTop()
}

func (v *homeView) view(spinner string) string {
	var b strings.Builder
	inputStyle := styles.Input(v.input.Focused(), !v.state.Loading())
	b.WriteString(inputStyle.Render(v.input.View()))
	b.WriteString("\n")

	switch v.state.State {
	case session.HomeLoading:
		b.WriteString(spinner + " " + styles.DimTextStyle.Render(v.locale.T("parse.loading")))
	case session.HomeError:
		b.WriteString(styles.ErrorStyle.Render(v.locale.T("parse.error", v.state.Err)))
	}
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	return b.String()
}
