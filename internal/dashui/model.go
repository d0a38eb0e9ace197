// Package dashui provides the Bubble Tea dashboard interface.
package dashui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averku/chartle/internal/analytics"
	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
	"github.com/averku/chartle/internal/render"
	"github.com/averku/chartle/internal/wordle"
)

const (
	tabChart = iota
	tabLeaderboard
	tabPlayers
	tabPreview
)

const (
	plotHeight   = 10
	daysStep     = 7
	previewLimit = 200
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3AA76D"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3AA76D")).
			Padding(1, 2)
)

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	source *dataset.Table
	schema model.SchemaKind
	facts  []model.Fact
	cfg    model.ViewConfig

	window  wordle.Window
	players []string
	errMsg  string

	tabs         []string
	activeTab    int
	viewports    []viewport.Model
	playersTable table.Model
	playerLayout tableLayout

	width  int
	height int

	settingsMode   bool
	settingsInputs []textinput.Model
	settingsIndex  int
	settingsError  string

	playerModal bool
	modalPlayer string
}

type tableLayout struct {
	width    int
	height   int
	rowCount int
}

// NewModel constructs a dashboard model over a parsed table.
func NewModel(t *dataset.Table, cfg model.ViewConfig) *Model {
	m := &Model{
		source: t,
		schema: classify(t),
		cfg:    cfg,
		tabs:   []string{"Chart", "Leaderboard", "Players", "Preview"},
	}
	if m.cfg.Preset == "" {
		m.cfg.Preset = analytics.PresetRoundDistribution
	}
	m.cfg.Limit = model.ClampLimit(m.cfg.Limit)
	if m.schema == model.SchemaWordle {
		m.facts = wordle.Normalize(t)
	}
	m.initInputs()
	m.initPlayersTable()
	m.initViewports()
	m.refresh()
	return m
}

// NewStoredModel constructs a dashboard model from already-normalized facts,
// for datasets loaded from the store without their source CSV.
func NewStoredModel(t *dataset.Table, facts []model.Fact, cfg model.ViewConfig) *Model {
	m := &Model{
		source: t,
		schema: model.SchemaWordle,
		facts:  facts,
		cfg:    cfg,
		tabs:   []string{"Chart", "Leaderboard", "Players", "Preview"},
	}
	if m.cfg.Preset == "" {
		m.cfg.Preset = analytics.PresetRoundDistribution
	}
	m.cfg.Limit = model.ClampLimit(m.cfg.Limit)
	m.initInputs()
	m.initPlayersTable()
	m.initViewports()
	m.refresh()
	return m
}

func classify(t *dataset.Table) model.SchemaKind {
	if t.Empty() {
		return model.SchemaNone
	}
	return wordle.Classify(t.Columns)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabPlayers {
			m.playersTable.Focus()
		} else {
			m.playersTable.Blur()
		}
		if m.settingsMode {
			return m.updateSettings(msg)
		}
		if m.playerModal {
			return m.updatePlayerModal(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "p":
			m.cfg.Preset = nextPreset(m.cfg.Preset, 1)
			m.refresh()
			return m, nil
		case "P":
			m.cfg.Preset = nextPreset(m.cfg.Preset, -1)
			m.refresh()
			return m, nil
		case "=":
			m.cfg.Days = nextDaysWindow(m.cfg.Days)
			m.refresh()
			return m, nil
		case "-":
			m.cfg.Days = prevDaysWindow(m.cfg.Days)
			m.refresh()
			return m, nil
		case "]":
			m.cfg.Limit = model.ClampLimit(m.cfg.Limit + 1)
			m.refresh()
			return m, nil
		case "[":
			m.cfg.Limit = model.ClampLimit(m.cfg.Limit - 1)
			m.refresh()
			return m, nil
		case "/":
			return m.startSettings()
		case "enter":
			if m.activeTab == tabPlayers {
				return m.openPlayerModal()
			}
			return m, nil
		case "g", "home":
			if m.activeTab == tabPlayers {
				m.playersTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabPlayers {
				m.playersTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabPlayers {
				var cmd tea.Cmd
				m.playersTable, cmd = m.playersTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.playerModal {
		return fitLines(m.renderPlayerModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.settingsInputs = []textinput.Model{
		newSettingsInput("Days (0 = all): "),
		newSettingsInput("Leaderboard limit: "),
		newSettingsInput("Filter: "),
	}
	m.setInputsFromConfig()
}

func (m *Model) initPlayersTable() {
	m.playersTable = table.New(
		table.WithColumns(playersColumns()),
		table.WithHeight(1),
	)
	m.playersTable.SetStyles(playersTableStyles())
}

func newSettingsInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromConfig() {
	if len(m.settingsInputs) == 0 {
		return
	}
	if m.cfg.Days > 0 {
		m.settingsInputs[0].SetValue(strconv.Itoa(m.cfg.Days))
	} else {
		m.settingsInputs[0].SetValue("")
	}
	m.settingsInputs[1].SetValue(strconv.Itoa(m.cfg.Limit))
	m.settingsInputs[2].SetValue(m.cfg.Filter)
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.settingsMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setPlayersTableSize(m.width, vpHeight)
	for i := range m.settingsInputs {
		promptWidth := lipgloss.Width(m.settingsInputs[i].Prompt)
		m.settingsInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabPlayers {
		m.playersTable.Focus()
	} else {
		m.playersTable.Blur()
	}
}

func (m *Model) refresh() {
	m.errMsg = ""
	if m.source.Empty() {
		m.errMsg = "CSV has no data rows."
	}
	if m.schema == model.SchemaWordle {
		m.window = wordle.SelectLastDays(m.facts, m.cfg.Days)
		m.players = wordle.Players(m.window.Facts)
	} else {
		m.window = wordle.Window{}
		m.players = nil
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.applyPlayersTable(width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabChart].SetContent(m.renderChartTab(width))
	m.viewports[tabLeaderboard].SetContent(m.renderLeaderboardTab())
	m.viewports[tabPreview].SetContent(m.renderPreviewTab(width))
}

func (m *Model) renderChartTab(width int) string {
	switch m.schema {
	case model.SchemaNone:
		return "No data loaded."
	case model.SchemaGeneric:
		return m.renderGenericChart(width)
	}
	if len(m.window.Facts) == 0 {
		return "No games in the selected window."
	}
	cards := m.renderSummaryCards(width)
	series, ok := analytics.BuildPreset(m.cfg.Preset, m.window.Facts, m.cfg.Limit)
	if !ok {
		return cards + "\n\n" + fmt.Sprintf("Unknown preset %q.", m.cfg.Preset)
	}
	var buf bytes.Buffer
	kind := analytics.SuggestedChart(m.cfg.Preset)
	if err := render.Chart(&buf, series, kind, render.PlotWidthFor(width), plotHeight, true); err != nil {
		return cards + "\n\n" + fmt.Sprintf("Failed to render chart: %v", err)
	}
	return strings.TrimRight(cards+"\n\n"+buf.String(), "\n")
}

func (m *Model) renderGenericChart(width int) string {
	if m.cfg.XColumn == "" {
		return "Not a Wordle summary. Pick columns with --x and --y to chart this file."
	}
	rows := m.source.FilterRows(m.cfg.Filter)
	if m.cfg.Mode == model.AggNone {
		return m.renderRawPoints(rows)
	}
	series := analytics.GroupBy(rows, m.cfg.XColumn, m.cfg.YColumn, m.cfg.Mode)
	var buf bytes.Buffer
	if err := render.Bar(&buf, series, width/2); err != nil {
		return fmt.Sprintf("Failed to render chart: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderRawPoints(rows []dataset.Row) string {
	points := analytics.RawPoints(rows, m.cfg.XColumn, m.cfg.YColumn)
	if len(points) == 0 {
		return "No rows to plot."
	}
	tableRows := make([][]string, 0, len(points))
	for _, p := range points {
		tableRows = append(tableRows, []string{p.X, p.Y})
	}
	lines := render.Table([]string{m.cfg.XColumn, m.cfg.YColumn}, tableRows, nil)
	return strings.Join(lines, "\n")
}

func (m *Model) renderSummaryCards(width int) string {
	facts := m.window.Facts
	solved := 0
	crowns := 0
	for _, f := range facts {
		if f.Solved {
			solved++
		}
		if f.IsCrown {
			crowns++
		}
	}
	solveRate := 0.0
	if len(facts) > 0 {
		solveRate = float64(solved) / float64(len(facts)) * 100
	}
	cards := []string{
		metricCard("Days", fmt.Sprintf("%d", m.window.TotalDays)),
		metricCard("Games", fmt.Sprintf("%d", len(facts))),
		metricCard("Players", fmt.Sprintf("%d", len(m.players))),
		metricCard("Solve rate", fmt.Sprintf("%.1f%%", solveRate)),
		metricCard("Crowns", fmt.Sprintf("%d", crowns)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func (m *Model) renderLeaderboardTab() string {
	if m.schema != model.SchemaWordle {
		return "Leaderboard needs a Wordle summary CSV."
	}
	rows := analytics.KingWins(m.window.Facts, m.cfg.Limit)
	var buf bytes.Buffer
	if err := render.Leaderboard(&buf, rows); err != nil {
		return fmt.Sprintf("Failed to render leaderboard: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderPreviewTab(width int) string {
	if m.source.Empty() {
		return "No data loaded."
	}
	rows := m.source.FilterRows(m.cfg.Filter)
	if len(rows) == 0 {
		return fmt.Sprintf("No rows match %q.", m.cfg.Filter)
	}
	shown := rows
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	tableRows := make([][]string, 0, len(shown))
	for _, row := range shown {
		cells := make([]string, len(m.source.Columns))
		for i, col := range m.source.Columns {
			cells[i] = truncateLine(row.Cell(col), 24)
		}
		tableRows = append(tableRows, cells)
	}
	lines := render.Table(m.source.Columns, tableRows, nil)
	for i, line := range lines {
		lines[i] = truncateLine(line, width)
	}
	note := fmt.Sprintf("%d of %d rows", len(shown), len(rows))
	return headerStyle.Render(note) + "\n" + strings.Join(lines, "\n")
}

func playersColumns() []table.Column {
	return []table.Column{
		{Title: "Player", Width: 18},
		{Title: "Games", Width: 6},
		{Title: "Solved", Width: 6},
		{Title: "Crowns", Width: 6},
		{Title: "Points", Width: 7},
	}
}

func (m *Model) applyPlayersTable(width, height int) {
	rows := make([]table.Row, 0, len(m.players))
	for _, player := range m.players {
		metrics := analytics.SummarizePlayer(m.window.Facts, player)
		solved := 0
		for _, bucket := range model.GuessBuckets[:6] {
			solved += metrics.PerRound[bucket]
		}
		rows = append(rows, table.Row{
			player,
			fmt.Sprintf("%d", metrics.TotalGames),
			fmt.Sprintf("%d", solved),
			fmt.Sprintf("%d", metrics.CrownWins),
			fmt.Sprintf("%d", analytics.TotalPoints(metrics)),
		})
	}
	m.playersTable.SetColumns(playersColumns())
	m.playersTable.SetRows(rows)
	m.playerLayout.rowCount = len(rows)
	m.setPlayersTableSize(width, height)
}

func (m *Model) setPlayersTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.playerLayout.width == width && m.playerLayout.height == viewportHeight {
		return
	}
	m.playerLayout.width = width
	m.playerLayout.height = viewportHeight
	m.playersTable.SetWidth(width)
	m.playersTable.SetHeight(viewportHeight)
}

func playersTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := padLines(m.renderSettingsSummary(), m.width)
	return tabs + "\n" + summary
}

func (m *Model) renderSettingsSummary() string {
	days := "all"
	if m.cfg.Days > 0 {
		days = strconv.Itoa(m.cfg.Days)
	}
	filter := m.cfg.Filter
	if filter == "" {
		filter = "none"
	}
	latest := m.window.LatestLabel
	if latest == "" {
		latest = "-"
	}
	summary := fmt.Sprintf("Settings: preset=%s  days=%s  limit=%d  filter=%s  latest=%s",
		m.cfg.Preset, days, m.cfg.Limit, filter, latest)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Preset: p/P  Days: -/=  Limit: [/]  Settings: /  Quit: q"
	if m.activeTab == tabPlayers {
		help = "Nav: left/right  Select: up/down  Detail: enter  Settings: /  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	if m.settingsMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: q")
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderSettingsForm() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, input := range m.settingsInputs {
		lines = append(lines, input.View())
	}
	if m.settingsError != "" {
		lines = append(lines, errorStyle.Render(m.settingsError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.settingsMode {
		return fitLines(m.renderSettingsForm(), m.width, height)
	}
	if m.activeTab == tabPlayers {
		switch {
		case m.schema != model.SchemaWordle:
			return fitLines("Player stats need a Wordle summary CSV.", m.width, height)
		case len(m.players) == 0:
			return fitLines("No players in the selected window.", m.width, height)
		default:
			view := tableMutedStyle.Render(m.playersTable.View())
			return fitLines(view, m.width, height)
		}
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) startSettings() (tea.Model, tea.Cmd) {
	m.settingsMode = true
	m.settingsError = ""
	m.setInputsFromConfig()
	return m, m.setSettingsIndex(0)
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.settingsMode = false
		m.settingsError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applySettings(); err != nil {
			m.settingsError = err.Error()
			return m, nil
		}
		m.settingsMode = false
		m.settingsError = ""
		m.refresh()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setSettingsIndex(m.settingsIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setSettingsIndex(m.settingsIndex - 1)
	}
	var cmd tea.Cmd
	m.settingsInputs[m.settingsIndex], cmd = m.settingsInputs[m.settingsIndex].Update(msg)
	return m, cmd
}

func (m *Model) setSettingsIndex(idx int) tea.Cmd {
	count := len(m.settingsInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.settingsIndex = idx
	var cmd tea.Cmd
	for i := range m.settingsInputs {
		if i == m.settingsIndex {
			cmd = m.settingsInputs[i].Focus()
		} else {
			m.settingsInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applySettings() error {
	daysInput := strings.TrimSpace(m.settingsInputs[0].Value())
	days := 0
	if daysInput != "" {
		parsed, err := strconv.Atoi(daysInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid days value (use 0 or positive integer)")
		}
		days = parsed
	}

	limitInput := strings.TrimSpace(m.settingsInputs[1].Value())
	limit := m.cfg.Limit
	if limitInput != "" {
		parsed, err := strconv.Atoi(limitInput)
		if err != nil {
			return fmt.Errorf("invalid limit (use integer)")
		}
		limit = model.ClampLimit(parsed)
	}

	m.cfg.Days = days
	m.cfg.Limit = limit
	m.cfg.Filter = strings.TrimSpace(m.settingsInputs[2].Value())
	return nil
}

func (m *Model) openPlayerModal() (tea.Model, tea.Cmd) {
	if m.schema != model.SchemaWordle || len(m.players) == 0 {
		return m, nil
	}
	row := m.playersTable.SelectedRow()
	if len(row) == 0 {
		return m, nil
	}
	m.modalPlayer = row[0]
	m.playerModal = true
	return m, nil
}

func (m *Model) updatePlayerModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.playerModal = false
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *Model) renderPlayerModal() string {
	metrics := analytics.SummarizePlayer(m.window.Facts, m.modalPlayer)
	title := cardValueStyle.Render(m.modalPlayer)
	lines := []string{
		title,
		fmt.Sprintf("Games: %d  Crowns: %d  Points: %d",
			metrics.TotalGames, metrics.CrownWins, analytics.TotalPoints(metrics)),
		"",
	}
	maxCount := 1
	for _, bucket := range model.GuessBuckets {
		if c := metrics.PerRound[bucket]; c > maxCount {
			maxCount = c
		}
	}
	for _, bucket := range model.GuessBuckets {
		count := metrics.PerRound[bucket]
		crowns := metrics.PerRoundCrown[bucket]
		bar := strings.Repeat("█", count*20/maxCount)
		line := fmt.Sprintf("%s %-20s %d", bucket, bar, count)
		if crowns > 0 {
			line += fmt.Sprintf(" (%d crown)", crowns)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", headerStyle.Render("Enter/Esc to close"))
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func nextPreset(current string, delta int) string {
	idx := 0
	for i, p := range analytics.Presets {
		if p == current {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(analytics.Presets) - 1
	}
	if idx >= len(analytics.Presets) {
		idx = 0
	}
	return analytics.Presets[idx]
}

func nextDaysWindow(n int) int {
	return n + daysStep
}

func prevDaysWindow(n int) int {
	if n <= daysStep {
		return 0
	}
	return n - daysStep
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
