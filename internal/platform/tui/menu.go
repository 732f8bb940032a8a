package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/registry"
	"github.com/vovakirdan/color-stack/internal/storage"
)

// MenuItemKind is what selecting a menu item does.
type MenuItemKind int

const (
	MenuItemPlay MenuItemKind = iota
	MenuItemScores
	MenuItemQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Kind       MenuItemKind
	GameID     string
	Title      string
	Difficulty string // preset for play items, "" for the config's own
	Best       int
}

// menuPresets are offered for games that take a difficulty.
var menuPresets = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titlePalette  = []core.Color{core.ColorRed, core.ColorBlue, core.ColorGray, core.ColorGreen, core.ColorMagenta, core.ColorOrange, core.ColorPurple}
	menuTitleText = "C O L O R   S T A C K"
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user picked High Scores or pressed Tab
}

// NewMenuModel creates a new menu model. Play items use defaultDifficulty
// first, then one item per preset for games that take one.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, defaultDifficulty string) MenuModel {
	var items []MenuItem

	for _, g := range registry.List() {
		items = append(items, MenuItem{Kind: MenuItemPlay, GameID: g.ID, Title: g.Title, Difficulty: defaultDifficulty})

		game, err := registry.Create(g.ID)
		if err != nil {
			continue
		}
		if _, ok := game.(registry.Tunable); !ok {
			continue
		}
		for _, p := range menuPresets {
			if string(p) == defaultDifficulty {
				continue
			}
			items = append(items, MenuItem{Kind: MenuItemPlay, GameID: g.ID, Title: g.Title, Difficulty: string(p)})
		}
	}
	items = append(items,
		MenuItem{Kind: MenuItemScores, Title: "High Scores"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	if store != nil {
		for i := range items {
			if items[i].Kind != MenuItemPlay {
				continue
			}
			if best, err := store.HighScore(items[i].GameID, items[i].Difficulty); err == nil {
				items[i].Best = best
			}
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		switch item.Kind {
		case MenuItemQuit:
			m.quitting = true
		case MenuItemScores:
			m.openScoreboard = true
		default:
			m.selected = &item
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// label returns the display text of an item.
func (item MenuItem) label() string {
	if item.Kind != MenuItemPlay {
		return item.Title
	}
	text := item.Title
	if item.Difficulty != "" {
		text = fmt.Sprintf("%s (%s)", item.Title, item.Difficulty)
	}
	if item.Best > 0 {
		text = fmt.Sprintf("%-24s best %d", text, item.Best)
	}
	return text
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitle(), len([]rune(menuTitleText)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pass through the block that matches your ball", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label()
		if i == m.cursor {
			line = "> " + item.label()
			b.WriteString(centerStyled(cursorStyle.Render(line), len([]rune(line)), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle.Render(controls), len(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// menuTitle colors each letter of the title with the next palette color.
func menuTitle() string {
	var b strings.Builder
	i := 0
	for _, r := range menuTitleText {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		c := titlePalette[i%len(titlePalette)]
		b.WriteString(titleStyle.Inherit(styleFor(c)).Render(string(r)))
		i++
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len([]rune(text)), width)
}

// centerStyled centers already styled text whose visible length is n.
func centerStyled(text string, n, width int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
