// Package app wires the catalog, playback service, and panels into the
// root bubbletea model.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/config"
	"github.com/mvaillant/strum/internal/favorites"
	"github.com/mvaillant/strum/internal/filter"
	"github.com/mvaillant/strum/internal/keymap"
	"github.com/mvaillant/strum/internal/mpris"
	"github.com/mvaillant/strum/internal/notify"
	"github.com/mvaillant/strum/internal/playback"
	"github.com/mvaillant/strum/internal/player"
	"github.com/mvaillant/strum/internal/state"
	"github.com/mvaillant/strum/internal/ui/cardspanel"
	"github.com/mvaillant/strum/internal/ui/librarypanel"
	"github.com/mvaillant/strum/internal/ui/styles"
)

// FocusTarget identifies which panel receives navigation keys.
type FocusTarget int

const (
	FocusLibrary FocusTarget = iota
	FocusCards
)

const (
	cardsPanelWidth = 30
	statusHeight    = 1
	seekStepPercent = 5
	volumeStep      = 5
)

// Model is the root application model containing all state.
type Model struct {
	cfg      *config.Config
	stateMgr *state.Manager

	loader  *catalog.Loader
	catalog *catalog.Catalog
	favs    *favorites.Store
	player  player.Interface
	service playback.Service
	sub     *playback.Subscription

	mprisAdapter *mpris.Adapter
	notifier     notify.Notifier
	notifyID     uint32

	keys    *keymap.Resolver
	cards   cardspanel.Model
	library librarypanel.Model
	filter  filter.Filter

	spin     spinner.Model
	loading  bool
	ticking  bool
	errorMsg string

	focus  FocusTarget
	width  int
	height int
}

// New creates a new application model from configuration.
func New(cfg *config.Config, stateMgr *state.Manager) Model {
	favs := favorites.NewStore(stateMgr)
	favs.Load()

	cards := make([]filter.Card, 0, len(cfg.Cards))
	for _, c := range cfg.Cards {
		cards = append(cards, filter.Card{Title: c.Title, Artist: c.Artist})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.T().Primary)

	m := Model{
		cfg:      cfg,
		stateMgr: stateMgr,
		loader:   catalog.NewLoader(cfg.ServerURL, cfg.SongsPath, cfg.CacheDir),
		catalog:  catalog.Empty(),
		favs:     favs,
		keys:     keymap.NewResolver(keymap.Defaults),
		cards:    cardspanel.New(cards),
		library:  librarypanel.New(catalog.Empty()),
		spin:     sp,
		loading:  true,
		focus:    FocusLibrary,
	}
	m.library.SetFocused(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, LoadCatalogCmd(m.loader))
}
