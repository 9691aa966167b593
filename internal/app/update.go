package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/errmsg"
	"github.com/mvaillant/strum/internal/filter"
	"github.com/mvaillant/strum/internal/keymap"
	"github.com/mvaillant/strum/internal/libraryview"
	"github.com/mvaillant/strum/internal/mpris"
	"github.com/mvaillant/strum/internal/notify"
	"github.com/mvaillant/strum/internal/playback"
	"github.com/mvaillant/strum/internal/player"
	"github.com/mvaillant/strum/internal/ui/cardspanel"
	"github.com/mvaillant/strum/internal/ui/librarypanel"
	"github.com/mvaillant/strum/internal/ui/playerbar"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case librarypanel.PlayTrackMsg:
		if m.service != nil {
			_ = m.service.PlayIndex(msg.Index)
		}
		return m, nil

	case cardspanel.CardSelectedMsg:
		f, ok := filter.Resolve(m.cards.Cards(), msg.Index, m.catalog.Artists())
		if !ok {
			return m, nil
		}
		m.applyFilter(f, msg.Index)
		return m, nil

	case cardspanel.ClearFilterMsg:
		m.applyFilter(filter.Filter{}, -1)
		return m, nil

	case TickMsg:
		if m.service != nil && m.service.IsPlaying() {
			return m, TickCmd()
		}
		m.ticking = false
		return m, nil

	case TrackFinishedMsg:
		if m.service != nil {
			m.service.HandleFinished()
		}
		return m, m.watchTrackFinished()

	case StateChangedMsg:
		cmds := []tea.Cmd{m.watchServiceEvents()}
		if msg.Current == playback.StatePlaying && !m.ticking {
			m.ticking = true
			cmds = append(cmds, TickCmd())
		}
		return m, tea.Batch(cmds...)

	case TrackChangedMsg:
		m.library.SetNowPlaying(msg.Index)
		return m, tea.Batch(m.watchServiceEvents(), m.notifyTrackCmd(msg.Current))

	case PositionChangedMsg, VolumeChangedMsg:
		// The view reads position and volume straight from the service.
		return m, m.watchServiceEvents()

	case FavoritesChangedMsg:
		m.refreshSections()
		return m, m.watchServiceEvents()

	case PlaybackErrorMsg:
		m.errorMsg = errmsg.FormatWith(playbackErrorOp(msg.Operation), msg.File, msg.Err)
		return m, m.watchServiceEvents()

	case NotifySentMsg:
		m.notifyID = msg.ID
		return m, nil

	case ServiceClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleCatalogLoaded builds the playback stack once the listing arrives.
// A failed load degrades to an empty catalog so the UI still comes up.
func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.Err != nil {
		slog.Error("catalog load failed", "err", msg.Err)
		m.errorMsg = errmsg.Format(errmsg.OpCatalogLoad, msg.Err)
		m.catalog = catalog.Empty()
	} else {
		m.catalog = msg.Catalog
	}

	opts := playback.Options{Saver: m.stateMgr}
	if vs, err := m.stateMgr.GetVolume(); err == nil && vs != nil {
		opts.VolumePercent = vs.Volume * 100
		opts.Muted = vs.Muted
	}

	m.player = player.New()
	m.service = playback.New(m.player, m.catalog, m.favs, m.loader, opts)
	m.sub = m.service.Subscribe()

	m.library = librarypanel.New(m.catalog)
	m.library.SetFocused(m.focus == FocusLibrary)
	m.refreshSections()
	m.layout()

	if adapter, err := mpris.New(m.service); err == nil {
		m.mprisAdapter = adapter
	} else {
		slog.Warn("mpris unavailable", "err", err)
	}
	if notifier, err := notify.New(); err == nil {
		m.notifier = notifier
	}

	return m, tea.Batch(m.watchServiceEvents(), m.watchTrackFinished())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if m.keys.Resolve(msg.String()) == keymap.ActionQuit {
			return m, m.quit()
		}
		return m, nil
	}

	// A new keypress dismisses the last error.
	m.errorMsg = ""

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, m.quit()

	case keymap.ActionSwitchFocus:
		m.switchFocus()
		return m, nil

	case keymap.ActionPlayPause:
		if m.service != nil {
			_ = m.service.Toggle()
		}
		return m, nil

	case keymap.ActionNextTrack:
		if m.service != nil {
			_ = m.service.Next()
		}
		return m, nil

	case keymap.ActionPrevTrack:
		if m.service != nil {
			_ = m.service.Previous()
		}
		return m, nil

	case keymap.ActionSeekFwd:
		if m.service != nil {
			_ = m.service.SeekPercent(m.service.ProgressPercent() + seekStepPercent)
		}
		return m, nil

	case keymap.ActionSeekBack:
		if m.service != nil {
			_ = m.service.SeekPercent(m.service.ProgressPercent() - seekStepPercent)
		}
		return m, nil

	case keymap.ActionVolumeUp:
		if m.service != nil {
			m.service.SetVolumePercent(m.service.VolumePercent() + volumeStep)
		}
		return m, nil

	case keymap.ActionVolumeDown:
		if m.service != nil {
			m.service.SetVolumePercent(m.service.VolumePercent() - volumeStep)
		}
		return m, nil

	case keymap.ActionToggleMute:
		if m.service != nil {
			m.service.ToggleMute()
		}
		return m, nil

	case keymap.ActionToggleFavourite:
		if m.service != nil {
			m.service.ToggleFavorite()
		}
		return m, nil
	}

	// Everything else goes to the focused panel.
	var cmd tea.Cmd
	if m.focus == FocusCards {
		m.cards, cmd = m.cards.Update(msg)
	} else {
		m.library, cmd = m.library.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchFocus() {
	if m.focus == FocusLibrary {
		m.focus = FocusCards
	} else {
		m.focus = FocusLibrary
	}
	m.library.SetFocused(m.focus == FocusLibrary)
	m.cards.SetFocused(m.focus == FocusCards)
}

// applyFilter swaps the active library filter and rebuilds the sections
// with their default expansion.
func (m *Model) applyFilter(f filter.Filter, cardIndex int) {
	m.filter = f
	m.cards.SetActive(cardIndex)
	m.library.ResetExpansion()
	m.refreshSections()
}

func (m *Model) refreshSections() {
	m.library.SetSections(libraryview.Build(m.catalog, m.favs, m.filter))
}

func (m *Model) layout() {
	panelHeight := max(m.height-playerbar.BarHeight-statusHeight, 0)
	cardsWidth := cardsPanelWidth
	if m.width < cardsPanelWidth*2 {
		cardsWidth = m.width / 3
	}
	m.cards.SetSize(cardsWidth, panelHeight)
	m.library.SetSize(max(m.width-cardsWidth, 0), panelHeight)
}

func (m Model) quit() tea.Cmd {
	if m.mprisAdapter != nil {
		_ = m.mprisAdapter.Close()
	}
	if m.service != nil {
		_ = m.service.Close()
	}
	_ = m.stateMgr.Close()
	return tea.Quit
}

func playbackErrorOp(operation string) errmsg.Op {
	switch operation {
	case "fetch":
		return errmsg.OpTrackFetch
	case "seek":
		return errmsg.OpPlaybackSeek
	default:
		return errmsg.OpPlaybackStart
	}
}
