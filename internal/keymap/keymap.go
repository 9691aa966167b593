package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global" or "playback"
}

// Defaults contains the built-in key bindings.
var Defaults = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Switch focus", "global"},

	// Playback
	{[]string{" "}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"n", "pgdown"}, ActionNextTrack, "Next track", "playback"},
	{[]string{"p", "pgup"}, ActionPrevTrack, "Previous track", "playback"},
	{[]string{"right"}, ActionSeekFwd, "Seek forward", "playback"},
	{[]string{"left"}, ActionSeekBack, "Seek back", "playback"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"-"}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"m"}, ActionToggleMute, "Toggle mute", "playback"},
	{[]string{"f"}, ActionToggleFavourite, "Toggle favourite", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Defaults {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
