package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio       string
	Artist      string
	Favourite   string
	Unfavourite string
	Play        string
	Pause       string
	Stop        string
	Volume      string
	VolumeMuted string
}

var (
	nerdIcons = Icons{
		Audio:       " ", // nf-fa-music
		Artist:      " ", // nf-fa-user
		Favourite:   "󰣐",       // nf-md-heart
		Unfavourite: "󰣕",       // nf-md-heart_outline
		Play:        "󰐊",       // nf-md-play
		Pause:       "󰏤",       // nf-md-pause
		Stop:        "󰓛",       // nf-md-stop
		Volume:      "󰕾",       // nf-md-volume_high
		VolumeMuted: "󰖁",       // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Audio:       "🎵 ",
		Artist:      "👤 ",
		Favourite:   "♥",
		Unfavourite: "♡",
		Play:        "▶",
		Pause:       "⏸",
		Stop:        "⏹",
		Volume:      "🔊",
		VolumeMuted: "🔇",
	}

	noneIcons = Icons{
		Audio:       "",
		Artist:      "",
		Favourite:   "*",
		Unfavourite: "-",
		Play:        ">",
		Pause:       "||",
		Stop:        "[]",
		Volume:      "vol",
		VolumeMuted: "mut",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a track name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Artist + name
}

// Favourite returns the liked heart icon.
func Favourite() string {
	return current.Favourite
}

// Unfavourite returns the not-liked heart icon.
func Unfavourite() string {
	return current.Unfavourite
}

// Heart returns the heart icon for the given liked state.
func Heart(liked bool) string {
	if liked {
		return current.Favourite
	}
	return current.Unfavourite
}

// Play returns the play symbol.
func Play() string {
	return current.Play
}

// Pause returns the pause symbol.
func Pause() string {
	return current.Pause
}

// Stop returns the stop symbol.
func Stop() string {
	return current.Stop
}

// Volume returns the volume symbol for the given muted state.
func Volume(muted bool) string {
	if muted {
		return current.VolumeMuted
	}
	return current.Volume
}
