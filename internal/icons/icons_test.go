package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("none")
}

func TestFormatAudio(t *testing.T) {
	tests := []struct {
		style    string
		name     string
		expected string
	}{
		{"none", "song.mp3", "song.mp3"},
		{"nerd", "song.mp3", " song.mp3"},
		{"unicode", "song.mp3", "🎵 song.mp3"},
		{"none", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := FormatAudio(tt.name); got != tt.expected {
				t.Errorf("FormatAudio(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestHeart(t *testing.T) {
	tests := []struct {
		style    string
		liked    string
		notLiked string
	}{
		{"none", "*", "-"},
		{"unicode", "♥", "♡"},
		{"nerd", "󰣐", "󰣕"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Heart(true); got != tt.liked {
				t.Errorf("Heart(true) = %q, want %q", got, tt.liked)
			}
			if got := Heart(false); got != tt.notLiked {
				t.Errorf("Heart(false) = %q, want %q", got, tt.notLiked)
			}
		})
	}

	Init("none")
}

func TestVolume(t *testing.T) {
	Init("unicode")
	if got := Volume(false); got != "🔊" {
		t.Errorf("Volume(false) = %q, want 🔊", got)
	}
	if got := Volume(true); got != "🔇" {
		t.Errorf("Volume(true) = %q, want 🔇", got)
	}
	Init("none")
}

func TestNoneStyleUsesASCII(t *testing.T) {
	Init("none")

	values := []string{
		FormatAudio("x"), FormatArtist("x"),
		Heart(true), Heart(false),
		Play(), Pause(), Stop(),
		Volume(true), Volume(false),
	}
	for _, v := range values {
		for _, r := range v {
			if r > 127 {
				t.Errorf("none style should be ASCII-only, got %q", v)
				break
			}
		}
	}
}

func TestTransportSymbolsNonEmpty(t *testing.T) {
	for _, style := range []string{"nerd", "unicode", "none"} {
		t.Run(style, func(t *testing.T) {
			Init(style)
			if Play() == "" || Pause() == "" || Stop() == "" {
				t.Error("transport symbols should not be empty")
			}
			if Heart(true) == "" || Heart(false) == "" {
				t.Error("heart symbols should not be empty")
			}
		})
	}
	Init("none")
}
