// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// nerdFontTerminals typically ship with a Nerd Font configured
var nerdFontTerminals = []string{"iTerm.app", "alacritty", "WezTerm", "kitty", "ghostty"}

func detectNerdFonts() bool {
	if env := os.Getenv("INFERCALC_NERD_FONTS"); env != "" {
		return env == "1" || strings.EqualFold(env, "true")
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

var (
	// Hardware
	CPU = Icon{"", "●"} // nf-oct-cpu
	GPU = Icon{"󰢮", "◆"} // nf-md-expansion_card

	// Metrics
	Power  = Icon{"󱐋", "ϟ"} // nf-md-lightning_bolt
	Cost   = Icon{"󰄛", "$"} // nf-md-currency_usd
	Tokens = Icon{"󰊄", "≡"} // nf-md-format_text
	Chart  = Icon{"󰄭", "▁"} // nf-md-chart_line

	// Status
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Critical = Icon{"", "✗"} // nf-oct-x_circle

	// Actions
	Wizard = Icon{"󰂓", "★"} // nf-md-auto_fix
	Toggle = Icon{"󰔡", "⇄"} // nf-md-toggle_switch
	Quit   = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App = Icon{"󰍛", "◈"} // nf-md-memory
)
