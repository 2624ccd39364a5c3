// ABOUTME: Tests for the icon set
// ABOUTME: Validates every icon carries both glyph variants

package icons

import "testing"

func TestIconsHaveBothVariants(t *testing.T) {
	all := map[string]Icon{
		"CPU": CPU, "GPU": GPU, "Power": Power, "Cost": Cost, "Tokens": Tokens,
		"Chart": Chart, "CheckOK": CheckOK, "Critical": Critical, "Wizard": Wizard,
		"Toggle": Toggle, "Quit": Quit, "App": App,
	}
	for name, icon := range all {
		if icon.NerdFont == "" {
			t.Errorf("%s: expected a Nerd Font glyph", name)
		}
		if icon.Fallback == "" {
			t.Errorf("%s: expected a fallback glyph", name)
		}
	}
}
