package narrative

import (
	"fmt"
	"strings"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
)

const (
	settingStep    = 15
	settingCeiling = 90
	maxLevelProps  = 3
	maxSymbols     = 3
)

var settings = []string{
	"the outer courtyard of a temple in Hermopolis, where newcomers wait at dawn",
	"a lamplit library of papyrus scrolls beside the Nile",
	"the inner sanctuary, its walls carved with the seven principles",
	"a moonlit observatory atop the temple, charting the correspondence of the stars",
	"the hidden chamber beneath the Great Pyramid, where initiates keep vigil",
	"the timeless Hall of Amenti, beyond the veil of the visible world",
}

var baseProps = []string{
	"the Emerald Tablet",
	"a burning oil lamp",
	"the caduceus staff",
}

var levelProps = map[hermetic.Level][]string{
	hermetic.LevelSeeker:  {"a simple clay cup of water", "a lotus in bloom", "a worn travelling cloak"},
	hermetic.LevelStudent: {"scrolls of the Kybalion", "an ibis-headed statue of Thoth", "a wax tablet for notes"},
	hermetic.LevelAdept:   {"an alchemical athanor", "a vessel of quicksilver", "a bronze astrolabe"},
	hermetic.LevelMaster:  {"the ouroboros ring", "a mirror of polished obsidian", "an empty throne of light"},
}

var atmospheres = map[hermetic.Mood]string{
	hermetic.MoodCalming:       "The air is still and cool; incense drifts slowly and the flame barely flickers, inviting a deep breath.",
	hermetic.MoodCompassionate: "Soft golden light falls across the stones, warm as an embrace; nothing here asks to be hurried.",
	hermetic.MoodGrounding:     "The earth hums beneath bare feet; the steady pulse of the river anchors every bright thought.",
	hermetic.MoodSerene:        "A serene quiet fills the chamber, broken only by the distant sound of water.",
}

const baseSymbol = "the ankh, key of life"

// SettingIndex discretizes a score into the six settings; scores of 90 and
// above share the last one.
func SettingIndex(score int) int {
	if score < 0 {
		score = 0
	}
	if score > settingCeiling {
		score = settingCeiling
	}
	idx := score / settingStep
	if idx >= len(settings) {
		idx = len(settings) - 1
	}
	return idx
}

// Generate picks the story elements for one turn. Unknown principles add no
// symbol and an unknown level gets the seeker props.
func Generate(level hermetic.SpiritualLevel, state *hermetic.EmotionalState, principles []hermetic.PrincipleID) hermetic.StoryElements {
	props := append([]string(nil), baseProps...)
	extra, ok := levelProps[level.Level]
	if !ok {
		extra = levelProps[hermetic.LevelSeeker]
	}
	if len(extra) > maxLevelProps {
		extra = extra[:maxLevelProps]
	}
	props = append(props, extra...)

	symbols := []string{baseSymbol}
	for i, id := range principles {
		if i == maxSymbols {
			break
		}
		if p, ok := knowledge.Lookup(id); ok {
			symbols = append(symbols, p.Symbol)
		}
	}

	return hermetic.StoryElements{
		Setting:    settings[SettingIndex(level.Score)],
		Props:      props,
		Atmosphere: atmospheres[hermetic.MoodFor(state)],
		Symbolism:  symbols,
	}
}

// Render formats the elements as a prompt block.
func Render(s hermetic.StoryElements) string {
	var b strings.Builder
	b.WriteString("# Storytelling\n")
	fmt.Fprintf(&b, "Setting: %s.\n", s.Setting)
	if len(s.Props) > 0 {
		fmt.Fprintf(&b, "Props you may reach for: %s.\n", strings.Join(s.Props, ", "))
	}
	if s.Atmosphere != "" {
		fmt.Fprintf(&b, "Atmosphere: %s\n", s.Atmosphere)
	}
	if len(s.Symbolism) > 0 {
		fmt.Fprintf(&b, "Symbols to weave in: %s.", strings.Join(s.Symbolism, "; "))
	}
	return strings.TrimRight(b.String(), "\n")
}
