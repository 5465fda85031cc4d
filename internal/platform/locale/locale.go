package locale

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const DefaultCode = "en"

// Entry is one locale's cultural guidance. LanguageName may be left empty
// and is then filled from CLDR display names.
type Entry struct {
	LanguageName string `yaml:"language_name" json:"language_name"`
	Adaptation   string `yaml:"adaptation" json:"adaptation"`
}

var builtin = map[string]Entry{
	"en": {Adaptation: "Speak in clear, warm English. Draw on universal imagery of light, journeys and seasons, and avoid idioms that only one region would recognise."},
	"es": {Adaptation: "Habla con calidez y cercanía. Valora la familia y la comunidad, y usa imágenes del sol, el mar y la tierra. Usa \"tú\" salvo que el buscador prefiera \"usted\"."},
	"fr": {Adaptation: "Exprime-toi avec élégance et précision. Appuie-toi sur la tradition philosophique et l'art de la conversation, et vouvoie le chercheur par défaut."},
	"de": {Adaptation: "Sprich klar, gründlich und strukturiert. Verweise auf die Tradition der Naturphilosophie und der Mystik, und verwende standardmäßig die Sie-Form."},
	"pt": {Adaptation: "Fale com afeto e acolhimento. Valorize a saudade, a fé e a comunidade, e use imagens do mar e da natureza."},
	"it": {Adaptation: "Parla con calore e passione. Richiama l'eredità rinascimentale e neoplatonica, dove gli scritti ermetici furono riscoperti."},
	"ja": {Adaptation: "丁寧語で、穏やかに話してください。季節の移ろいや自然との調和のイメージを用い、直接的すぎる表現は避けてください。"},
	"zh": {Adaptation: "语气温和而庄重。可以借用阴阳、四季与道的意象，与赫尔墨斯原理相互映照。"},
	"ar": {Adaptation: "تحدث بلطف واحترام. استحضر تراث الحكمة في الإسكندرية ومصر القديمة، حيث وُلدت التعاليم الهرمسية."},
	"hi": {Adaptation: "स्नेह और सम्मान के साथ बोलें। कर्म, धर्म और चक्रों की अवधारणाओं से जोड़ें, जो हर्मेटिक सिद्धांतों से मेल खाती हैं।"},
}

type Provider struct {
	entries map[string]Entry
	tags    []language.Tag
	matcher language.Matcher
}

// New builds a provider from the built-in table plus overrides keyed by
// language code. English is always the first supported tag and the fallback.
func New(overrides map[string]Entry) *Provider {
	entries := make(map[string]Entry, len(builtin)+len(overrides))
	for code, e := range builtin {
		entries[code] = e
	}
	for code, e := range overrides {
		base, ok := baseCode(code)
		if !ok {
			continue
		}
		cur := entries[base]
		if strings.TrimSpace(e.Adaptation) != "" {
			cur.Adaptation = strings.TrimSpace(e.Adaptation)
		}
		if strings.TrimSpace(e.LanguageName) != "" {
			cur.LanguageName = strings.TrimSpace(e.LanguageName)
		}
		if cur.Adaptation == "" {
			continue
		}
		entries[base] = cur
	}

	codes := make([]string, 0, len(entries))
	for code := range entries {
		if code != DefaultCode {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	codes = append([]string{DefaultCode}, codes...)

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag := language.Make(code)
		e := entries[code]
		if e.LanguageName == "" {
			e.LanguageName = display.English.Languages().Name(tag)
			entries[code] = e
		}
		tags = append(tags, tag)
	}
	return &Provider{entries: entries, tags: tags, matcher: language.NewMatcher(tags)}
}

func baseCode(code string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

// Resolve maps a requested locale to a supported one. ok is false when the
// English fallback was used.
func (p *Provider) Resolve(code string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return DefaultCode, false
	}
	_, idx, conf := p.matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(p.tags) {
		return DefaultCode, false
	}
	base, _ := p.tags[idx].Base()
	return base.String(), true
}

func (p *Provider) CulturalAdaptation(code string) string {
	resolved, _ := p.Resolve(code)
	return p.entries[resolved].Adaptation
}

func (p *Provider) LanguageName(code string) string {
	resolved, _ := p.Resolve(code)
	return p.entries[resolved].LanguageName
}

// Supported lists the base codes in matcher order.
func (p *Provider) Supported() []string {
	out := make([]string, 0, len(p.tags))
	for _, t := range p.tags {
		base, _ := t.Base()
		out = append(out, base.String())
	}
	return out
}
