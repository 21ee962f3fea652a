package usecase

import (
	"fmt"

	"github.com/diillson/savings-post-go/internal/domain/entity"
	"github.com/diillson/savings-post-go/pkg/format"
)

// Emojis é o conjunto fixo de onde a legenda sorteia o primeiro caractere.
var Emojis = []string{"💰", "🎯", "💵", "📊", "✨"}

const (
	CaptionLanguageEnglish = "en"
	CaptionLanguageTurkish = "tr"
)

// headline args: emoji, goal name, percentage.
type captionTemplate struct {
	headline  string
	saved     string
	target    string
	remaining string
	hashtags  string
}

var captionTemplates = map[string]captionTemplate{
	CaptionLanguageEnglish: {
		headline:  "%[1]s I've reached %[3]s%% of my %[2]s goal!",
		saved:     "📈 Total Saved: ₺%s",
		target:    "🎯 Goal: ₺%s",
		remaining: "⏳ Remaining: ₺%s",
		hashtags:  "#savings #mygoal #moneysaving #financialfreedom #saving",
	},
	CaptionLanguageTurkish: {
		headline:  "%[1]s %[2]s hedefim için %%%[3]s ilerleme kaydettim!",
		saved:     "📈 Toplam Birikim: ₺%s",
		target:    "🎯 Hedef: ₺%s",
		remaining: "⏳ Kalan: ₺%s",
		hashtags:  "#tasarruf #hedefim #parabirikimi #finansalözgürlük #birikim",
	},
}

// SupportedCaptionLanguage reports whether lang has a caption template.
func SupportedCaptionLanguage(lang string) bool {
	_, ok := captionTemplates[lang]
	return ok
}

// BuildCaption formata a legenda do post. Unknown languages fall back to English.
func BuildCaption(stats entity.Statistics, emoji, lang string) string {
	tpl, ok := captionTemplates[lang]
	if !ok {
		tpl = captionTemplates[CaptionLanguageEnglish]
	}

	return fmt.Sprintf(tpl.headline, emoji, stats.GoalName, format.Number(stats.Percentage)) + "\n\n" +
		fmt.Sprintf(tpl.saved, format.Money(stats.TotalSaved)) + "\n" +
		fmt.Sprintf(tpl.target, format.Money(stats.Target)) + "\n" +
		fmt.Sprintf(tpl.remaining, format.Money(stats.Remaining)) + "\n\n" +
		tpl.hashtags + " " + format.Hashtag(stats.GoalName)
}
