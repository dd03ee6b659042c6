package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/llm"
)

type Translator struct {
	llm llm.Client
}

// Translation is one translated source value.
type Translation struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Note       string `json:"note,omitempty"`
}

func NewTranslator(client llm.Client) *Translator {
	return &Translator{llm: client}
}

const systemPrompt = `You are translating entries from a Japanese name list (people, places, organizations, short descriptions) to English.

For each entry, provide:
1. The English translation, or a Hepburn romanization when the entry is a personal or place name with no meaningful translation
2. A brief note if the entry is ambiguous or carries a double meaning

Respond ONLY with a JSON array, no other text. Example:
[
  {"original": "山田太郎", "translated": "Yamada Taro", "note": ""},
  {"original": "東京都庁", "translated": "Tokyo Metropolitan Government", "note": ""}
]`

// TranslateValues sends one batch of source values to the model and parses
// the JSON-array contract back into Translations. Order and count follow
// whatever the model returned; callers match on the Original field.
func (t *Translator) TranslateValues(ctx context.Context, values []string) ([]Translation, error) {
	if len(values) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Translate these entries:\n")
	for _, v := range values {
		sb.WriteString("- ")
		sb.WriteString(v)
		sb.WriteString("\n")
	}

	text, err := t.llm.Complete(ctx, systemPrompt, sb.String())
	if err != nil {
		return nil, err
	}

	var translations []Translation
	if err := json.Unmarshal([]byte(text), &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation response: %w (response: %s)", err, text)
	}

	return translations, nil
}
