// ABOUTME: FAQ page: an embedded TOML catalogue with markdown answers
// ABOUTME: Answers are converted to HTML once at startup

package webadmin

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/BurntSushi/toml"
	"github.com/yuin/goldmark"
)

type faqEntry struct {
	Question string
	Answer   template.HTML
}

type faqCatalogue struct {
	FAQ []struct {
		Question string `toml:"question"`
		Answer   string `toml:"answer"`
	} `toml:"faq"`
}

// loadFAQs parses the embedded catalogue and renders every answer.
func loadFAQs() ([]faqEntry, error) {
	var cat faqCatalogue
	if _, err := toml.DecodeFS(faqFS, "faqs.toml", &cat); err != nil {
		return nil, err
	}

	out := make([]faqEntry, 0, len(cat.FAQ))
	for _, f := range cat.FAQ {
		if f.Question == "" {
			return nil, errors.New("faq entry without a question")
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(f.Answer), &buf); err != nil {
			return nil, err
		}
		out = append(out, faqEntry{Question: f.Question, Answer: template.HTML(buf.String())})
	}
	return out, nil
}

func (a *Admin) handleFAQs(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, "faqs", a.faqs)
}
