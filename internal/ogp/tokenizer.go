package ogp

import (
	"fmt"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer splits text into an ordered sequence of surface strings whose
// concatenation is the input.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Kagome is a morphological Tokenizer backed by the IPA dictionary.
type Kagome struct {
	once sync.Once
	t    *tokenizer.Tokenizer
	err  error
}

// NewKagome returns a Tokenizer whose dictionary is loaded on first use.
func NewKagome() *Kagome {
	return &Kagome{}
}

// Tokenize implements Tokenizer.
func (k *Kagome) Tokenize(text string) ([]string, error) {
	k.once.Do(func() {
		k.t, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if k.err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", k.err)
	}
	tokens := k.t.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Surface)
	}
	return out, nil
}
