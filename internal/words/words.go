package words

import (
	"bufio"
	"errors"
	"math/rand"
	"os"
	"strings"

	"sketchparty/internal/logger"
)

var ErrEmptyCorpus = errors.New("empty-word-corpus")

// fallback corpus used when no words file is configured.
var defaultCorpus = []string{
	"apple", "bridge", "rocket", "guitar", "elephant",
	"butterfly", "mountain", "rainbow", "pizza", "camera",
}

type Provider interface {
	Pick() (word string, masked []string)
}

type corpusProvider struct {
	corpus []string
}

func NewProvider(corpus []string) (Provider, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	return &corpusProvider{corpus: corpus}, nil
}

func (p *corpusProvider) Pick() (string, []string) {
	word := p.corpus[rand.Intn(len(p.corpus))]
	return word, Mask(word)
}

// Mask hides every character behind a placeholder. Spaces stay visible so
// multi-word phrases keep their shape.
func Mask(word string) []string {
	masked := make([]string, 0, len(word))
	for _, r := range word {
		if r == ' ' {
			masked = append(masked, " ")
		} else {
			masked = append(masked, "_")
		}
	}
	return masked
}

// Load reads a newline-delimited words file. A missing file falls back to
// the built-in corpus; an existing but empty file is a configuration error.
func Load(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		logger.Warningf("Words file %s not found, using built-in corpus", filePath)
		return defaultCorpus, nil
	}
	defer file.Close()

	var corpus []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			corpus = append(corpus, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	logger.Infof("Words count: %v", len(corpus))
	return corpus, nil
}
