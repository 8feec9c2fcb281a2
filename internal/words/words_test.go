package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	cases := []struct {
		word     string
		expected []string
	}{
		{"apple", []string{"_", "_", "_", "_", "_"}},
		{"ice cream", []string{"_", "_", "_", " ", "_", "_", "_", "_", "_"}},
		{"a b", []string{"_", " ", "_"}},
		{"", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expected, Mask(tc.word))
		})
	}
}

func TestNewProvider_RejectsEmptyCorpus(t *testing.T) {
	_, err := NewProvider(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestProvider_PickReturnsCorpusWord(t *testing.T) {
	corpus := []string{"apple", "traffic light"}
	provider, err := NewProvider(corpus)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		word, masked := provider.Pick()
		assert.Contains(t, corpus, word)
		assert.Equal(t, Mask(word), masked)
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads one word per line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("apple\n\n  bridge  \nrocket\n"), 0o644))

		corpus, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "bridge", "rocket"}, corpus)
	})

	t.Run("missing file falls back to built-in corpus", func(t *testing.T) {
		corpus, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		require.NoError(t, err)
		assert.Equal(t, defaultCorpus, corpus)
	})

	t.Run("empty file is a configuration error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})
}
