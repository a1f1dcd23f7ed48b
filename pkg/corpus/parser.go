package corpus

import (
	"bufio"
	"io"
	"iter"
	"regexp"
	"strings"
)

var (
	// badWordRegex matches words containing anything other than word
	// characters and apostrophes.
	badWordRegex = regexp.MustCompile(`[^\w']`)
	// These three are applied in order; a URL that ends a sentence keeps the
	// sentence's period.
	urlEndStringRegex = regexp.MustCompile(`\bhttp\S*\.$`)
	urlEndSpaceRegex  = regexp.MustCompile(`\bhttp\S*\.\s`)
	urlRegex          = regexp.MustCompile(`\bhttp\S*`)
)

// punctuation holds the marks that end a sentence.
var punctuation = []rune{'.', '?', '!', ';'}

// Punctuation returns the sentence-ending punctuation marks.
func Punctuation() []rune {
	return append([]rune(nil), punctuation...)
}

// IsPunctuation reports whether s is a single sentence-ending mark.
func IsPunctuation(s string) bool {
	r := []rune(s)
	return len(r) == 1 && strings.ContainsRune(string(punctuation), r[0])
}

// IsPunctuated reports whether s ends with a sentence-ending mark.
func IsPunctuated(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ContainsRune(string(punctuation), r[len(r)-1])
}

// ReplacePunctuation replaces every sentence-ending mark with a period.
func ReplacePunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(string(punctuation), r) {
			return '.'
		}
		return r
	}, s)
}

// SplitSentences splits tweet on sentence-ending punctuation and returns the
// trimmed, non-empty sentences.
func SplitSentences(tweet string) []string {
	var sentences []string
	for _, s := range strings.Split(ReplacePunctuation(tweet), ".") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ExtractColumn returns the column'th comma separated field of line. Quoting is
// not interpreted. It returns false if column is out of range.
func ExtractColumn(line string, column int) (string, bool) {
	fields := strings.Split(line, ",")
	if column < 0 || column >= len(fields) {
		return "", false
	}
	return fields[column], true
}

// RemoveURLs removes every word starting with "http", keeping a period that
// directly follows one.
func RemoveURLs(s string) string {
	s = urlEndStringRegex.ReplaceAllString(s, ".")
	s = urlEndSpaceRegex.ReplaceAllString(s, ". ")
	return urlRegex.ReplaceAllString(s, "")
}

// CleanWord lower-cases and trims word. It returns false for empty words and
// for words containing characters other than letters, digits, underscores and
// apostrophes.
func CleanWord(word string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(word))
	if cleaned == "" || badWordRegex.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// ParseSentence splits sentence on spaces and returns the words that survive
// CleanWord.
func ParseSentence(sentence string) []string {
	words := []string{}
	for _, w := range strings.Split(sentence, " ") {
		if cleaned, ok := CleanWord(w); ok {
			words = append(words, cleaned)
		}
	}
	return words
}

// ParseTweet removes URLs from tweet, splits it into sentences and cleans each
// one. A sentence whose words are all rejected is returned as an empty slice.
func ParseTweet(tweet string) [][]string {
	var sentences [][]string
	for _, s := range SplitSentences(RemoveURLs(tweet)) {
		sentences = append(sentences, ParseSentence(s))
	}
	return sentences
}

// Lines iterates over the lines of r. Iteration stops at the first read error,
// which is yielded with an empty line.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}
