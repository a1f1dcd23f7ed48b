package markov

const (
	// EOCTokenText is the reserved text used when printing an End-Of-Chain token.
	EOCTokenText = "<EOC>"
)

// Token represents a single unit of a chain. It contains the word itself and a
// boolean flag indicating if it marks the end of a chain (e.g., a sentence).
// An End-Of-Chain token never compares equal to a word token, whatever its text.
type Token struct {
	Text string
	EOC  bool
}

// EndOfChain is the marker recorded after the last word of every sentence.
var EndOfChain = Token{EOC: true}

// Word returns the word token for text.
func Word(text string) Token {
	return Token{Text: text}
}

// Words converts a slice of strings into word tokens.
func Words(texts ...string) []Token {
	tokens := make([]Token, len(texts))
	for i, text := range texts {
		tokens[i] = Word(text)
	}
	return tokens
}

// String returns the word, or EOCTokenText for the end marker.
func (t Token) String() string {
	if t.EOC {
		return EOCTokenText
	}
	return t.Text
}
