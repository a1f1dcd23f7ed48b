package tweetbot

// punctuationDraws is the bound of every punctuation draw. The first len(marks)
// values select a mark, everything above falls through to a period.
const punctuationDraws = 10

var marks = []rune{';', '?', '!'}

// RandomPunctuation draws a mark from the punctuation source: ';', '?' and '!'
// each with a 1 in 10 chance, '.' otherwise.
func (b *Bot) RandomPunctuation() (string, error) {
	m, err := b.punct.Next(punctuationDraws)
	if err != nil {
		return "", err
	}
	if m >= 0 && m < len(marks) {
		return string(marks[m]), nil
	}
	return ".", nil
}

// PunctuationIndex returns the draw for which RandomPunctuation yields mark.
// Unknown marks map to the period.
func PunctuationIndex(mark rune) int {
	for i, m := range marks {
		if m == mark {
			return i
		}
	}
	return len(marks)
}
