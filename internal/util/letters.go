package util

import "strings"

// Vowels is the vowel set of the fixed A-Z alphabet used by the code rules.
const Vowels = "AEIOU"

// IsVowel reports whether b is an uppercase vowel.
func IsVowel(b byte) bool {
	return strings.IndexByte(Vowels, b) >= 0
}

// IsConsonant reports whether b is an uppercase letter other than a vowel.
func IsConsonant(b byte) bool {
	return b >= 'A' && b <= 'Z' && !IsVowel(b)
}

// SearchVowel returns the first vowel after the first letter of word, or 'X'
// when there is none. word is expected to be normalized (A-Z and spaces).
func SearchVowel(word string) byte {
	for i := 1; i < len(word); i++ {
		if IsVowel(word[i]) {
			return word[i]
		}
	}
	return 'X'
}

// SearchConsonant returns the first consonant after the first letter of word,
// or 'X' when there is none.
func SearchConsonant(word string) byte {
	for i := 1; i < len(word); i++ {
		if IsConsonant(word[i]) {
			return word[i]
		}
	}
	return 'X'
}

// FirstLetters returns up to n letters from the start of s, skipping spaces.
func FirstLetters(s string, n int) string {
	var b strings.Builder
	for i := 0; i < len(s) && b.Len() < n; i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
