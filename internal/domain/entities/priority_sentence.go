package entities

import "github.com/google/uuid"

// Namespace for deterministic sentence identifiers.
var sentenceIDNamespace = uuid.MustParse("9f2c1c1e-5b0a-4a7e-8e76-3d1f0a6b2c44")

// PrioritySentence is a sentence selected from a lesson's examples as worth
// targeted review, ranked by historical difficulty.
type PrioritySentence struct {
	ID         string `json:"id"`
	Russian    string `json:"russian"`
	English    string `json:"english"`
	Priority   int    `json:"priority"`
	ErrorCount int    `json:"errorCount"`
	Source     string `json:"source"`
}

// SentenceID derives a stable identifier from the lesson and the exact
// sentence pair. The fields are NUL-separated before hashing so raw text
// containing a delimiter cannot collide with another pair.
func SentenceID(lessonID, russian, english string) string {
	key := lessonID + "\x00" + russian + "\x00" + english
	return uuid.NewSHA1(sentenceIDNamespace, []byte(key)).String()
}
