package transcriber

import "strings"

// validModels is the closed set of whisper size classes. Model files follow
// the ggml naming convention ggml-<model>.bin.
var validModels = []string{
	"tiny", "tiny.en",
	"base", "base.en",
	"small", "small.en",
	"medium", "medium.en",
	"large", "large-v2", "large-v3",
}

// NormalizeModel collapses a duplicated English suffix (".en.en" happens when
// a caller appends ".en" to an already language-restricted name).
func NormalizeModel(name string) string {
	if strings.HasSuffix(name, ".en.en") {
		return strings.TrimSuffix(name, ".en")
	}
	return name
}

func isValidModel(name string) bool {
	for _, m := range validModels {
		if m == name {
			return true
		}
	}
	return false
}

// ValidModels returns the accepted model identifiers.
func ValidModels() []string {
	out := make([]string, len(validModels))
	copy(out, validModels)
	return out
}
