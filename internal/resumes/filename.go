package resumes

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

const randSuffixMax = 1_000_000_000

// Namer generates collision-resistant stored filenames of the form
// resume-<unix millis>-<random suffix><original extension>. Concurrent
// uploads within the same millisecond stay distinct through the suffix.
type Namer struct {
	Now  func() time.Time
	Rand func(int64) int64
}

// Next produces a stored filename preserving the original extension.
func (n Namer) Next(originalName string) string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	random := rand.Int64N
	if n.Rand != nil {
		random = n.Rand
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext == "" || strings.ContainsAny(ext, ` /\`) {
		ext = ".pdf"
	}
	return fmt.Sprintf("resume-%d-%d%s", now().UnixMilli(), random(randSuffixMax), ext)
}
