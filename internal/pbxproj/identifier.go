package pbxproj

import (
	"regexp"
	"strings"

	"github.com/gofrs/uuid"
)

// Xcode object identifiers are 24 uppercase hex characters.
var identifierPattern = regexp.MustCompile(`\b[0-9A-F]{24}\b`)

// identifierPool generates project-unique object identifiers. It seeds
// itself with every 24-hex token already present in the document so a
// fresh identifier never collides with an existing record.
type identifierPool struct {
	seen map[string]struct{}
}

func newIdentifierPool(content string) *identifierPool {
	pool := &identifierPool{seen: make(map[string]struct{})}
	for _, id := range identifierPattern.FindAllString(content, -1) {
		pool.seen[id] = struct{}{}
	}
	return pool
}

// Generate returns a new unique identifier: a v4 UUID with dashes stripped,
// uppercased, truncated to 24 characters. Regenerates on the (negligible)
// chance of a collision.
func (p *identifierPool) Generate() string {
	for {
		u, err := uuid.NewV4()
		if err != nil {
			continue
		}
		id := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))[:24]
		if _, found := p.seen[id]; found {
			continue
		}
		p.seen[id] = struct{}{}
		return id
	}
}
