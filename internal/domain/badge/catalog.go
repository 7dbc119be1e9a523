package badge

import (
	"errors"
	"os"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("invalid badge catalog")

// Definition describes one achievement every user can earn.
type Definition struct {
	BadgeID     int    `yaml:"badgeId"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	IconType    string `yaml:"iconType"`
	Total       int    `yaml:"total"`
}

// Catalog is an immutable, ordered list of badge definitions.
type Catalog struct {
	defs []Definition
}

func DefaultCatalog() Catalog {
	return Catalog{defs: []Definition{
		{BadgeID: 1, Name: "Fast Learner", Description: "Completed 5 topics in a single day", IconType: "zap", Total: 5},
		{BadgeID: 2, Name: "Quiz Master", Description: "Scored 100% in 3 consecutive quizzes", IconType: "star", Total: 3},
		{BadgeID: 3, Name: "Dedicated Scholar", Description: "Studied for more than 10 hours in a week", IconType: "clock", Total: 10},
		{BadgeID: 4, Name: "Knowledge Seeker", Description: "Completed 20 topics", IconType: "book", Total: 20},
		{BadgeID: 5, Name: "Perfect Attendance", Description: "Logged in for 14 consecutive days", IconType: "award", Total: 14},
	}}
}

func NewCatalog(defs []Definition) (Catalog, error) {
	if len(defs) == 0 {
		return Catalog{}, crerr.Wrap(ErrInvalidCatalog, "catalog has no definitions")
	}

	seen := make(map[int]struct{}, len(defs))
	out := make([]Definition, 0, len(defs))
	for i, def := range defs {
		def.Name = strings.TrimSpace(def.Name)
		def.IconType = strings.TrimSpace(def.IconType)
		def.Description = strings.TrimSpace(def.Description)
		switch {
		case def.BadgeID <= 0:
			return Catalog{}, crerr.Wrapf(ErrInvalidCatalog, "definition %d: badgeId must be > 0", i)
		case def.Name == "":
			return Catalog{}, crerr.Wrapf(ErrInvalidCatalog, "definition %d: name is required", i)
		case def.Total <= 0:
			return Catalog{}, crerr.Wrapf(ErrInvalidCatalog, "badge %d: total must be > 0", def.BadgeID)
		}
		if _, dup := seen[def.BadgeID]; dup {
			return Catalog{}, crerr.Wrapf(ErrInvalidCatalog, "badge %d: duplicate badgeId", def.BadgeID)
		}
		seen[def.BadgeID] = struct{}{}
		out = append(out, def)
	}

	return Catalog{defs: out}, nil
}

// LoadCatalog reads a catalog from a YAML file with a top-level `badges` list.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, crerr.Wrapf(err, "read badge catalog %q", path)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (Catalog, error) {
	var doc struct {
		Badges []Definition `yaml:"badges"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, crerr.Wrap(err, "decode badge catalog yaml")
	}
	return NewCatalog(doc.Badges)
}

func (c Catalog) Len() int {
	return len(c.defs)
}

// Definitions returns a copy of the definitions in catalog order.
func (c Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}

func (c Catalog) Lookup(badgeID int) (Definition, bool) {
	for _, def := range c.defs {
		if def.BadgeID == badgeID {
			return def, true
		}
	}
	return Definition{}, false
}

// Materialize builds a fresh, unearned badge set for userID.
func (c Catalog) Materialize(userID string, now time.Time) []Badge {
	out := make([]Badge, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, Badge{
			UserID:      userID,
			BadgeID:     def.BadgeID,
			Name:        def.Name,
			Description: def.Description,
			IconType:    def.IconType,
			Earned:      false,
			Progress:    0,
			Total:       def.Total,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}
