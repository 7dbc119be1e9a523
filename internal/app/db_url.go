package app

import (
	"net/url"
	"strings"

	"github.com/riskibarqy/learnquest/internal/config"
)

const binaryParametersKey = "binary_parameters"

// normalizeDBURL turns on lib/pq binary parameters unless the URL already sets
// the option. Both URL and key=value DSN forms are accepted.
func normalizeDBURL(raw string, binaryParameters bool) string {
	if !binaryParameters {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get(binaryParametersKey) == "" {
			query.Set(binaryParametersKey, "yes")
			parsed.RawQuery = query.Encode()
		}
		return parsed.String()
	}

	for _, token := range strings.Fields(trimmed) {
		if strings.HasPrefix(token, binaryParametersKey+"=") {
			return raw
		}
	}
	if trimmed == "" {
		return raw
	}
	return trimmed + " " + binaryParametersKey + "=yes"
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.Trim(strings.TrimPrefix(token, "dbname="), `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// PostgresDSN returns the configured database URL with driver options applied.
func PostgresDSN(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters)
}
