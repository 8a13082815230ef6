package middleware

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/rs/cors"
)

// lanHostPattern matches hosts on the development LAN subnet.
var lanHostPattern = regexp.MustCompile(`^192\.168\.1\.(\d{1,3})$`)

// CORS reflects origins from the configured allowlist plus any origin
// on 192.168.1.1-100 for LAN development. Preflight requests are
// answered with 204 and headers only.
func CORS(allowedOrigins []string) *cors.Cors {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			return allowedLANOrigin(origin)
		},
		AllowedMethods: []string{
			"GET", "POST", "PATCH", "DELETE", "OPTIONS",
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
}

// allowedLANOrigin reports whether the origin resolves to a private
// 192.168.1.x host with x in [1,100].
func allowedLANOrigin(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	match := lanHostPattern.FindStringSubmatch(parsed.Hostname())
	if match == nil {
		return false
	}

	lastOctet, err := strconv.Atoi(match[1])
	if err != nil {
		return false
	}
	return lastOctet >= 1 && lastOctet <= 100
}
