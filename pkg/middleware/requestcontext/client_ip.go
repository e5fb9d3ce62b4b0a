package requestcontext

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader names a header set by the edge proxy, e.g. X-Real-IP. It takes precedence when it holds a valid IP.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// TrustedProxiesIP lists every proxy range between the server and the client. The client is the last
	// X-Forwarded-For hop outside these ranges.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// EnableRejectMalformedRequest answers 403 when X-Forwarded-For is present but no trusted proxy range is configured.
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// WithClientIP stores the client IP in the context, resisting X-Forwarded-For spoofing.
func WithClientIP(config WithClientIPConfig) Option {
	proxies, err := parsePrefixes(config.TrustedProxiesIP)
	if err != nil {
		logger.Panic("Failed to parse trusted proxies", slog.Any("error", err))
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if ip, err := netip.ParseAddr(c.Get(config.TrustedHeader)); err == nil {
				return withClientIP(ctx, ip.String()), nil
			}
		}

		forwarded := c.IPs()
		if len(forwarded) == 0 {
			return withClientIP(ctx, c.IP()), nil
		}

		if len(proxies) > 0 {
			for i := len(forwarded) - 1; i >= 0; i-- {
				ip, err := netip.ParseAddr(forwarded[i])
				if err != nil {
					continue
				}
				trusted := lo.ContainsBy(proxies, func(p netip.Prefix) bool { return p.Contains(ip.Unmap()) })
				if !trusted {
					return withClientIP(ctx, ip.String()), nil
				}
			}
			return withClientIP(ctx, forwarded[0]), nil
		}

		if config.EnableRejectMalformedRequest {
			logger.WarnContext(ctx, "Untrusted X-Forwarded-For, returning 403 Forbidden",
				slog.String("module", "requestcontext"),
				slog.String("ip", c.IP()),
				slog.Any("ips", forwarded),
			)
			return nil, rejection{status: fiber.StatusForbidden, message: "not allowed to access"}
		}
		return withClientIP(ctx, forwarded[0]), nil
	}
}

// GetClientIP returns the client IP stored by [WithClientIP], or an empty string.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func withClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func parsePrefixes(ranges []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(ranges))
	for _, r := range ranges {
		p, err := netip.ParsePrefix(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR for %q", r)
		}
		prefixes = append(prefixes, p.Masked())
	}
	return prefixes, nil
}
