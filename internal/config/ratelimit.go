package config

import "time"

// RateLimitConfig drives the token bucket in front of the gate's pass
// routes.  Each key (see KeyStrategy) starts with Capacity verifications
// and regains RefillTokens every RefillInterval.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int           `validate:"min=1"`
    RefillTokens   int           `validate:"min=1"`
    RefillInterval time.Duration `validate:"gt=0"`
    TTL            time.Duration
    KeyStrategy    string `validate:"oneof=ip seat route ip_route seat_route"`
    Prefix         string `validate:"required"`
    Debug          bool
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables.  A gate scanner
// re-reads a pass a few times in a row, hence the generous default
// capacity and one-token-per-second refill.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 30),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
        TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
        KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
        Prefix:         envStr("RATE_LIMIT_PREFIX", "gate-rl"),
        Debug:          envBool("RATE_LIMIT_DEBUG", false),
    }
    cfg.clamp()
    return cfg
}

// clamp keeps the bucket usable when the environment holds nonsense and
// makes sure an idle bucket outlives a few refill intervals in Redis.
func (r *RateLimitConfig) clamp() {
    r.Capacity = max(r.Capacity, 1)
    r.RefillTokens = max(r.RefillTokens, 1)
    if r.RefillInterval <= 0 {
        r.RefillInterval = time.Second
    }
    r.TTL = max(r.TTL, 5*r.RefillInterval)
}
