package constants

// Redis key formats
const (
	// Geo service
	KeyShortLinkResolved = "geo:shortlink:%s" // Format: geo:shortlink:{short_url}

	// Quotes service
	KeyRouteQuote = "quote:route:%s:%s" // Format: quote:route:{origin_geohash}:{dest_geohash}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{path}:{caller}
)
