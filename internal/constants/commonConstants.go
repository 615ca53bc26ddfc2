package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAvailability CachePrefix = "AVAIL_"
	CachePrefixOAuthToken   CachePrefix = "OAUTH_TOKEN_"
	CachePrefixPriceHistory CachePrefix = "PRICE_HIST_"
)

// Result limiting for unauthenticated callers
const MaxFreeResults = 3

// Cache TTLs (seconds) for the orchestrator's side caches
const (
	AvailabilityCacheTTLSeconds = 30 * 60
	MetadataCacheTTLDays        = 90
)
