package cache

// AppDetailsTable caches raw appdetails response bodies keyed by "<appid>:<language>".
const AppDetailsTable = "appdetails_cache"

// AppDetailsCacheSchema defines the schema for the appdetails response cache.
// cached_at is stored as unix seconds.
const AppDetailsCacheSchema = `
CREATE TABLE IF NOT EXISTS appdetails_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_appdetails_cached_at ON appdetails_cache(cached_at);
`

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	AppDetailsCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	AppDetailsTable: true,
}
