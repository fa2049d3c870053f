package handler

const (
	// APIRootPath is the prefix of all JSON API routes.
	APIRootPath = "/api"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// CacheControlProviderConfig is sent on the public provider config
	// endpoints so clients reuse the response for a minute.
	CacheControlProviderConfig = "public, max-age=60"

	// CacheControlNoStore is sent on endpoints that must always be
	// revalidated, such as the admin session check.
	CacheControlNoStore = "no-store"
)
