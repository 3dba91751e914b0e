package domain

// LocaleSupport reports whether a locale tag has dictionary data available.
// Implemented by the locale data provider; consumed at context construction
// so unsupported locales fail fast instead of mid-batch.
type LocaleSupport interface {
	Supports(locale string) bool
}

// Config holds the parameters for building a masking Context.
type Config struct {
	// TenantID is the isolation boundary. It participates in every seed
	// derivation, so two tenants masking the same subject produce
	// unrelated output. Never logged.
	TenantID string

	// MasterSalt is opaque secret key material, at least 32 bytes.
	MasterSalt []byte

	// Locale selects which locale data provider tables are consulted.
	Locale string

	// PreserveEmailDomain keeps the original email domain in masked
	// emails by default. Reduces anonymization; caller's choice.
	PreserveEmailDomain bool
}

// Context is the immutable per-tenant masking configuration. It holds no
// per-call mutable state and may be shared read-only across goroutines.
type Context struct {
	tenantID            string
	masterSalt          []byte
	locale              string
	preserveEmailDomain bool
}

// NewContext validates the config and builds an immutable Context.
// All configuration failures surface here; masking calls never fail on
// configuration afterwards.
func NewContext(cfg Config, locales LocaleSupport) (*Context, error) {
	if cfg.TenantID == "" {
		return nil, ErrMissingTenantID
	}
	if len(cfg.MasterSalt) == 0 {
		return nil, ErrMissingMasterSalt
	}
	if len(cfg.MasterSalt) < MinMasterSaltLength {
		return nil, ErrShortMasterSalt
	}
	if cfg.Locale == "" {
		return nil, ErrUnsupportedLocale
	}
	if locales != nil && !locales.Supports(cfg.Locale) {
		return nil, ErrUnsupportedLocale
	}

	salt := make([]byte, len(cfg.MasterSalt))
	copy(salt, cfg.MasterSalt)

	return &Context{
		tenantID:            cfg.TenantID,
		masterSalt:          salt,
		locale:              cfg.Locale,
		preserveEmailDomain: cfg.PreserveEmailDomain,
	}, nil
}

// TenantID returns the tenant identifier.
func (c *Context) TenantID() string {
	return c.tenantID
}

// MasterSalt returns a copy of the master salt bytes.
func (c *Context) MasterSalt() []byte {
	salt := make([]byte, len(c.masterSalt))
	copy(salt, c.masterSalt)
	return salt
}

// Locale returns the configured locale tag.
func (c *Context) Locale() string {
	return c.locale
}

// PreserveEmailDomain returns the default email domain preservation policy.
func (c *Context) PreserveEmailDomain() bool {
	return c.preserveEmailDomain
}
