package mongo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/logistics-id/simplemongo/common"
)

// EnvPrefix is the environment prefix read by LoadOptions when none is given.
const EnvPrefix = "MONGODB_"

const defaultCtxTimeout = 10 * time.Second

var validate = validator.New()

// Credentials are spliced into the connection URI before the client is built.
type Credentials struct {
	Username string `validate:"required"`
	Password string
}

// Options describes one store handle: where to connect and which collection to bind.
type Options struct {
	URI            string `validate:"required"`
	DatabaseName   string `validate:"required"`
	CollectionPath string `validate:"required"`
	Credentials    *Credentials

	// IDField is the document field holding the record identifier. Defaults to "_id".
	IDField string

	// CtxTimeout bounds Connect when the caller's context has no deadline.
	CtxTimeout time.Duration `validate:"gte=0"`
}

// NewOptions builds Options; creds may be nil.
func NewOptions(uri, database, collection string, creds *Credentials) Options {
	return Options{
		URI:            uri,
		DatabaseName:   database,
		CollectionPath: collection,
		Credentials:    creds,
	}
}

// NewCredentials returns credentials for the given user.
func NewCredentials(username, password string) *Credentials {
	return &Credentials{Username: username, Password: password}
}

// Validate reports missing or malformed fields.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidOptions, err)
	}
	return nil
}

// setDefault fills in defaults if not explicitly provided.
func (o *Options) setDefault() {
	if o.IDField == "" {
		o.IDField = ID
	}
	if o.CtxTimeout == 0 {
		o.CtxTimeout = defaultCtxTimeout
	}
}

type envOptions struct {
	URI          string        `koanf:"uri"`
	Database     string        `koanf:"database"`
	Collection   string        `koanf:"collection"`
	IDField      string        `koanf:"id_field"`
	AuthUsername string        `koanf:"auth_username"`
	AuthPassword string        `koanf:"auth_password"`
	CtxTimeout   time.Duration `koanf:"ctx_timeout"`
}

// ReadOptions reads Options from environment variables carrying the given prefix
// (EnvPrefix when empty), e.g. MONGODB_URI, MONGODB_DATABASE, MONGODB_COLLECTION,
// MONGODB_ID_FIELD, MONGODB_AUTH_USERNAME, MONGODB_AUTH_PASSWORD, MONGODB_CTX_TIMEOUT.
// Credentials are set only when a username is present. The result is not validated,
// so callers can still fill in missing fields; an error means the environment itself
// could not be read or decoded.
func ReadOptions(prefix string) (Options, error) {
	if prefix == "" {
		prefix = EnvPrefix
	}

	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		return Options{}, fmt.Errorf("mongo: load env %s*: %w", prefix, err)
	}

	var eo envOptions
	if err := k.Unmarshal("", &eo); err != nil {
		return Options{}, fmt.Errorf("mongo: decode env %s*: %w", prefix, err)
	}

	opts := Options{
		URI:            eo.URI,
		DatabaseName:   eo.Database,
		CollectionPath: eo.Collection,
		IDField:        eo.IDField,
		CtxTimeout:     eo.CtxTimeout,
	}
	if eo.AuthUsername != "" {
		opts.Credentials = NewCredentials(eo.AuthUsername, eo.AuthPassword)
	}

	return opts, nil
}

// LoadOptions is ReadOptions followed by Validate.
func LoadOptions(prefix string) (Options, error) {
	opts, err := ReadOptions(prefix)
	if err != nil {
		return Options{}, err
	}
	return opts, opts.Validate()
}

// AddCredentialsToURL returns uri with user:password@ placed right after the scheme
// separator. The authority is split out of the URI first, so an existing userinfo is
// replaced rather than duplicated, and both parts are percent-escaped.
//
//	AddCredentialsToURL("mongodb://host:27017", "u", "p") // "mongodb://u:p@host:27017"
func AddCredentialsToURL(uri, user, password string) (string, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || scheme == "" {
		return "", fmt.Errorf("%w: %q has no scheme separator", common.ErrInvalidURI, uri)
	}

	authority, tail := rest, ""
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		authority, tail = rest[:i], rest[i:]
	}
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}

	userinfo := url.UserPassword(user, password).String()

	return scheme + "://" + userinfo + "@" + authority + tail, nil
}
