package namer

import (
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/dmitrymomot/namer/pkg/file"
	"github.com/dmitrymomot/namer/pkg/logger"
)

// Namer generates filenames according to a configured default strategy and
// per-strategy default options. It is immutable after New and safe for
// concurrent use.
type Namer struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Namer.
type Option func(*Namer)

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Namer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithClock overrides the time source used by the timestamp and date strategies.
func WithClock(now func() time.Time) Option {
	return func(n *Namer) {
		if now != nil {
			n.now = now
		}
	}
}

// New creates a Namer from cfg. The configuration is copied.
func New(cfg Config, opts ...Option) *Namer {
	n := &Namer{
		cfg:    cfg.clone(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(logger.Component("namer"))
	return n
}

// Config returns a copy of the Namer's configuration.
func (n *Namer) Config() Config {
	return n.cfg.clone()
}

// Request describes a single generation call. Nil fields fall back to the
// Namer's configuration.
type Request struct {
	Name      *string   `json:"name,omitempty"`
	Extension *string   `json:"extension,omitempty"`
	Strategy  *Strategy `json:"strategy,omitempty"`
	Options   Options   `json:"options,omitempty"`
}

// MakeOption sets a field of a Request.
type MakeOption func(*Request)

// WithName sets the original filename, without extension.
func WithName(name string) MakeOption {
	return func(r *Request) { r.Name = &name }
}

// WithExtension sets the extension. A leading dot is ignored.
func WithExtension(ext string) MakeOption {
	return func(r *Request) { r.Extension = &ext }
}

// WithStrategy selects the strategy for this call.
func WithStrategy(s Strategy) MakeOption {
	return func(r *Request) { r.Strategy = &s }
}

// WithOptions overlays call options on the strategy's configured defaults.
// Repeated calls merge, later keys win. A nil value resets a key to the
// strategy's built-in default.
func WithOptions(opts Options) MakeOption {
	return func(r *Request) {
		if r.Options == nil {
			r.Options = make(Options, len(opts))
		}
		for k, v := range opts {
			r.Options[k] = v
		}
	}
}

// WithOption sets a single call option.
func WithOption(key string, value any) MakeOption {
	return WithOptions(Options{key: value})
}

// Make generates a filename. Unset request fields fall back to the configured
// defaults and unknown strategies return "<name>.<extension>" unchanged.
//
// Example:
//
//	n := namer.New(namer.DefaultConfig())
//	name, err := n.Make(
//		namer.WithName("report"),
//		namer.WithExtension("pdf"),
//		namer.WithStrategy(namer.StrategyNumbered),
//		namer.WithOption(namer.KeyNumber, 3),
//	)
//	// name == "report_3.pdf"
func (n *Namer) Make(opts ...MakeOption) (string, error) {
	var req Request
	for _, opt := range opts {
		opt(&req)
	}
	return n.MakeRequest(req)
}

// MakeRequest is Make for a prepared Request.
func (n *Namer) MakeRequest(req Request) (string, error) {
	strategy, name, ext, opts := n.resolve(req)
	return n.generate(strategy, name, ext, opts)
}

// MakeFromFilename generates a name for an uploaded filename such as
// "../My Photo.JPG". The filename is sanitized and split into name and
// extension; explicit WithName/WithExtension options still take precedence.
func (n *Namer) MakeFromFilename(filename string, opts ...MakeOption) (string, error) {
	name, ext := file.SplitName(file.SanitizeFilename(filename))
	base := []MakeOption{WithName(name)}
	if ext != "" {
		base = append(base, WithExtension(ext))
	}
	return n.Make(append(base, opts...)...)
}

// MakeFromHeader is MakeFromFilename for a multipart upload.
func (n *Namer) MakeFromHeader(fh *multipart.FileHeader, opts ...MakeOption) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}
	return n.MakeFromFilename(fh.Filename, opts...)
}

// resolve applies configuration defaults to req.
func (n *Namer) resolve(req Request) (Strategy, string, string, Options) {
	strategy := n.cfg.DefaultStrategy
	if req.Strategy != nil {
		strategy = *req.Strategy
	}
	name := n.cfg.DefaultFilename
	if req.Name != nil {
		name = *req.Name
	}
	ext := n.cfg.DefaultExtension
	if req.Extension != nil {
		ext = *req.Extension
	}

	opts := n.cfg.Options[strategy]
	if req.Options != nil {
		opts = merge(opts, req.Options)
	}
	return strategy, name, ext, opts
}

// generate runs a strategy, applies affixes and appends the extension.
func (n *Namer) generate(strategy Strategy, name, ext string, opts Options) (string, error) {
	fn, known := lookup(strategy)
	if !known {
		n.logger.Debug("unknown strategy, keeping original name", logger.Strategy(string(strategy)))
	}

	base, err := fn(n, name, opts)
	if err != nil {
		n.logger.Warn("filename generation failed",
			logger.Strategy(string(strategy)),
			logger.Filename(name),
			logger.Error(err),
		)
		return "", err
	}

	usePrefix, useSuffix := affixes(strategy, known)
	return withExtension(compose(base, opts, usePrefix, useSuffix), ext), nil
}

func withExtension(base, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// Random returns "<random>.<ext>" with "length" characters (default 16).
func (n *Namer) Random(ext string, opts Options) (string, error) {
	return n.generate(StrategyRandom, "", ext, opts)
}

// UUID returns "<uuid v4>.<ext>".
func (n *Namer) UUID(ext string, opts Options) (string, error) {
	return n.generate(StrategyUUID, "", ext, opts)
}

// Timestamp returns "<now>_<name>.<ext>", formatted with "format" (default Y-m-d_H-i-s).
func (n *Namer) Timestamp(name, ext string, opts Options) (string, error) {
	return n.generate(StrategyTimestamp, name, ext, opts)
}

// Date returns "<today>_<name>.<ext>", formatted with "format" (default Y-m-d).
func (n *Namer) Date(name, ext string, opts Options) (string, error) {
	return n.generate(StrategyDate, name, ext, opts)
}

// Prefix returns "<prefix><name>.<ext>". The "prefix" option is required.
func (n *Namer) Prefix(name, ext string, opts Options) (string, error) {
	return n.generate(StrategyPrefix, name, ext, opts)
}

// Suffix returns "<name><suffix>.<ext>". The "suffix" option is required.
func (n *Namer) Suffix(name, ext string, opts Options) (string, error) {
	return n.generate(StrategySuffix, name, ext, opts)
}

// Numbered returns "<name>_<number>.<ext>" (number defaults to 1).
func (n *Namer) Numbered(name, ext string, opts Options) (string, error) {
	return n.generate(StrategyNumbered, name, ext, opts)
}

// Slug returns the slugified name with ext.
func (n *Namer) Slug(name, ext string, opts Options) (string, error) {
	return n.generate(StrategySlug, name, ext, opts)
}

// Hash returns the hex digest of name with ext, using "algorithm" (default sha256).
func (n *Namer) Hash(name, ext string, opts Options) (string, error) {
	return n.generate(StrategyHash, name, ext, opts)
}
