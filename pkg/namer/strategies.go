package namer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/slug"
)

// Built-in strategy defaults.
const (
	DefaultRandomLength    = 16
	MaxRandomLength        = 255
	DefaultTimestampFormat = "Y-m-d_H-i-s"
	DefaultDateFormat      = "Y-m-d"
	DefaultNumber          = 1
	DefaultNumberSeparator = "_"
	DefaultSlugSeparator   = "-"
	DefaultHashAlgorithm   = "sha256"
)

// alphanumeric is the alphabet used by the random strategy.
const alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func passThrough(_ *Namer, name string, _ Options) (string, error) {
	return name, nil
}

func randomBase(n *Namer, _ string, opts Options) (string, error) {
	length := opts.intOr(KeyLength, DefaultRandomLength)
	switch {
	case length <= 0:
		n.logger.Debug("non-positive random length, using default",
			logger.Strategy(string(StrategyRandom)),
			slog.Int("length", length),
		)
		length = DefaultRandomLength
	case length > MaxRandomLength:
		n.logger.Debug("random length too large, clamping",
			logger.Strategy(string(StrategyRandom)),
			slog.Int("length", length),
			slog.Int("max", MaxRandomLength),
		)
		length = MaxRandomLength
	}
	id, err := gonanoid.Generate(alphanumeric, length)
	if err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return id, nil
}

func uuidBase(_ *Namer, _ string, _ Options) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return id.String(), nil
}

func timestampBase(n *Namer, name string, opts Options) (string, error) {
	format := opts.stringOr(KeyFormat, DefaultTimestampFormat)
	return formatTime(n.now(), format) + "_" + name, nil
}

func dateBase(n *Namer, name string, opts Options) (string, error) {
	format := opts.stringOr(KeyFormat, DefaultDateFormat)
	return formatTime(n.now(), format) + "_" + name, nil
}

func prefixBase(_ *Namer, name string, opts Options) (string, error) {
	prefix, ok := opts.String(KeyPrefix)
	if !ok {
		return "", errors.Join(ErrInvalidOption, errors.New(`prefix strategy requires a non-null "prefix" option`))
	}
	return prefix + name, nil
}

func suffixBase(_ *Namer, name string, opts Options) (string, error) {
	suffix, ok := opts.String(KeySuffix)
	if !ok {
		return "", errors.Join(ErrInvalidOption, errors.New(`suffix strategy requires a non-null "suffix" option`))
	}
	return name + suffix, nil
}

// numberedBase keeps string numbers verbatim ("08" stays "08").
func numberedBase(_ *Namer, name string, opts Options) (string, error) {
	sep := opts.stringOr(KeySeparator, DefaultNumberSeparator)
	if s, ok := opts[KeyNumber].(string); ok {
		return name + sep + s, nil
	}
	number := opts.intOr(KeyNumber, DefaultNumber)
	return fmt.Sprintf("%s%s%d", name, sep, number), nil
}

func slugBase(_ *Namer, name string, opts Options) (string, error) {
	sep := opts.stringOr(KeySeparator, DefaultSlugSeparator)
	return slug.Make(name, slug.Separator(sep)), nil
}

func hashBase(_ *Namer, name string, opts Options) (string, error) {
	algorithm := DefaultHashAlgorithm
	if raw, set := opts.value(KeyAlgorithm); set {
		s, ok := opts.String(KeyAlgorithm)
		if !ok {
			return "", errors.Join(ErrInvalidOption, fmt.Errorf("hash algorithm must be a string, got %T", raw))
		}
		algorithm = s
	}
	sum, ok := digestHex(algorithm, name)
	if !ok {
		return "", errors.Join(ErrInvalidOption, fmt.Errorf("unsupported hash algorithm %q", algorithm))
	}
	if length, ok := opts.Int(KeyLength); ok && length > 0 && length < len(sum) {
		sum = sum[:length]
	}
	return sum, nil
}
