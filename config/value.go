package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/mpq-cli/mpq/icon"
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/player"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var ErrUnknownKey = errors.New("unknown key")

var moduleName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// checks reject values mplayer or mpq would choke on later.
var checks = map[string]func(v any) error{
	key.PlayerRemoteHost: func(v any) error {
		if strings.HasPrefix(v.(string), "-") {
			return fmt.Errorf("%w: host %q looks like a flag", player.ErrUnsafeTarget, v)
		}
		return nil
	},
	key.PlayerDisplay: func(v any) error {
		if strings.ContainsAny(v.(string), " \t\n") {
			return fmt.Errorf("display %q contains whitespace", v)
		}
		return nil
	},
	key.PlayerModules: func(v any) error {
		for _, m := range v.([]string) {
			if !moduleName.MatchString(m) {
				return fmt.Errorf("%q is not an mplayer message module", m)
			}
		}
		return nil
	},
	key.HistoryMaxEntries: func(v any) error {
		if v.(int) < 0 {
			return errors.New("must not be negative")
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("%q is not one of %s", v, strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
}

// Parse converts command line words to the type of k's default and
// checks the result.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownKey, k)
	}

	var v any
	switch field.Value.(type) {
	case []string:
		v = raw
	default:
		if len(raw) != 1 {
			return nil, fmt.Errorf("%s takes a single value, got %d", k, len(raw))
		}
		parsed, err := parseScalar(field, raw[0])
		if err != nil {
			return nil, err
		}
		v = parsed
	}

	if check, ok := checks[k]; ok {
		if err := check(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", k, err)
		}
	}
	return v, nil
}

func parseScalar(field Field, raw string) (any, error) {
	switch field.Value.(type) {
	case string:
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", field.Key, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", field.Key, raw)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%s has an unsupported type", field.Key)
	}
}

// Suggest returns the registered key closest to k.
func Suggest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Section is the part of a key before the first dot.
func Section(k string) string {
	section, _, _ := strings.Cut(k, ".")
	return section
}
