package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compile parses the supplied configuration mapping into validated redirect
// rules and builds the lookup index. It is fail-fast: the first
// configuration error aborts compilation and no index is returned.
//
// The mapping is typically FromEnviron(os.Environ()), but any flat
// key/value mapping works; keys outside the SR_REDIR_ namespace are ignored.
func Compile(env map[string]string) (*Index, error) {
	parsed, err := parseRules(env)
	if err != nil {
		return nil, err
	}
	return buildIndex(parsed)
}

// FromEnviron converts os.Environ() style "KEY=VALUE" entries into the flat
// mapping Compile consumes.
func FromEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			env[key] = value
		}
	}
	return env
}

// parseRules groups the SR_REDIR_* keys by rule name and validates each
// group into a Rule. Rules are returned sorted by name so that error
// selection and index construction do not depend on map iteration order.
func parseRules(env map[string]string) ([]*Rule, error) {
	bases := make(map[string]string)
	options := make(map[string]map[string]string)

	for key, value := range env {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		// Server-level settings (SR_REDIR__HOST and friends) are not rules.
		if strings.HasPrefix(key, serverPrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, EnvPrefix)
		if rest == "" {
			return nil, configErr("", key, ErrEmptyName)
		}
		name, suffix, isOption := strings.Cut(rest, optionSeparator)
		if isOption {
			if options[name] == nil {
				options[name] = make(map[string]string)
			}
			options[name][suffix] = value
		} else {
			bases[name] = value
		}
	}

	names := make([]string, 0, len(bases))
	for name := range bases {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]*Rule, 0, len(names))
	for _, name := range names {
		rule, err := parseRule(name, bases[name], options[name])
		if err != nil {
			return nil, err
		}
		delete(options, name)
		parsed = append(parsed, rule)
	}

	// Whatever is left in options references rules that were never declared
	// through a base key. Silently ignoring these would hide typos, so they
	// abort startup like any other configuration error.
	if len(options) > 0 {
		orphans := make([]string, 0, len(options))
		for name := range options {
			orphans = append(orphans, name)
		}
		sort.Strings(orphans)
		name := orphans[0]
		suffixes := make([]string, 0, len(options[name]))
		for suffix := range options[name] {
			suffixes = append(suffixes, suffix)
		}
		sort.Strings(suffixes)
		key := EnvPrefix + name + optionSeparator + suffixes[0]
		return nil, configErr(name, key, ErrOrphanOption)
	}

	return parsed, nil
}

// parseRule validates one rule group: the base key's source list plus the
// recognized option suffixes, with documented defaults for omitted options.
func parseRule(name, rawSources string, opts map[string]string) (*Rule, error) {
	baseKey := EnvPrefix + name

	rule := &Rule{
		Name: name,
		Code: DefaultCode,
	}

	for _, path := range strings.Split(rawSources, ",") {
		if path == "" {
			return nil, configErr(name, baseKey, ErrEmptySources)
		}
		if !strings.HasPrefix(path, "/") {
			return nil, configErr(name, baseKey, fmt.Errorf("%w: %q", ErrInvalidSourcePath, path))
		}
		rule.Sources = append(rule.Sources, path)
	}

	suffixes := make([]string, 0, len(opts))
	for suffix := range opts {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)

	for _, suffix := range suffixes {
		key := baseKey + optionSeparator + suffix
		value := opts[suffix]

		switch suffix {
		case optionTarget:
			rule.Target = value

		case optionCode:
			code, err := strconv.Atoi(value)
			if err != nil || !redirectCodes[code] {
				return nil, configErr(name, key, fmt.Errorf("%w: %q", ErrInvalidCode, value))
			}
			rule.Code = code

		case optionJSOnly:
			parsed, err := parseRuleBool(value)
			if err != nil {
				return nil, configErr(name, key, fmt.Errorf("%w: %q", err, value))
			}
			rule.JSOnly = parsed

		case optionPreserveParams:
			parsed, err := parseRuleBool(value)
			if err != nil {
				return nil, configErr(name, key, fmt.Errorf("%w: %q", err, value))
			}
			rule.PreserveParams = parsed

		default:
			return nil, configErr(name, key, ErrUnknownOption)
		}
	}

	if rule.Target == "" {
		return nil, configErr(name, baseKey+optionSeparator+optionTarget, ErrMissingTarget)
	}

	return rule, nil
}

// buildIndex flattens every rule's sources into direct path entries,
// enforcing the global invariants: unique rule names and no source path
// claimed by more than one rule (including twice by the same rule).
func buildIndex(parsed []*Rule) (*Index, error) {
	byName := make(map[string]*Rule, len(parsed))
	byPath := make(map[string]*Rule)

	for _, rule := range parsed {
		if _, exists := byName[rule.Name]; exists {
			return nil, configErr(rule.Name, "", ErrDuplicateName)
		}
		byName[rule.Name] = rule

		for _, path := range rule.Sources {
			if owner, exists := byPath[path]; exists {
				return nil, configErr(rule.Name, "",
					fmt.Errorf("%w: %q already belongs to rule %q", ErrDuplicateSource, path, owner.Name))
			}
			byPath[path] = rule
		}
	}

	return &Index{byPath: byPath, rules: parsed}, nil
}
