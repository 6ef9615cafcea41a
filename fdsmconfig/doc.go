// Package fdsmconfig defines the Config value the core consumes, per §6:
// "the core consumes a populated config struct." Parsing the CLI option
// table of §6 into a Config is the out-of-scope collaborator's job; this
// package only defines the struct's shape and an optional file/env loader
// for it, grounded on junjiewwang-perf-analysis/pkg/config's use of
// github.com/spf13/viper with mapstructure tags.
//
// Config is an immutable snapshot once built: components receive a *Config
// at construction and never mutate it, following the teacher's redesign
// note in spec.md §9 ("pass an immutable Config value... by reference into
// every component at construction; no module-level mutables").
package fdsmconfig
