package constgen

import "strings"

// Defaults reproduce the fixed paths the build historically used.
const (
	DefaultInput  = "input_consts_config.txt"
	DefaultOutput = "src/input/input_consts.rs"

	LangRust = "rust"
	LangGo   = "go"
)

// Options control constant-table generation.
//
// Input   – directive file to read
// Output  – generated source file to write (truncated on every run)
// Lang    – output dialect, "rust" (default) or "go"
// Package – package clause for the Go dialect; derived from the output
//           directory when empty. Ignored for Rust output.
type Options struct {
	Input   string `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty" mapstructure:"output,omitempty"`
	Lang    string `json:"lang,omitempty" yaml:"lang,omitempty" toml:"lang,omitempty" mapstructure:"lang,omitempty"`
	Package string `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty" mapstructure:"package,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Lang:   LangRust,
	}
}

func (o *Options) Normalize() {
	if len(o.Input) == 0 {
		o.Input = DefaultInput
	}
	if len(o.Output) == 0 {
		o.Output = DefaultOutput
	}
	o.Lang = strings.ToLower(strings.TrimSpace(o.Lang))
	if o.Lang == "" {
		o.Lang = LangRust
	}
	if o.Lang != LangRust && o.Lang != LangGo {
		panic("unknown output lang: " + o.Lang)
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(p string) Option   { return func(o *Options) { o.Input = p } }
func WithOutput(p string) Option  { return func(o *Options) { o.Output = p } }
func WithLang(l string) Option    { return func(o *Options) { o.Lang = l } }
func WithPackage(p string) Option { return func(o *Options) { o.Package = p } }
