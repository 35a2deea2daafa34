package humdrum

// Option configures parsing.
type Option interface{ apply(*parseOptions) }

type parseOptions struct {
	csv       bool
	separator string
}

type optionFunc func(*parseOptions)

func (f optionFunc) apply(cfg *parseOptions) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithCSV switches tokenization to the comma-delimited variant of the record
// structure. All structural analysis is identical to the tab-delimited form.
func WithCSV() Option {
	return optionFunc(func(cfg *parseOptions) {
		cfg.csv = true
	})
}

// WithCSVSeparator sets the CSV field separator and implies WithCSV. The
// default separator is ",".
func WithCSVSeparator(separator string) Option {
	return optionFunc(func(cfg *parseOptions) {
		cfg.csv = true
		cfg.separator = separator
	})
}

func applyOptions(opts []Option) parseOptions {
	cfg := parseOptions{separator: ","}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&cfg)
		}
	}
	return cfg
}
