// SPDX-License-Identifier: MIT

package airline

import "github.com/rs/zerolog"

// Option configures a manager at construction time.
type Option func(*settings)

type settings struct {
	logger   zerolog.Logger
	capacity int
}

func defaultSettings() settings {
	return settings{logger: zerolog.Nop()}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithLogger sets the logger a manager writes to. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithCapacity sets the number of airport slots of a RouteNetwork.
// Other managers ignore it. Values < 1 keep core.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(s *settings) { s.capacity = n }
}
