package yijing

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/yijing-go/yijing/internal/corpus"
	"github.com/yijing-go/yijing/internal/logging"
	"github.com/yijing-go/yijing/pkg/divination"
	"github.com/yijing-go/yijing/pkg/interpret"
)

// Version is the library and CLI version.
const Version = "0.3.0"

// Oracle is the high-level entry point: it bundles the reference store,
// the random caster and the input interpreter behind one Reading call.
type Oracle struct {
	store  *corpus.Store
	caster *divination.Caster
	interp *interpret.Interpreter
	logger *slog.Logger
	source rand.Source
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithLogger sets a structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Oracle) {
		o.logger = logger
	}
}

// WithSource injects the random source used for casting. Tests pass a
// fixed-seed source to make casts reproducible.
func WithSource(src rand.Source) Option {
	return func(o *Oracle) {
		o.source = src
	}
}

// New loads the embedded reference data and prepares an Oracle.
func New(opts ...Option) (*Oracle, error) {
	o := &Oracle{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	store, err := corpus.Load()
	if err != nil {
		return nil, err
	}
	o.store = store
	o.caster = divination.NewCaster(o.source)
	o.interp = interpret.New(store)
	return o, nil
}

// Reading resolves input text into a reading, or casts a random figure
// when input is empty. question may be empty.
func (o *Oracle) Reading(input, question string) (*divination.Reading, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		h := o.caster.Cast()
		o.logger.Debug("cast figure", "hexagram", h.Number(), "changing", h.ChangingPositions())
		return divination.NewReading(h, question), nil
	}

	h, err := o.interp.Resolve(input)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("resolved input", "input", input, "hexagram", h.Number(), "changing", h.ChangingPositions())
	return divination.NewReading(h, question), nil
}

// Corpus exposes the reference store for presentation.
func (o *Oracle) Corpus() *corpus.Store {
	return o.store
}
