// Package inputkit wires the input helpers of the email search page: toast
// notifications, submission validation and debounced search input.
//
// A host calls Init once with its own hooks and binds the returned Kit's
// methods to its elements. Nothing is registered globally.
package inputkit

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/romdo/go-inputkit/debounce"
	"github.com/romdo/go-inputkit/notify"
	"github.com/romdo/go-inputkit/validate"
)

// Config holds the tunables of a Kit.
type Config struct {
	// SearchWait is the quiet period before a search input is dispatched.
	SearchWait time.Duration `mapstructure:"search_wait"`
	// MinQueryLength is the shortest trimmed query, in characters, that is
	// passed on to the search hook.
	MinQueryLength int `mapstructure:"min_query_length"`
	// ToastDuration is how long notifications stay visible.
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	// Strict validates every field of a submission and both addresses.
	// Otherwise only the content is required.
	Strict bool `mapstructure:"strict"`
}

// DefaultConfig returns the settings used by the search page.
func DefaultConfig() Config {
	return Config{
		SearchWait:     300 * time.Millisecond,
		MinQueryLength: 2,
		ToastDuration:  notify.DefaultDuration,
		Strict:         true,
	}
}

// Hooks are the host's side of the wiring.
type Hooks struct {
	// Renderer shows toasts. Nil means a fresh notify.Board.
	Renderer notify.Renderer
	// Search receives debounced queries. Nil drops them.
	Search func(query string)
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Kit is the set of handlers returned by Init.
type Kit struct {
	cfg       Config
	logger    *zap.Logger
	renderer  notify.Renderer
	notifier  *notify.Notifier
	validator *validate.Validator
	search    func(query string)

	debounced    func(string)
	cancelSearch func()

	mux       sync.Mutex
	closed    bool
	searching sync.WaitGroup
}

// Init builds a Kit from hooks and cfg.
func Init(hooks Hooks, cfg Config) *Kit {
	logger := hooks.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := hooks.Renderer
	if renderer == nil {
		renderer = notify.NewBoard()
	}

	k := &Kit{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		search:   hooks.Search,
	}

	k.notifier = notify.New(renderer,
		notify.WithDuration(cfg.ToastDuration),
		notify.WithLogger(logger.Named("notify")),
	)
	k.validator = validate.New(validate.SchemaFor(cfg.Strict), k.notifier)
	k.debounced, k.cancelSearch = debounce.New(cfg.SearchWait, k.dispatchSearch)

	logger.Info("inputkit initialized",
		zap.Duration("search_wait", cfg.SearchWait),
		zap.Int("min_query_length", cfg.MinQueryLength),
		zap.Bool("strict", cfg.Strict),
	)

	return k
}

// Renderer returns the renderer toasts are mounted on.
func (k *Kit) Renderer() notify.Renderer {
	return k.renderer
}

// Notify shows a toast.
func (k *Kit) Notify(message string, severity notify.Severity) {
	k.notifier.Notify(message, severity)
}

// Validate checks a submission, showing an error toast on failure.
func (k *Kit) Validate(values validate.Values) bool {
	return k.validator.Validate(values)
}

// Submit is the form submission handler. A false result means the host must
// block the submission.
func (k *Kit) Submit(values validate.Values) bool {
	if err := k.validator.Check(values); err != nil {
		k.logger.Debug("submission blocked", zap.Error(err))
		return false
	}

	return true
}

// SearchInput is the search box input handler. The query reaches the search
// hook once the input has been quiet for SearchWait.
func (k *Kit) SearchInput(query string) {
	k.debounced(query)
}

// Close cancels a pending search, waits for a search hook that is already
// running, and retracts every visible toast. Searches never start after
// Close.
func (k *Kit) Close() {
	k.cancelSearch()

	k.mux.Lock()
	k.closed = true
	k.mux.Unlock()

	k.searching.Wait()
	k.notifier.Close()
}

func (k *Kit) dispatchSearch(query string) {
	k.mux.Lock()
	if k.closed {
		k.mux.Unlock()
		return
	}
	k.searching.Add(1)
	k.mux.Unlock()
	defer k.searching.Done()

	// Length is counted in characters of the trimmed query: padding doesn't
	// count and a multi-byte character counts once.
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < k.cfg.MinQueryLength {
		k.logger.Debug("search query too short", zap.String("query", query))
		return
	}

	k.logger.Debug("searching", zap.String("query", query))
	if k.search != nil {
		k.search(query)
	}
}
