// Command inputkit-demo drives an inputkit.Kit from the terminal, standing in
// for the email search page.
//
// Every stdin line is one event:
//
//	submit subject=Hi sender=a@b.com recipient=c@d.com content=Hello
//	notify success Saved
//	invoice            (anything else is the search box contents)
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	inputkit "github.com/romdo/go-inputkit"
	"github.com/romdo/go-inputkit/internal/config"
	"github.com/romdo/go-inputkit/internal/logging"
	"github.com/romdo/go-inputkit/notify"
	"github.com/romdo/go-inputkit/validate"
)

// shutdownGrace covers timer latency past the debounce window at EOF.
const shutdownGrace = 50 * time.Millisecond

func main() {
	boot := logging.BootstrapLogger("inputkit-demo")

	fs := pflag.NewFlagSet("inputkit-demo", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs, boot)
	if err != nil {
		boot.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.BuildLogger("inputkit-demo", cfg.LogLevel, cfg.Env)
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config", zap.String("dump", cfg.Dump()))

	kit := inputkit.Init(inputkit.Hooks{
		Renderer: notify.LogRenderer(logger.Named("toast")),
		Search: func(query string) {
			logger.Info("searching for", zap.String("query", query))
		},
		Logger: logger,
	}, cfg.Kit)

	if err := run(os.Stdin, kit, logger); err != nil {
		logger.Error("reading input failed", zap.Error(err))
	}

	// Let a pending search fire, Close then waits for it to finish.
	time.Sleep(cfg.Kit.SearchWait + shutdownGrace)
	kit.Close()
}

// handler is the part of *inputkit.Kit driven by run.
type handler interface {
	Submit(values validate.Values) bool
	Notify(message string, severity notify.Severity)
	SearchInput(query string)
}

func run(in io.Reader, h handler, logger *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := dispatch(scanner.Text(), h); err != nil {
			logger.Warn("ignoring line", zap.Error(err))
		}
	}

	return scanner.Err()
}

func dispatch(line string, h handler) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")

	switch cmd {
	case "submit":
		values, err := parseValues(rest)
		if err != nil {
			return err
		}
		if h.Submit(values) {
			h.Notify("Email added successfully", notify.Success)
		}
	case "notify":
		name, message, _ := strings.Cut(strings.TrimSpace(rest), " ")
		severity, err := notify.ParseSeverity(name)
		if err != nil {
			return err
		}
		h.Notify(message, severity)
	default:
		h.SearchInput(line)
	}

	return nil
}

// parseValues parses space separated key=value pairs. Underscores in values
// stand for spaces.
func parseValues(s string) (validate.Values, error) {
	values := validate.Values{}
	for _, pair := range strings.Fields(s) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed field %q, want key=value", pair)
		}
		values[key] = strings.ReplaceAll(value, "_", " ")
	}

	return values, nil
}
