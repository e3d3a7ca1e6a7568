// Command stackvec-demo walks through the stackvec placement strategies:
// a small buffer that lands on the stack, an oversized buffer that falls
// back to the heap, and a buffer of tracked elements whose construction
// and destruction counts balance at release.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/pavanmanishd/stackvec"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// Version information (set during build)
	version = "dev"

	// Command-line flags
	configFile = flag.String("config", os.Getenv("CONFIG_FILE"), "Path to configuration file (optional)")
	logLevel   = flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	logger, err := initLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting stackvec-demo", zap.String("version", version))

	cfg, err := Load(*configFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	stackvec.SetLogger(logger)

	runSmallBuffer(cfg, logger)
	runLargeBuffer(cfg, logger)
	runTrackedLifetime(cfg, logger)

	if cfg.Demo.ShowMetrics {
		dumpMetrics(logger)
	}

	logger.Info("Demo complete")
}

// runSmallBuffer fills a small buffer member-by-member and reads it back,
// the way the inline fast path is meant to be used.
func runSmallBuffer(cfg *Config, logger *zap.Logger) {
	buf := stackvec.MakeWith(cfg.Buffers.SmallCount, stackvec.Options[int]{
		ReserveMargin: cfg.Buffers.ReserveMargin,
	})
	defer buf.Release()

	logger.Info("Small buffer constructed",
		zap.Bool("valid", buf.IsValid()),
		zap.Int("count", buf.Count()),
		zap.Bool("stackResident", buf.IsStackResident()),
	)
	if !buf.IsValid() {
		return
	}

	buf.ForEach(func(member *int, index int) {
		*member = index
	})
	buf.ForEachValue(func(member int, index int) {
		fmt.Printf("member at %d = %d\n", index, member)
	})
}

// runLargeBuffer requests far more than any stack can hold and shows the
// heap fallback behaving identically.
func runLargeBuffer(cfg *Config, logger *zap.Logger) {
	buf := stackvec.Make[int](cfg.Buffers.LargeCount)
	defer buf.Release()

	logger.Info("Large buffer constructed",
		zap.Bool("valid", buf.IsValid()),
		zap.Int("count", buf.Count()),
		zap.Bool("stackResident", buf.IsStackResident()),
		zap.Int("sizeInBytes", buf.SizeInBytes()),
	)
}

// patron is the demo element type with tracked lifetime.
type patron struct {
	ID   uuid.UUID
	Name string
}

// runTrackedLifetime builds a buffer of patrons with construction and
// destruction hooks and shows the counts balancing at release.
func runTrackedLifetime(cfg *Config, logger *zap.Logger) {
	fake := faker.New()
	live := 0

	buf := stackvec.MakeWith(cfg.Buffers.TrackedCount, stackvec.Options[patron]{
		ReserveMargin: cfg.Buffers.ReserveMargin,
		Construct: func(member *patron, index int) {
			live++
			member.ID = uuid.New()
			member.Name = fake.Person().Name()
		},
		Destroy: func(member *patron, index int) {
			live--
		},
	})

	logger.Info("Tracked buffer constructed",
		zap.Int("count", buf.Count()),
		zap.Bool("stackResident", buf.IsStackResident()),
		zap.Int("liveMembers", live),
	)

	// Peek at the first few generated members.
	buf.WhileEachValue(func(member patron, index int) bool {
		fmt.Printf("patron %s: %s\n", member.ID, member.Name)
		return index < 2
	})

	buf.Release()
	logger.Info("Tracked buffer released", zap.Int("liveMembers", live))
}

// dumpMetrics gathers the placement counters through the prometheus
// collector and prints them.
func dumpMetrics(logger *zap.Logger) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(stackvec.NewStatsCollector()); err != nil {
		logger.Error("Failed to register stats collector", zap.Error(err))
		return
	}

	families, err := reg.Gather()
	if err != nil {
		logger.Error("Failed to gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			fmt.Printf("%s%s = %.0f\n", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
}

// initLogger initializes the zap logger based on the log level
func initLogger(level string) (*zap.Logger, error) {
	var config zap.Config

	switch level {
	case "debug":
		config = zap.NewDevelopmentConfig()
	case "info", "warn", "error":
		config = zap.NewProductionConfig()
		config.Level = parseLogLevel(level)
	default:
		config = zap.NewProductionConfig()
	}

	return config.Build()
}

// parseLogLevel parses the log level string
func parseLogLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
