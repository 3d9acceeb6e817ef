package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-sim/api"
	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/simulation"
)

func main() {
	cfg := config.GetSchedulerConfig()
	configureLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeServer:
		serve(ctx, cfg)
	case config.ModeCLI:
		if err := runConsole(ctx, cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown mode %q, expected %q or %q", cfg.Mode, config.ModeCLI, config.ModeServer)
	}
}

func configureLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("log_level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func serve(ctx context.Context, cfg *config.SchedulerConfig) {
	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("shutting down server")
		}
	}()

	log.WithField("port", cfg.Port).Info("listening")
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalln(err)
	}
}

func runConsole(ctx context.Context, cfg *config.SchedulerConfig, in io.Reader, out io.Writer) error {
	n := cfg.ProcessCount
	if n > 0 {
		if err := requests.ValidateProcessCount(n, cfg.MaxProcessCount); err != nil {
			return err
		}
	} else {
		var err error
		if n, err = promptProcessCount(in, out, cfg.MaxProcessCount); err != nil {
			return err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	console := report.NewConsole(out)
	events := &core.EventLog{}
	sim := simulation.New(cfg.TimeUnit, core.MultiSink{console, events})

	results := make([]responses.ScheduleResponse, 0, 3)
	sim.AfterRun = func(run *schedulers.RunState) {
		res := schedulers.GenerateResponse(run, nil)
		results = append(results, res)
		report.PrintAverages(out, res)
		report.PrintDetails(out, res)
	}

	console.Heading("Creating Processes...")
	if _, err := sim.RunAll(ctx, n, seed); err != nil {
		return err
	}
	report.PrintComparison(out, results)
	return nil
}

func promptProcessCount(in io.Reader, out io.Writer, maxCount int) (int, error) {
	_, _ = fmt.Fprint(out, "Enter number of processes: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
		return 0, fmt.Errorf("%w: reading from terminal: %v", requests.ErrInvalidProcessCount, err)
	}
	return requests.ParseProcessCount(line, maxCount)
}
