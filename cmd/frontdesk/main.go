package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"oceandesk/internal/app"
	"oceandesk/internal/config"
	"oceandesk/internal/domain"
	"oceandesk/internal/gateway"
	"oceandesk/internal/logging"
	"oceandesk/internal/metrics"
	"oceandesk/internal/models"
	"oceandesk/internal/session"
	"oceandesk/internal/ui"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, rooms, logger, closer, loadErr := loadConfigAndLogger()
	if loadErr != nil {
		return loadErr
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	if err := prepareDirectories(cfg, &logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := initTokenStore(ctx, cfg, &logger)
	if err != nil {
		return err
	}
	defer cleanup()

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		go serveMetrics(cfg.Monitoring.PrometheusPort, &logger)
	}

	surface := ui.NewTerm(os.Stdout, navTargets())
	client := gateway.NewClient(cfg.Server.BaseURL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second, store, &logger)
	api := gateway.NewAPI(client)

	desk, err := app.New(surface, store, api, time.Duration(cfg.UI.ToastWindowMs)*time.Millisecond, &logger)
	if err != nil {
		return err
	}

	logger.Info().Str("server", cfg.Server.BaseURL).Msg("front desk client started")
	desk.Init(ctx)

	return runConsole(ctx, desk, rooms)
}

func loadConfigAndLogger() (*config.Config, []models.Room, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, zerolog.Logger{}, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, nil, zerolog.Logger{}, nil, err
	}
	logger := baseLogger.With().Str("component", "frontdesk-main").Logger()

	roomsPath := os.Getenv("ROOMS_PATH")
	if roomsPath == "" {
		roomsPath = "configs/rooms.yaml"
	}
	roomsData, err := os.ReadFile(roomsPath)
	if err != nil {
		logger.Error().Err(err).Msgf("Ошибка чтения %s", roomsPath)
		return nil, nil, zerolog.Logger{}, closer, err
	}

	var roomsConfig struct {
		Rooms []models.Room `yaml:"rooms"`
	}
	if err := yaml.Unmarshal(roomsData, &roomsConfig); err != nil {
		logger.Error().Err(err).Msg("Ошибка парсинга rooms.yaml")
		return nil, nil, zerolog.Logger{}, closer, err
	}

	if err := config.ValidateRooms(roomsConfig.Rooms); err != nil {
		logger.Error().Err(err).Msg("Rooms validation failed")
		return nil, nil, zerolog.Logger{}, closer, err
	}

	return cfg, roomsConfig.Rooms, logger, closer, nil
}

func prepareDirectories(cfg *config.Config, logger *zerolog.Logger) error {
	if cfg == nil {
		return os.ErrInvalid
	}
	if cfg.Session.Store == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Session.Path), 0o755); err != nil {
			logger.Error().Err(err).Msg("Ошибка создания директории для хранилища сессии")
			return err
		}
	}
	return nil
}

// initTokenStore builds the configured token store. The redis store always
// gets an in-memory fallback so a Redis outage degrades instead of failing.
func initTokenStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (domain.TokenStore, func(), error) {
	switch cfg.Session.Store {
	case "memory":
		return session.NewMemoryStore(), func() {}, nil

	case "redis":
		client := session.NewRedisClient(cfg.Redis)
		if err := session.Ping(ctx, client); err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable")
		}
		primary := session.NewRedisStore(client, cfg.Session.Slot)
		store := session.NewFailoverStore(primary, session.NewMemoryStore(), logger)
		return store, func() { _ = session.Close(client) }, nil

	default:
		store, err := session.NewSQLiteStore(cfg.Session.Path, cfg.Session.Slot)
		if err != nil {
			logger.Error().Err(err).Msg("Ошибка инициализации хранилища сессии")
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}

func serveMetrics(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("metrics endpoint started")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("metrics endpoint error")
	}
}

func navTargets() []string {
	var targets []string
	for _, page := range models.Pages() {
		targets = append(targets, string(page))
	}
	return targets
}

// runConsole drives the client from stdin until EOF, quit or a signal.
func runConsole(ctx context.Context, desk *app.App, rooms []models.Room) error {
	lines := make(chan string)
	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	console := &console{desk: desk, rooms: rooms, lines: lines}
	fmt.Println(`Commands: go <page> | rates | login | logout | add | find <number> | bill <number> | help | quit`)

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := console.dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

type console struct {
	desk  *app.App
	rooms []models.Room
	lines chan string
}

func (c *console) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "quit", "exit":
		return true
	case "go":
		if len(args) == 0 {
			fmt.Println("usage: go <page>")
			return false
		}
		c.desk.Navigate(args[0])
	case "rates":
		c.desk.Navigate(string(models.PageDashboard))
		c.desk.RefreshRates(ctx)
	case "login":
		c.login(ctx)
	case "logout":
		c.desk.Logout(ctx)
	case "add":
		c.addReservation(ctx)
	case "find":
		c.desk.Navigate(string(models.PageViewReservation))
		c.desk.LookupReservation(ctx, strings.Join(args, " "))
	case "bill":
		c.desk.Navigate(string(models.PageBill))
		c.desk.ComputeBill(ctx, strings.Join(args, " "))
	case "help":
		c.desk.Navigate(string(models.PageHelp))
	default:
		fmt.Printf("unknown command %q\n", command)
	}
	return false
}

func (c *console) login(ctx context.Context) {
	username := c.prompt("username: ")
	password := c.promptPassword("password: ")
	c.desk.SubmitLogin(ctx, username, password)
}

func (c *console) addReservation(ctx context.Context) {
	c.desk.Navigate(string(models.PageAddReservation))

	values := map[string]string{
		"reservationNumber": c.prompt("reservation number: "),
		"guestName":         c.prompt("guest name: "),
		"address":           c.prompt("address: "),
		"contactNumber":     c.prompt("contact number: "),
		"roomType":          c.promptRoomType(),
		"checkIn":           c.prompt("check-in (YYYY-MM-DD): "),
		"checkOut":          c.prompt("check-out (YYYY-MM-DD): "),
	}
	c.desk.SubmitReservation(ctx, values)
}

func (c *console) promptRoomType() string {
	var options []string
	for _, room := range c.rooms {
		options = append(options, fmt.Sprintf("%s (LKR %d)", room.Type, room.RatePerNight))
	}
	fmt.Printf("room types: %s\n", strings.Join(options, ", "))
	return c.prompt("room type: ")
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	line, ok := <-c.lines
	if !ok {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *console) promptPassword(label string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return c.prompt(label)
	}

	fmt.Print(label)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}
