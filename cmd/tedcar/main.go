package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/app"
	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/service"
	"github.com/tedcar/rental-console/internal/infrastructure/queue"
	"github.com/tedcar/rental-console/internal/pkg/config"
	"github.com/tedcar/rental-console/pkg/logger"
)

const usage = `usage: tedcar <command> [flags]

commands:
  register -username U -password P [-email E]
  login    -username U -password P
  logout
  status
  vehicles list [-skip N] [-limit N]
  vehicles mine
  vehicles get    -id ID
  vehicles create -brand B -model M -price P [-image URL]
  vehicles update -id ID -brand B -model M -price P [-image URL]
  vehicles delete -id ID
  vehicles import [-workers N] [file.json]
`

var errUsage = errors.New("invalid usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, App: "tedcar"})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	c := &cli{app: a, cfg: cfg, log: log, out: os.Stdout}
	err = c.run(ctx, os.Args[1], os.Args[2:])
	_ = a.Close(context.Background())

	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cli struct {
	app *app.App
	cfg *config.Config
	log zerolog.Logger
	out io.Writer
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return c.register(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.logout(ctx)
	case "status":
		return c.status(ctx)
	case "vehicles":
		if len(args) == 0 {
			return errUsage
		}
		return c.vehicles(ctx, args[0], args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		return errUsage
	}
}

// await runs fn as a cancellable call bound to ctx. An interrupt cancels it
// and the caller sees the context error instead of a late result.
func await[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	call := service.Go(ctx, fn)
	select {
	case <-call.Done():
	case <-ctx.Done():
		call.Cancel()
	}
	return call.Wait()
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	email := fs.String("email", "", "account email (optional)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("register: -username and -password are required")
	}

	body, err := await(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return c.app.Auth.Register(ctx, domain.Registration{Username: *username, Password: *password, Email: *email})
	})
	if err != nil {
		return err
	}
	if len(body) == 0 {
		fmt.Fprintln(c.out, "registered")
		return nil
	}
	return c.print(body)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("login: -username and -password are required")
	}

	_, err := await(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.app.Auth.Login(ctx, *username, *password)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "logged in, continue at %s\n", domain.RouteDashboard)
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	next, err := c.app.Auth.Logout(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "logged out, continue at %s\n", next)
	return nil
}

func (c *cli) status(ctx context.Context) error {
	info, err := c.app.Auth.Describe(ctx)
	if err != nil {
		return err
	}
	return c.print(info)
}

func (c *cli) vehicles(ctx context.Context, sub string, args []string) error {
	if sub == "list" {
		return c.listVehicles(ctx, args)
	}
	if sub != "mine" && sub != "get" && sub != "create" && sub != "update" && sub != "delete" && sub != "import" {
		return errUsage
	}

	redirect, ok, err := c.app.Guard.Check(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not logged in, continue at %s", redirect)
	}

	switch sub {
	case "mine":
		vehicles, err := await(ctx, c.app.Vehicles.ListMine)
		if err != nil {
			return err
		}
		return c.print(vehicles)
	case "get":
		return c.getVehicle(ctx, args)
	case "create":
		return c.createVehicle(ctx, args)
	case "update":
		return c.updateVehicle(ctx, args)
	case "delete":
		return c.deleteVehicle(ctx, args)
	default:
		return c.importVehicles(ctx, args)
	}
}

func (c *cli) listVehicles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles list", flag.ContinueOnError)
	skip := fs.Int("skip", 0, "rows to skip")
	limit := fs.Int("limit", 0, "maximum rows")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *skip < 0 || *limit < 0 {
		return fmt.Errorf("vehicles list: -skip and -limit must not be negative")
	}

	vehicles, err := await(ctx, func(ctx context.Context) ([]domain.Vehicle, error) {
		return c.app.Vehicles.ListAll(ctx, domain.ListOptions{Skip: *skip, Limit: *limit})
	})
	if err != nil {
		return err
	}
	return c.print(vehicles)
}

func (c *cli) getVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles get", flag.ContinueOnError)
	id := fs.Int64("id", 0, "vehicle id")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id <= 0 {
		return fmt.Errorf("vehicles get: -id is required")
	}

	v, err := await(ctx, func(ctx context.Context) (*domain.Vehicle, error) {
		return c.app.Vehicles.FindMine(ctx, *id)
	})
	if err != nil {
		return err
	}
	return c.print(v)
}

// vehicleFlags registers the writable vehicle fields on fs.
type vehicleFlags struct {
	brand, model, price, image *string
}

func newVehicleFlags(fs *flag.FlagSet) vehicleFlags {
	return vehicleFlags{
		brand: fs.String("brand", "", "vehicle brand"),
		model: fs.String("model", "", "vehicle model"),
		price: fs.String("price", "", "price per day"),
		image: fs.String("image", "", "image URL (optional)"),
	}
}

func (f vehicleFlags) input() (domain.VehicleInput, error) {
	var missing []string
	if *f.brand == "" {
		missing = append(missing, "brand: is required")
	}
	if *f.model == "" {
		missing = append(missing, "model: is required")
	}
	price, err := strconv.ParseFloat(*f.price, 64)
	switch {
	case *f.price == "":
		missing = append(missing, "price: is required")
	case err != nil:
		missing = append(missing, "price: must be a number")
	case price < 0:
		missing = append(missing, "price: must be 0 or greater")
	}
	if len(missing) > 0 {
		return domain.VehicleInput{}, &domain.ValidationError{Fields: missing}
	}

	in := domain.VehicleInput{Brand: *f.brand, Model: *f.model, PricePerDay: price}
	if *f.image != "" {
		img := *f.image
		in.ImageURL = &img
	}
	return in, nil
}

func (c *cli) createVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles create", flag.ContinueOnError)
	vf := newVehicleFlags(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	in, err := vf.input()
	if err != nil {
		return err
	}

	v, err := await(ctx, func(ctx context.Context) (*domain.Vehicle, error) {
		return c.app.Vehicles.Create(ctx, in)
	})
	if err != nil {
		return err
	}
	return c.print(v)
}

func (c *cli) updateVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "vehicle id")
	vf := newVehicleFlags(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id <= 0 {
		return fmt.Errorf("vehicles update: -id is required")
	}
	in, err := vf.input()
	if err != nil {
		return err
	}

	v, err := await(ctx, func(ctx context.Context) (*domain.Vehicle, error) {
		return c.app.Vehicles.Update(ctx, *id, in)
	})
	if err != nil {
		return err
	}
	return c.print(v)
}

func (c *cli) deleteVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "vehicle id")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id <= 0 {
		return fmt.Errorf("vehicles delete: -id is required")
	}

	_, err := await(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.app.Vehicles.Delete(ctx, *id)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "deleted vehicle %d\n", *id)
	return nil
}

type importOutcome struct {
	Index   int             `json:"index"`
	Vehicle *domain.Vehicle `json:"vehicle,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// importVehicles creates every vehicle in a JSON array read from the named
// file, or stdin when none is given.
func (c *cli) importVehicles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles import", flag.ContinueOnError)
	workers := fs.Int("workers", c.cfg.Import.Workers, "concurrent creates")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var r io.Reader = os.Stdin
	if file := fs.Arg(0); file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("vehicles import: %w", err)
		}
		defer f.Close()
		r = f
	}

	var inputs []domain.VehicleInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return fmt.Errorf("vehicles import: decode input: %w", err)
	}

	importer := queue.NewImporter(*workers, c.app.Vehicles, c.log.With().Str("component", "importer").Logger())
	results := importer.Import(ctx, inputs)

	outcomes := make([]importOutcome, len(results))
	failed := 0
	for i, res := range results {
		outcomes[i] = importOutcome{Index: res.Index, Vehicle: res.Vehicle}
		if res.Err != nil {
			outcomes[i].Error = res.Err.Error()
			failed++
		}
	}
	if err := c.print(outcomes); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("vehicles import: %d of %d failed", failed, len(results))
	}
	return nil
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
