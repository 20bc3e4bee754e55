// Command webexdata inspects Webex Teams resource payloads from the command
// line: it projects a JSON payload through the typed views in pkg/models and
// prints the result, a single field, or serialized JSON. With --cache the
// parsed snapshot is saved through the configured cache so later runs of a
// consuming layer can look it up by id.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sumitmcc/webexteamssdk/pkg/cache"
	"github.com/sumitmcc/webexteamssdk/pkg/config"
	"github.com/sumitmcc/webexteamssdk/pkg/jsondata"
	"github.com/sumitmcc/webexteamssdk/pkg/logger"
	"github.com/sumitmcc/webexteamssdk/pkg/models"
	"github.com/sumitmcc/webexteamssdk/pkg/store"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to a JSON payload file. If not specified, reads from stdin." short:"i" type:"path"`
	Resource string `help:"Resource type of the payload." short:"r" enum:"team,webhook,license,room,person,raw" default:"raw"`
	Field    string `help:"Print a single field instead of the whole object." short:"f"`
	JSON     bool   `help:"Print serialized JSON instead of the human-readable form." short:"j"`
	Indent   int    `help:"Indent width for --json output. Defaults to the configured output indent, 0 prints compact JSON." default:"0"`
	Cache    bool   `help:"Save the parsed snapshot through the configured cache." short:"c"`
	Version  bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

// view is the surface shared by every resource projection.
type view interface {
	GetField(name string) (any, error)
	ToJSON(opts ...jsondata.EncodeOption) (string, error)
	String() string
}

func main() {
	kong.Parse(&CLI,
		kong.Name("webexdata"),
		kong.Description("Inspect Webex Teams resource payloads"),
		kong.UsageOnError(),
	)

	if CLI.Version {
		fmt.Printf("webexdata v%s\n", version)
		return
	}

	logger.Init()

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// the CLI stays usable without a config directory, a load failure only
	// disables the configured output defaults and the snapshot store
	cfg, cfgErr := config.GetConfig()
	if cfgErr != nil {
		logger.Logger(ctx).WithError(cfgErr).Debug("no configuration loaded, using flag defaults")
		cfg = nil
	} else if cfg.Output.Debug {
		logger.EnableDebug()
	}

	payload, err := readPayload()
	if err != nil {
		return err
	}

	v, save, err := buildResource(CLI.Resource, payload)
	if err != nil {
		return err
	}

	if CLI.Cache {
		if save == nil {
			return fmt.Errorf("resource %q cannot be cached, it has no snapshot store", CLI.Resource)
		}
		if cfgErr != nil {
			return fmt.Errorf("loading configuration: %w", cfgErr)
		}
		if err := saveSnapshot(ctx, cfg, save); err != nil {
			return err
		}
	}

	out, err := render(v, cfg)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func readPayload() ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", CLI.Input, err)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("no input provided: specify a file with -i or pipe JSON data to stdin")
	}
	return data, nil
}

// buildResource projects the payload through the requested view. The saver
// is nil for resources the snapshot store does not keep.
func buildResource(resource string, payload []byte) (view, func(context.Context, *store.Store) error, error) {
	switch resource {
	case "team":
		team, err := models.NewTeam(payload)
		if err != nil {
			return nil, nil, err
		}
		return team, func(ctx context.Context, s *store.Store) error {
			return s.SaveTeam(ctx, team)
		}, nil
	case "webhook":
		webhook, err := models.NewWebhook(payload)
		if err != nil {
			return nil, nil, err
		}
		return webhook, func(ctx context.Context, s *store.Store) error {
			return s.SaveWebhook(ctx, webhook)
		}, nil
	case "license":
		license, err := models.NewLicense(payload)
		if err != nil {
			return nil, nil, err
		}
		return license, func(ctx context.Context, s *store.Store) error {
			return s.SaveLicense(ctx, license)
		}, nil
	case "room":
		room, err := models.NewRoom(payload)
		return room, nil, err
	case "person":
		person, err := models.NewPerson(payload)
		return person, nil, err
	default:
		obj, err := jsondata.New(payload)
		return obj, nil, err
	}
}

func saveSnapshot(ctx context.Context, cfg *config.AppConfig, save func(context.Context, *store.Store) error) error {
	c, err := cache.New(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	return save(ctx, store.New(c, cache.NoExpiration))
}

func render(v view, cfg *config.AppConfig) (string, error) {
	if CLI.Field != "" {
		value, err := v.GetField(CLI.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v", value), nil
	}

	if CLI.JSON {
		indent := CLI.Indent
		if indent == 0 && cfg != nil {
			indent = cfg.Output.Indent
		}
		if indent > 0 {
			return v.ToJSON(jsondata.Indent("", strings.Repeat(" ", indent)))
		}
		return v.ToJSON()
	}

	return v.String(), nil
}
