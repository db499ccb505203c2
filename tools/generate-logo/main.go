// generate-logo-assets writes the app icon set (icon, splash, Android adaptive layers,
// favicon) into ./assets. It takes no configuration beyond logging options.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/besmile/brand-assets/go/assetset"
	"github.com/besmile/brand-assets/go/flags"
	"github.com/besmile/brand-assets/go/logging"
)

var opts struct {
	Logging logging.Opts `group:"Logging" namespace:"logging"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		if flags.IsHelp(err) {
			return
		}
		slog.ErrorContext(ctx, "running", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := flags.Parse(&opts); err != nil {
		return err
	}
	if err := logging.Init(&opts.Logging); err != nil {
		return err
	}

	_, err := assetset.New(assetset.Config{Dir: assetset.DefaultDir}).Build(ctx)
	return err
}
