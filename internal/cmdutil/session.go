package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/config"
	"github.com/lepinkainen/bookshelf/internal/datastore"
	"github.com/lepinkainen/bookshelf/internal/fileutil"
)

// exportToFile is swapped in tests.
var exportToFile = datastore.ExportToFile

// OpenCatalog creates the catalog a command works on, seeded from
// config.SeedFile when one is configured.
func OpenCatalog() (*catalog.Catalog, error) {
	if config.SeedFile == "" {
		return catalog.New(), nil
	}

	books, err := fileutil.ReadSeedFile(config.SeedFile)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded seed file", "path", config.SeedFile, "count", len(books))
	return catalog.New(catalog.WithSeed(books)), nil
}

// Finish writes the final state of c to the configured sinks: a JSON
// listing when jsonOutput is set and the SQLite export when
// datasette.enabled is true.
func Finish(c *catalog.Catalog, jsonOutput string) error {
	listing, ok := c.List().(catalog.Listing)
	if !ok {
		return fmt.Errorf("unexpected listing response")
	}

	if jsonOutput != "" {
		if _, err := fileutil.WriteJSONFile(listing, jsonOutput, true); err != nil {
			return err
		}
	}

	if viper.GetBool("datasette.enabled") {
		dbfile := viper.GetString("datasette.dbfile")
		slog.Info("Writing catalog to Datasette", "dbfile", dbfile)
		if err := exportToFile(dbfile, listing.Books); err != nil {
			return fmt.Errorf("failed to export to %s: %w", dbfile, err)
		}
	}

	return nil
}
