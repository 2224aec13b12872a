package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/bookshelf/cmd/batch"
	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/cmdutil"
	"github.com/lepinkainen/bookshelf/internal/config"
	"github.com/lepinkainen/bookshelf/internal/fileutil"
	"github.com/lepinkainen/bookshelf/internal/tui"
)

var (
	runBatch   = batch.RunBatchWithParams
	selectBook = tui.Select

	stdout io.Writer = os.Stdout
)

// CLI represents the complete command structure for the bookshelf application
type CLI struct {
	// Global flags
	SeedFile   string `help:"YAML or JSON file with the starting records (defaults to the built-in seed)"`
	Output     string `help:"Output format: json or text"`
	LogLevel   string `help:"Log level: debug, info, warn or error"`
	JSONOutput string `help:"Write the final listing to this JSON file"`

	// Datasette flags
	Datasette   bool   `help:"Export the final catalog to SQLite for Datasette" default:"false"`
	DatasetteDB string `help:"Path to SQLite database file (defaults to datasette.dbfile, ./bookshelf.db)"`

	List   ListCmd   `cmd:"" help:"List all books"`
	Add    AddCmd    `cmd:"" help:"Add a book"`
	Delete DeleteCmd `cmd:"" help:"Delete a book by id"`
	Update UpdateCmd `cmd:"" help:"Replace a book by id"`
	Run    RunCmd    `cmd:"" help:"Run a script of catalog operations"`
	Browse BrowseCmd `cmd:"" help:"Browse the catalog interactively"`
}

// ListCmd represents the list command
type ListCmd struct{}

// AddCmd represents the add command
type AddCmd struct {
	Book string `help:"Book record as inline JSON or YAML"`
	File string `short:"f" help:"Path to a JSON or YAML file with the book record"`
}

// DeleteCmd represents the delete command
type DeleteCmd struct {
	ID string `arg:"" help:"Id of the book to delete"`
}

// UpdateCmd represents the update command
type UpdateCmd struct {
	ID   string `arg:"" help:"Id of the book to replace"`
	Book string `help:"Replacement record as inline JSON or YAML"`
	File string `short:"f" help:"Path to a JSON or YAML file with the replacement record"`
}

// RunCmd represents the batch command
type RunCmd struct {
	Script string `short:"f" help:"Path to the YAML script" required:""`
	Strict bool   `help:"Fail when any step is rejected" default:"false"`
}

// BrowseCmd represents the interactive browser command
type BrowseCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookshelf"),
		kong.Description("An in-memory catalog of book records."),
		kong.UsageOnError(),
	)

	// Flags win over the config file
	updateGlobalConfig(&cli)
	initLogging()

	err := ctx.Run(&cli)
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("catalog.seedfile", "")
	viper.SetDefault("output.format", config.FormatJSON)
	viper.SetDefault("log.level", "info")

	// Datasette defaults
	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.dbfile", "./bookshelf.db")

	// Enable environment variable support
	viper.SetEnvPrefix("bookshelf")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.SeedFile != "" {
		config.SetSeedFile(cli.SeedFile)
	}
	if cli.Output != "" {
		config.SetOutputFormat(cli.Output)
	}
	if cli.LogLevel != "" {
		config.SetLogLevel(cli.LogLevel)
	}

	// Update datasette config
	if cli.Datasette {
		viper.Set("datasette.enabled", true)
	}
	if cli.DatasetteDB != "" {
		viper.Set("datasette.dbfile", cli.DatasetteDB)
	}
}

// Run methods for each command

func (l *ListCmd) Run(cli *CLI) error {
	return withCatalog(cli, func(c *catalog.Catalog) catalog.Response {
		return c.List()
	})
}

func (a *AddCmd) Run(cli *CLI) error {
	candidate, err := readCandidate(a.Book, a.File)
	if err != nil {
		return err
	}

	return withCatalog(cli, func(c *catalog.Catalog) catalog.Response {
		return c.Add(candidate)
	})
}

func (d *DeleteCmd) Run(cli *CLI) error {
	return withCatalog(cli, func(c *catalog.Catalog) catalog.Response {
		return c.Delete(d.ID)
	})
}

func (u *UpdateCmd) Run(cli *CLI) error {
	candidate, err := readCandidate(u.Book, u.File)
	if err != nil {
		return err
	}

	return withCatalog(cli, func(c *catalog.Catalog) catalog.Response {
		return c.Update(u.ID, candidate)
	})
}

func (r *RunCmd) Run(cli *CLI) error {
	return runBatch(r.Script, cli.JSONOutput, r.Strict, stdout)
}

func (b *BrowseCmd) Run(cli *CLI) error {
	c, err := cmdutil.OpenCatalog()
	if err != nil {
		return err
	}

	books := c.List().(catalog.Listing).Books
	result, err := selectBook("Catalog", books)
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	switch result.Action {
	case tui.ActionSelected:
		err = cmdutil.WriteResponse(stdout, catalog.Listing{Books: []catalog.Book{*result.Selection}})
	case tui.ActionDelete:
		err = cmdutil.WriteResponse(stdout, c.Delete(result.Selection.ID))
	default:
		slog.Info("No book selected")
	}
	if err != nil {
		return err
	}

	return cmdutil.Finish(c, cli.JSONOutput)
}

// withCatalog opens the catalog, applies op, prints its response and
// writes the final state to the configured sinks. A rejected operation still
// reaches the sinks before its error is returned.
func withCatalog(cli *CLI, op func(*catalog.Catalog) catalog.Response) error {
	c, err := cmdutil.OpenCatalog()
	if err != nil {
		return err
	}

	respErr := cmdutil.WriteResponse(stdout, op(c))

	if err := cmdutil.Finish(c, cli.JSONOutput); err != nil {
		return err
	}
	return respErr
}

// readCandidate takes the record from the inline value or, failing that,
// from file.
func readCandidate(inline, file string) (catalog.Candidate, error) {
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("use either --book or --file, not both")
	case inline != "":
		return fileutil.ParseCandidate([]byte(inline))
	case file != "":
		return fileutil.ReadCandidateFile(file)
	default:
		return nil, fmt.Errorf("book data is required (provide via --book or --file)")
	}
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: config.LogLevel,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
