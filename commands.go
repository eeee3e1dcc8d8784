package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crillab/gomln/clause"
	"github.com/crillab/gomln/config"
	"github.com/crillab/gomln/fol"
	"github.com/crillab/gomln/mln"
	"github.com/crillab/gomln/normal"
	"github.com/crillab/gomln/telemetry"
	"github.com/crillab/gomln/wcnf"
)

// app holds the state shared by all commands.
type app struct {
	configPath string
	logLevel   string
	constants  string
	form       string
	output     string

	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
	metrics  io.Writer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:          "gomln",
		Short:        "Translate Markov logic networks into weighted clauses",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.constants, "constants", "", "comma-separated list of constants of the domain")

	normalizeCmd := &cobra.Command{
		Use:   "normalize FORMULA",
		Short: "Print the normal form of a formula, read from stdin if FORMULA is -",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runNormalize,
	}
	normalizeCmd.Flags().StringVar(&a.form, "form", "", "normal form: cnf or dnf")

	groundCmd := &cobra.Command{
		Use:   "ground FILE",
		Short: "Write the ground clauses of a model in the WCNF format",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runGround,
	}
	groundCmd.Flags().StringVarP(&a.output, "output", "o", "", "output file, standard output if empty")

	root.AddCommand(
		&cobra.Command{
			Use:   "parse FILE",
			Short: "Print the canonical version of a model",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runParse,
		},
		normalizeCmd,
		&cobra.Command{
			Use:   "clauses FILE",
			Short: "Print the weighted clauses of a model",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runClauses,
		},
		groundCmd,
	)
	return root, a
}

// init loads the configuration, overrides it with command-line flags and sets up logging and telemetry.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if flags.Changed("constants") {
		cfg.Constants = config.SplitConstants(a.constants)
	}
	if flags.Changed("form") {
		cfg.Form = strings.ToLower(a.form)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.logger)
	a.shutdown, err = telemetry.Init(cmd.Context(), cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.Telemetry.Metrics == "prometheus" {
		a.metrics = cmd.ErrOrStderr()
	}
	return nil
}

// close dumps metrics if needed and flushes telemetry.
func (a *app) close(ctx context.Context) error {
	if a.metrics != nil {
		if err := telemetry.WriteMetrics(a.metrics); err != nil {
			return err
		}
	}
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}

// readFile returns the content of path, or of stdin if path is "-".
func readFile(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("could not read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", path, err)
	}
	return string(data), nil
}

func (a *app) loadModel(cmd *cobra.Command, path string) (*mln.Model, error) {
	text, err := readFile(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}
	m, err := mln.Load(cmd.Context(), text, a.cfg.Constants, a.cfg.ModelOptions(a.logger))
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	a.logger.Info("model loaded", "formulas", len(m.Entries), "clauses", len(m.Clauses), "predicates", len(m.Predicates))
	return m, nil
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	text, err := readFile(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	entries, err := fol.ParseMLN(text)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", args[0], err)
	}
	for _, e := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), e)
	}
	return nil
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	var (
		f   fol.Formula
		err error
	)
	if args[0] == "-" {
		f, err = fol.Parse(cmd.InOrStdin())
	} else {
		f, err = fol.ParseFormula(args[0])
	}
	if err != nil {
		return fmt.Errorf("could not parse formula: %w", err)
	}
	nf, err := normal.Translate(f, a.cfg.Constants, a.cfg.NormalForm(), a.cfg.NormalOptions(a.logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), nf)
	return nil
}

func (a *app) runClauses(cmd *cobra.Command, args []string) error {
	m, err := a.loadModel(cmd, args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, name := range m.Predicates.Names() {
		fmt.Fprintf(w, "# %s/%d\n", name, m.Predicates[name])
	}
	fmt.Fprint(w, clause.Print(m.Clauses))
	return nil
}

func (a *app) runGround(cmd *cobra.Command, args []string) (err error) {
	m, err := a.loadModel(cmd, args[0])
	if err != nil {
		return err
	}
	ground, err := m.GroundClauses(nil)
	if err != nil {
		return err
	}
	a.logger.Info("model grounded", "atoms", len(m.GroundAtoms()), "clauses", len(ground))
	w := cmd.OutOrStdout()
	if a.output != "" {
		f, err := os.Create(a.output)
		if err != nil {
			return fmt.Errorf("could not create %q: %w", a.output, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("could not close %q: %w", a.output, cerr)
			}
		}()
		w = f
	}
	return wcnf.Write(w, ground, a.cfg.WCNF.Precision)
}
