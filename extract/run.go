package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"dtx/config"
	"dtx/resolve"
	"dtx/state"
)

// Run implements the extract subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	env.RunID = uuid.NewString()
	log := env.Log.Named("extract").With(zap.String("run_id", env.RunID))

	names := cmd.Args().Slice()
	if len(names) == 0 {
		names = env.Cfg.Extraction.ThemeNames()
	}

	parseCSS := cmd.Bool("css")
	cssPath := cmd.String("input")
	if len(cssPath) == 0 {
		cssPath = env.Cfg.Extraction.CSSPath
	}

	output := cmd.String("output")
	if len(output) == 0 {
		output = env.Cfg.Extraction.OutputPath
	}
	if output, err = filepath.Abs(output); err != nil {
		return err
	}

	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Extraction.Overwrite

	var cssText string
	if parseCSS {
		if len(cssPath) == 0 {
			return errors.New("CSS parsing requested but no input file has been specified")
		}
		data, err := os.ReadFile(cssPath)
		if err != nil {
			return fmt.Errorf("unable to read CSS source (%s): %w", cssPath, err)
		}
		cssText = string(data)
		if env.Rpt != nil {
			env.Rpt.Store("input/"+config.CleanFileName(filepath.Base(cssPath)), cssPath)
		}
	}

	if !parseCSS && len(names) == 0 {
		return errors.New("no themes have been specified")
	}

	log.Info("Extraction starting", zap.Strings("themes", names), zap.String("css", cssPath), zap.String("output", output))
	defer func(start time.Time) {
		log.Info("Extraction completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	orch := NewOrchestrator(log, resolve.NewResolver(log, env.Cfg.Extraction.SearchPaths...))
	collection, failed := orch.Extract(ctx, names, cssText, parseCSS)

	for _, fe := range failed {
		// already logged with details by the orchestrator, keep the summary terse
		log.Warn("Theme skipped", zap.String("theme", fe.Theme))
	}
	log.Info("Themes extracted", zap.Int("extracted", collection.Len()), zap.Int("failed", len(failed)))

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize extracted themes: %w", err)
	}
	data = append(data, '\n')

	if _, err := os.Stat(output); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", output)
		}
		log.Warn("Overwriting existing file", zap.String("file", output))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("unable to write output (%s): %w", output, err)
	}

	if env.Rpt != nil {
		env.Rpt.StoreData("result"+filepath.Ext(output), data)
	}
	return nil
}
