package batch

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/cmdutil"
	"github.com/lepinkainen/bookshelf/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StepResult pairs a step with the response the catalog gave it.
type StepResult struct {
	Step     int              `json:"step"`
	Op       string           `json:"op"`
	Response catalog.Response `json:"response"`
}

// Failed reports whether the step was rejected by the catalog.
func (r StepResult) Failed() bool {
	_, failed := r.Response.(catalog.Failure)
	return failed
}

// Execute applies each step of script to c in order. A rejected step does
// not stop the run.
func Execute(c *catalog.Catalog, script Script) []StepResult {
	logger := slog.With("run", uuid.NewString())
	logger.Info("Running batch", "steps", len(script.Steps))

	results := make([]StepResult, 0, len(script.Steps))
	for i, step := range script.Steps {
		var resp catalog.Response
		switch step.Op {
		case OpList:
			resp = c.List()
		case OpAdd:
			resp = c.Add(step.Book)
		case OpDelete:
			resp = c.Delete(step.ID)
		case OpUpdate:
			resp = c.Update(step.ID, step.Book)
		}

		result := StepResult{Step: i + 1, Op: step.Op, Response: resp}
		if result.Failed() {
			logger.Warn("Step rejected", "step", result.Step, "op", step.Op, "status", resp.StatusCode())
		} else {
			logger.Debug("Step applied", "step", result.Step, "op", step.Op, "status", resp.StatusCode())
		}
		results = append(results, result)
	}

	return results
}

// RunBatchWithParams loads the script at path, runs it against a fresh
// catalog, prints each result to out and writes the final state to the
// configured sinks. With strict set, any rejected step makes the run fail.
func RunBatchWithParams(path string, jsonOutput string, strict bool, out io.Writer) error {
	script, err := LoadScript(path)
	if err != nil {
		return err
	}

	c, err := cmdutil.OpenCatalog()
	if err != nil {
		return err
	}

	results := Execute(c, script)

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
		if err := writeResult(out, result); err != nil {
			return err
		}
	}

	slog.Info("Batch finished", "steps", len(results), "failed", failed)

	if err := cmdutil.Finish(c, jsonOutput); err != nil {
		return err
	}

	if strict && failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(results))
	}
	return nil
}

func writeResult(out io.Writer, result StepResult) error {
	if config.OutputFormat == config.FormatText {
		if _, err := fmt.Fprintf(out, "# step %d: %s\n", result.Step, result.Op); err != nil {
			return err
		}
		if err := cmdutil.WriteResponse(out, result.Response); err != nil {
			if _, ok := err.(*cmdutil.ResponseError); !ok {
				return err
			}
		}
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode step %d: %w", result.Step, err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
