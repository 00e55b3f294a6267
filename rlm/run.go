package rlm

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/atrislabs/rlm/cmds"
	"github.com/atrislabs/rlm/configs"
	"github.com/atrislabs/rlm/logs"
	"github.com/atrislabs/rlm/models"
)

type MaxIterations int

var maxIterationsFlag = cmds.Var[int]("-max-iterations")

func (Module) MaxIterations(
	loader configs.Loader,
) MaxIterations {
	if *maxIterationsFlag > 0 {
		return MaxIterations(*maxIterationsFlag)
	}
	if n := configs.First[int](loader, "max_iterations"); n > 0 {
		return MaxIterations(n)
	}
	return 10
}

type Verbose bool

var verboseFlag = cmds.Switch("-verbose")

func (Module) Verbose(
	loader configs.Loader,
) Verbose {
	if *verboseFlag {
		return true
	}
	return Verbose(configs.First[bool](loader, "verbose"))
}

// Run drives the orchestration loop until a termination marker or the
// iteration budget. Budget exhaustion is a normal outcome, reported by
// a Result with Answered unset. The only errors returned are root
// model transport failures.
type Run func(ctx context.Context, model models.Model, contextData string, query string) (*Result, error)

func (Module) Run(
	maxIterations MaxIterations,
	verbose Verbose,
	estimate EstimateTokens,
	execute Execute,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, model models.Model, contextData string, query string) (*Result, error) {
		ctx, _ = newSpan(ctx, "")

		trace := func(msg string, args ...any) {
			if verbose {
				logger.InfoContext(ctx, msg, args...)
			} else {
				logger.DebugContext(ctx, msg, args...)
			}
		}

		session := NewSession(contextData)
		result := new(Result)

		trace("run start",
			"context_chars", len(contextData),
			"query", query,
			"max_iterations", int(maxIterations),
		)

		prompt := initialPrompt(len(contextData), query)

		for result.Iterations < int(maxIterations) {
			result.Iterations++
			session.RootTokens += estimate(prompt) + rootCallOverhead

			response, err := model.Call(ctx, prompt, false)
			if err != nil {
				return nil, logs.WrapSpan(ctx, fmt.Errorf("root model call at iteration %d: %w", result.Iterations, err))
			}
			trace("iteration",
				"n", result.Iterations,
				"response_chars", len(response),
			)

			if answer, ok := CheckFinal(response, session); ok {
				result.Answer = answer
				result.Answered = true
				trace("final answer", "answer", answer)
				break
			}

			blocks := ExtractCodeBlocks(response)
			if len(blocks) == 0 {
				// nothing executable this turn, next prompt carries no output
				session.LastOutput = ""
			}
			for _, code := range blocks {
				output := execute(ctx, model, session, code)
				trace("executed block", "output_chars", len(output))
			}

			prompt = nextPrompt(session.LastOutput, query)
		}

		result.SubCalls = session.SubCalls
		result.RootTokens = session.RootTokens
		result.SubTokens = session.SubTokens
		result.Variables = slices.Sorted(maps.Keys(session.Vars))

		if !result.Answered {
			trace("budget exhausted", "iterations", result.Iterations)
		}
		trace("run end",
			"iterations", result.Iterations,
			"sub_calls", result.SubCalls,
			"root_tokens", result.RootTokens,
			"sub_tokens", result.SubTokens,
			"variables", result.Variables,
		)

		return result, nil
	}
}
