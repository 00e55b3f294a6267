package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atrislabs/rlm/cmds"
	"github.com/atrislabs/rlm/logs"
	"github.com/atrislabs/rlm/models"
	"github.com/atrislabs/rlm/modes"
	"github.com/atrislabs/rlm/rlm"
	"github.com/reusee/dscope"
)

var (
	queryFlag    = cmds.Var[string]("query")
	dataFileFlag = cmds.Var[string]("-data")
	demoFlag     = cmds.Switch("-demo")
)

func main() {
	cmds.Execute(os.Args[1:])

	if !*demoFlag && *queryFlag == "" {
		fmt.Fprintln(os.Stderr, "a query is required (use 'query \"your question\"') or run -demo")
		os.Exit(1)
	}

	scope := dscope.New(
		new(rlm.Module),
		new(models.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		run rlm.Run,
		getModel models.GetModel,
		defaultModel models.DefaultModelName,
		logger logs.Logger,
	) {
		ctx := context.Background()

		contextData := sampleDocuments
		if *dataFileFlag != "" {
			content, err := os.ReadFile(*dataFileFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			contextData = string(content)
		}

		var model models.Model
		query := *queryFlag
		if *demoFlag {
			model = new(demoModel)
			if query == "" {
				query = "What is the company's revenue and who is the CEO?"
			}
		} else {
			var err error
			model, err = getModel(string(defaultModel))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			logger.Info("using model", "name", string(defaultModel))
		}

		result, err := run(ctx, model, contextData, query)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if result.Answered {
			fmt.Printf("answer: %s\n", result.Answer)
		} else {
			fmt.Println("no answer within iteration budget")
		}
		fmt.Printf("iterations: %d\n", result.Iterations)
		fmt.Printf("sub calls: %d\n", result.SubCalls)
		fmt.Printf("root tokens (est): %d\n", result.RootTokens)
		fmt.Printf("sub tokens (est): %d\n", result.SubTokens)
		fmt.Printf("variables: %s\n", strings.Join(result.Variables, ", "))
	})
}
