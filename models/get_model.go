package models

import (
	"strings"

	"github.com/atrislabs/rlm/cmds"
	"github.com/atrislabs/rlm/configs"
	"github.com/atrislabs/rlm/vars"
)

type DefaultModelName string

var modelFlag = cmds.Var[string]("-model")

func (Module) DefaultModelName(
	loader configs.Loader,
) DefaultModelName {
	return DefaultModelName(vars.FirstNonZero(
		*modelFlag,
		configs.First[string](loader, "model"),
		"ollama:llama3.2",
	))
}

type GetModel func(name string) (Model, error)

func (Module) GetModel(
	newOpenAI NewOpenAI,
	loader configs.Loader,
) GetModel {
	return func(name string) (Model, error) {
		args := ModelArgs{
			SubModel: configs.First[string](loader, "sub_model"),
		}
		apiKey := configs.First[string](loader, "api_key")

		provider, modelName, ok := strings.Cut(name, ":")
		if !ok {
			provider, modelName = "", name
		}

		switch provider {

		case "ollama":
			args.BaseURL = "http://127.0.0.1:11434/v1"
			args.Model = modelName
			return newOpenAI(args, ""), nil

		case "deepseek":
			args.BaseURL = "https://api.deepseek.com"
			args.Model = modelName
			return newOpenAI(args, apiKey), nil

		case "openrouter":
			args.BaseURL = "https://openrouter.ai/api/v1"
			args.Model = modelName
			return newOpenAI(args, apiKey), nil

		default:
			args.BaseURL = vars.FirstNonZero(
				configs.First[string](loader, "base_url"),
				"https://api.openai.com/v1",
			)
			args.Model = name
			return newOpenAI(args, apiKey), nil
		}
	}
}
