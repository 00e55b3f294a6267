package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/atrislabs/rlm/logs"
	"github.com/atrislabs/rlm/nets"
	"github.com/atrislabs/rlm/vars"
	"github.com/reusee/dscope"
)

// OpenAI calls any chat-completions compatible endpoint. A separate,
// typically cheaper model can be configured for sub calls.
type OpenAI struct {
	args   ModelArgs
	apiKey string
	client nets.HTTPClient

	Logger dscope.Inject[logs.Logger]
}

var _ Model = new(OpenAI)

type NewOpenAI func(args ModelArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args ModelArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			client: client,
			apiKey: apiKey,
		}
		inject(&ret)
		return ret
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAI) Call(ctx context.Context, prompt string, isSubCall bool) (string, error) {
	model := o.args.Model
	if isSubCall && o.args.SubModel != "" {
		model = o.args.SubModel
	}

	o.Logger().DebugContext(ctx, "generating",
		"model", model,
		"sub_call", isSubCall,
	)

	bodyBytes, err := json.Marshal(chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: vars.DerefOrZero(o.args.Temperature),
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.args.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(content, &completion); err != nil {
		return "", fmt.Errorf("decode completion: %w: %s", err, content)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("model error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion: %s", content)
	}

	return completion.Choices[0].Message.Content, nil
}
