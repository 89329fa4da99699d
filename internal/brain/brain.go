package brain

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go/v3"
)

const systemPrompt = `You are a friendly voice assistant named Kaju running on the user's computer.
You talk briefly and clearly. If the user asks to do something on the computer,
respond with a short confirmation and what you did. If it's normal chat, respond naturally.`

// historyWindow is how many recent messages (user and assistant) ride
// along with each request, besides the fixed system preamble.
const historyWindow = 10

// Brain is the conversational fallback: utterances that are not
// commands go here and come back as assistant text.
type Brain struct {
	client  openai.Client
	model   openai.ChatModel
	history *History
}

func New(client openai.Client, model openai.ChatModel) *Brain {
	if model == "" {
		model = openai.ChatModelGPT5Nano
	}
	return &Brain{
		client:  client,
		model:   model,
		history: NewHistory(historyWindow),
	}
}

// Reply sends the utterance plus the bounded history to the chat
// service and records both sides of the exchange. Failures come back
// as *ServiceError; the history is only updated on success.
func (b *Brain) Reply(ctx context.Context, text string) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, historyWindow+2)
	msgs = append(msgs, openai.SystemMessage(systemPrompt))
	for _, m := range b.history.Messages() {
		if m.Role == "assistant" {
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(text))

	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    b.model,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Kind: KindBadResponse, Err: errNoChoices}
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", &ServiceError{Kind: KindBadResponse, Err: errEmptyContent}
	}

	slog.Debug("chat reply", "chars", len(reply))

	b.history.Add("user", text)
	b.history.Add("assistant", reply)

	return reply, nil
}
