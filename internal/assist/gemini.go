package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("no response text received from AI")

// Assistant is the text-generation collaborator behind the AI message
// composer. Callers are expected to fall back to their original text on any
// error; nothing here is load-bearing for the contact pipeline.
type Assistant struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Assistant{
		client: client,
		model:  model,
	}, nil
}

// Compose writes a ready-to-send contact message from the visitor's intent,
// optionally flavored with their name and email.
func (that *Assistant) Compose(ctx context.Context, intent, name, email string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString("You are a helpful assistant writing a contact message for a user on a personal portfolio website.\n")
	prompt.WriteString("Based on the user's intent, write a professional, friendly, and concise message that is ready to be sent.")

	if name != "" {
		fmt.Fprintf(&prompt, " The user's name is %q, so the message should sound like it's from them.", name)
	}
	if email != "" {
		fmt.Fprintf(&prompt, " Their email is %q.", email)
	}

	fmt.Fprintf(&prompt, "\n\nUser's intent: %q", intent)

	return that.generate(ctx, prompt.String())
}

// Enhance rewrites a drafted message according to the given intent.
func (that *Assistant) Enhance(ctx context.Context, message, intent string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString("Rewrite the following contact message so it reads professionally and stays concise.\n")
	fmt.Fprintf(&prompt, "The sender's intent: %q\n\n", intent)
	fmt.Fprintf(&prompt, "Message:\n%s", message)

	return that.generate(ctx, prompt.String())
}

func (that *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := that.client.Models.GenerateContent(ctx, that.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
