package ai

import (
	"context"
	"fmt"
)

// ChatAboutGraph answers a question over the current graph via the chat
// collaborator. History carries prior turns, oldest first; the question is
// appended as the final user message. The graph itself is never mutated.
func ChatAboutGraph(
	ctx context.Context,
	client GraphAIClient,
	summary string,
	history []ChatMessage,
	question string,
) (string, error) {
	messages := make([]ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Message: question})

	answer, err := client.GenerateChat(
		ctx,
		messages,
		WithSystemPrompts(fmt.Sprintf(ChatSystemPrompt, summary)),
		WithTemperature(0.3),
	)
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}
	return answer, nil
}
