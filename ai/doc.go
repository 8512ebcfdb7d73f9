// Package ai provides the text-generation client for the gas CLI.
//
// Generation goes through the Hugging Face Inference router, which
// speaks the OpenAI chat-completions protocol. The HTTP transport
// retries transient failures with exponential backoff up to a fixed
// attempt count; callers see either a generated string or an error
// after the retry budget is exhausted.
//
// Example usage:
//
//	client, err := ai.NewClient(ai.ClientConfig{
//	    Model:       cfg.AI.Model,
//	    Temperature: cfg.AI.Temperature,
//	    MaxTokens:   cfg.AI.MaxTokens,
//	})
//	if err != nil {
//	    return err // ErrNoAPIKey when no token is configured
//	}
//
//	text, err := client.Generate(ctx, prompt)
//
// The API key comes from ClientConfig.APIKey or, when empty, the
// HF_TOKEN / HUGGINGFACE_API_KEY environment variables.
package ai
