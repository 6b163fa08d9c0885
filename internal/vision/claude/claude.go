package claude

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/vision"
)

// ClaudeAnalyzer analyzes food photos through the Anthropic Messages API.
type ClaudeAnalyzer struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewClaudeAnalyzer(apiKey, model string, opts ...anthropic.ClientOption) *ClaudeAnalyzer {
	return &ClaudeAnalyzer{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

func (a *ClaudeAnalyzer) Analyze(ctx context.Context, r io.Reader, mimeType string) (*vision.Analysis, error) {
	imageData, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: a.model,
		// 1024 tokens covers a caption plus a long item table with headroom.
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
						anthropic.MessagesContentSourceTypeBase64,
						normaliseMIME(mimeType),
						imageData,
					)),
					anthropic.NewTextMessageContent(vision.AnalysisPrompt),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	return vision.NewAnalysis(resp.GetFirstContentText()), nil
}

// normaliseMIME maps whatever the upload reported to a media type the API
// accepts, defaulting to JPEG.
func normaliseMIME(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return "image/png"
	case "image/gif":
		return "image/gif"
	case "image/webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
