package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/ongiao-ai/tutorchat/models"
)

const defaultModel = "gemini-3-flash-preview"

// Gemini_Model talks to the Generative Language API. Every request carries
// the system prompt and the google_search tool, so replies can come back with
// grounding citations.
type Gemini_Model struct {
	Model        string
	SystemPrompt string

	client *genai.Client
}

// New creates a Gemini-backed model. The API key is required; its absence is
// a startup failure, not something a turn can recover from.
func New(ctx context.Context, apiKey, model, systemPrompt string) (*Gemini_Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini_Model{
		Model:        model,
		SystemPrompt: systemPrompt,
		client:       client,
	}, nil
}

// Generate_Reply sends the prior history plus the new message and returns the
// reply text with any grounding sources, in chunk order. One request, no
// retries.
func (g *Gemini_Model) Generate_Reply(ctx context.Context, history []models.Message, message models.Message) (models.Reply, error) {
	contents, err := toContents(append(history[:len(history):len(history)], message))
	if err != nil {
		return models.Reply{}, fmt.Errorf("failed to build gemini request: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	if g.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: g.SystemPrompt}},
		}
	}

	modelToUse := g.Model
	if modelToUse == "" {
		modelToUse = defaultModel
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelToUse, contents, config)
	if err != nil {
		return models.Reply{}, fmt.Errorf("gemini request failed: %w", err)
	}

	return models.Reply{
		Text:    resp.Text(),
		Sources: groundingSources(resp),
	}, nil
}

// toContents converts transcript messages to the SDK's content type. Inline
// image payloads are decoded from base64 back to raw bytes here, at the wire
// boundary.
func toContents(msgs []models.Message) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, msg := range msgs {
		content := &genai.Content{Role: string(msg.Role)}
		for _, part := range msg.Parts {
			switch p := part.(type) {
			case models.TextPart:
				content.Parts = append(content.Parts, &genai.Part{Text: p.Text})
			case models.ImagePart:
				data, err := base64.StdEncoding.DecodeString(p.Data)
				if err != nil {
					return nil, fmt.Errorf("invalid inline image payload: %w", err)
				}
				content.Parts = append(content.Parts, &genai.Part{
					InlineData: &genai.Blob{MIMEType: p.MimeType, Data: data},
				})
			default:
				return nil, fmt.Errorf("unknown part type %T", part)
			}
		}
		contents = append(contents, content)
	}
	return contents, nil
}

// groundingSources harvests {title, uri} pairs from the first candidate's
// grounding chunks. No filtering beyond "has a web chunk" happens here; the
// orchestrator decides which entries make it into the transcript.
func groundingSources(resp *genai.GenerateContentResponse) []models.Source {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	metadata := resp.Candidates[0].GroundingMetadata
	if metadata == nil {
		return nil
	}
	var sources []models.Source
	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, models.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}
