package core

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

const (
	minAudiences = 8
	maxAudiences = 10
)

const systemInstruction = `You are a senior marketing strategist who maps a product or service topic to the
consumer behaviors that signal interest in it and the audiences who exhibit each behavior.

Output rules:
1. Reply with a JSON array only. No prose, no markdown, no code fences.
2. Each element is an object with exactly two keys:
   - "behavior": one concrete, observable consumer behavior related to the topic,
     written as a short phrase (for example "compares course prices on review sites").
   - "audiences": an array of 8 to 10 distinct target audience segments that commonly
     show that behavior. Each segment is a short noun phrase describing who they are
     (age band, life stage, occupation, interest or need), not a sentence.
3. Produce between 5 and 8 behaviors. Behaviors must not repeat or overlap.
4. Audience segments inside one behavior must not repeat. Segments may recur across
   different behaviors when they genuinely apply.
5. Write behaviors and audiences in the same language as the topic. If the topic is
   written in Chinese, use Traditional Chinese.
6. Stay specific to the topic. Avoid generic segments such as "everyone" or "consumers".`

const userQueryTemplate = "Generate the consumer behaviors and target audiences for the following topic: %q"

// UserQuery interpolates the topic into the fixed query sentence.
func UserQuery(topic string) string {
	return fmt.Sprintf(userQueryTemplate, topic)
}

// AudienceSchema describes an array of {behavior, audiences[8..10]} objects.
func AudienceSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"behavior": {
					Type: genai.TypeString,
				},
				"audiences": {
					Type:     genai.TypeArray,
					Items:    &genai.Schema{Type: genai.TypeString},
					MinItems: genai.Ptr[int64](minAudiences),
					MaxItems: genai.Ptr[int64](maxAudiences),
				},
			},
			Required:         []string{"behavior", "audiences"},
			PropertyOrdering: []string{"behavior", "audiences"},
		},
	}
}

// BuildRequest assembles the outbound payload for a validated topic.
func BuildRequest(topic string) domain.GenerateContentRequest {
	return domain.GenerateContentRequest{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		},
		Contents: []*genai.Content{
			genai.NewContentFromText(UserQuery(topic), genai.RoleUser),
		},
		GenerationConfig: domain.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   AudienceSchema(),
		},
	}
}
