package summarize

import (
	"fmt"

	"github.com/clipdock/clipd/pkg/models"
)

// maxInputChars truncates extracted text before prompting. Roughly 12k
// tokens; enough for a faithful summary without blowing the context window
// of light-tier models.
const maxInputChars = 48000

const (
	summaryTemperature  = 0.3
	taggingTemperature  = 0.2
	summaryMaxTokens    = 400
	summaryMaxTokensPDF = 500
	taggingMaxTokens    = 200
)

const summarySystemPrompt = "You are a precise summarizer. Write a concise, factual summary " +
	"of the provided content in 2-4 paragraphs. Preserve key facts, names and numbers. " +
	"Do not add opinions or information that is not in the content."

const tagsSystemPrompt = "You extract topical tags from content. Respond with a JSON array " +
	"of 5 to 10 short lowercase tags, most relevant first. No explanations, only the array."

const categoriesSystemPrompt = "You classify content into broad categories such as technology, " +
	"science, business, politics, health, culture, sports or education. Respond with a JSON " +
	"array of 1 to 3 category names, most fitting first. No explanations, only the array."

func summaryRequest(text string, cacheType models.CacheType) []models.ChatMessage {
	return []models.ChatMessage{
		models.SystemMessage(summarySystemPrompt),
		models.UserMessage(fmt.Sprintf("Summarize the following %s content:\n\n%s",
			cacheType, truncate(text, maxInputChars))),
	}
}

func tagsRequest(summary string) []models.ChatMessage {
	return []models.ChatMessage{
		models.SystemMessage(tagsSystemPrompt),
		models.UserMessage("Extract tags for this summary:\n\n" + summary),
	}
}

func categoriesRequest(summary string) []models.ChatMessage {
	return []models.ChatMessage{
		models.SystemMessage(categoriesSystemPrompt),
		models.UserMessage("Classify this summary:\n\n" + summary),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
