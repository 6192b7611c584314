// Package extract turns scraped site text into structured company details
// via a single Claude call.
package extract

import "fmt"

// questions are the six business facts the extraction asks for, in the
// order they appear in the prompt and in the requested CSV header row.
var questions = []string{
	"What is the company's mission statement or core values?",
	"What products or services does the company offer?",
	"When was the company founded, and who were the founders?",
	"Where is the company's headquarters located?",
	"Who are the key executives or leadership team members?",
	"Has the company received any notable awards or recognitions?",
}

const extractionPrompt = `You are a technical content writer for a person in the field of Market Research who constantly wants data on many companies. Answer these questions about the company from the content below:
%s
Content:
%s

Output format should be text in CSV format without any markdown elements. The first row should contain the questions, each quoted so it is recognized as one cell, and the second row the answers. Don't quote the whole response, only the individual questions and answers; any value containing a comma must be quoted.
No other text should be generated, just the answers to these questions.
If the answer is not present in the content, say "Not Available".
The answers should be human-like and should not explicitly mention the availability of information in the content.`

// BuildPrompt embeds the combined site text verbatim into the fixed
// six-question extraction prompt. Empty text is allowed.
func BuildPrompt(text string) string {
	var qs string
	for _, q := range questions {
		qs += fmt.Sprintf("- %q\n", q)
	}
	return fmt.Sprintf(extractionPrompt, qs, text)
}

// Questions returns the fixed question list in prompt order.
func Questions() []string {
	out := make([]string, len(questions))
	copy(out, questions)
	return out
}
