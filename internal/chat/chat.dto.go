package chat

type Shloka struct {
	Sanskrit  string `json:"sanskrit"`
	Meaning   string `json:"meaning"`
	Reference string `json:"reference"`
}

type Answer struct {
	Content string `json:"content"`
	Shloka  Shloka `json:"shloka"`
}

// Complete reports whether every field the client renders is present.
func (a Answer) Complete() bool {
	return a.Content != "" && a.Shloka.Sanskrit != "" && a.Shloka.Meaning != "" && a.Shloka.Reference != ""
}

type AskRequest struct {
	Message string `json:"message" validate:"required"`
}

// FallbackResponse is what the client receives when the model could not answer.
type FallbackResponse struct {
	Error string `json:"error"`
	Answer
}

// Fallback is served whenever the text generator fails.
var Fallback = Answer{
	Content: "I apologize, but I'm having trouble connecting to provide guidance at this moment. Please try again.",
	Shloka: Shloka{
		Sanskrit:  "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन।",
		Meaning:   "You have the right to perform your prescribed duties, but you are not entitled to the fruits of your actions.",
		Reference: "Bhagavad Gita, Chapter 2, Verse 47",
	},
}
