package models

// AssistantSlot is one named value extracted from the user's utterance.
type AssistantSlot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AssistantIntent is the parsed utterance.
type AssistantIntent struct {
	Name  string                   `json:"name"`
	Slots map[string]AssistantSlot `json:"slots"`
}

// AssistantRequestBody is the "request" member of the envelope.
type AssistantRequestBody struct {
	Type   string           `json:"type"`
	Intent *AssistantIntent `json:"intent"`
}

// AssistantRequest is the envelope the voice assistant posts to us.
type AssistantRequest struct {
	Request *AssistantRequestBody `json:"request"`
}

// SlotValue returns the value of the named slot, or "" when any level is missing.
func (r *AssistantRequest) SlotValue(name string) string {
	if r == nil || r.Request == nil || r.Request.Intent == nil {
		return ""
	}
	slot, ok := r.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}

// OutputSpeech is the text the assistant reads out.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AssistantResponseBody is the "response" member of the reply envelope.
type AssistantResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	ShouldEndSession *bool        `json:"shouldEndSession,omitempty"`
}

// AssistantResponse is the reply envelope.
type AssistantResponse struct {
	Response AssistantResponseBody `json:"response"`
}

// NewSpeech builds a plain-text reply. endSession nil leaves the flag out.
func NewSpeech(text string, endSession *bool) AssistantResponse {
	return AssistantResponse{Response: AssistantResponseBody{
		OutputSpeech:     OutputSpeech{Type: "PlainText", Text: text},
		ShouldEndSession: endSession,
	}}
}

// ProductLookupReply is the body returned by the product lookup intent.
type ProductLookupReply struct {
	Message string `json:"mensagem"`
	Code    string `json:"codigo"`
}
