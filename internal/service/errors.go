package service

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"adaptive-mapper/internal/xmltree"
)

// Message is one <message> element of a response envelope.
type Message struct {
	Type string `yaml:"type"`
	Text string `yaml:"text"`
}

// FailedRequestError is returned when a read call answers success="false".
type FailedRequestError struct {
	Method   string
	Messages []Message
}

func (e *FailedRequestError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: the request did not complete successfully", e.Method)
	}

	texts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		texts = append(texts, m.Type+": "+m.Text)
	}

	return fmt.Sprintf("%s: %s", e.Method, strings.Join(texts, "; "))
}

func messagesOf(response *etree.Element) []Message {
	var out []Message

	for _, el := range response.FindElements(".//messages/" + xmltree.TagMessage) {
		out = append(out, Message{
			Type: el.SelectAttrValue(xmltree.AttrType, ""),
			Text: strings.TrimSpace(el.Text()),
		})
	}

	return out
}
