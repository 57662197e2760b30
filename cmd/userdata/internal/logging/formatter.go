package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/redact"
)

// textWriter renders zerolog JSON events as:
//
//	[SERVICE] logger LEVEL TIMESTAMP: MESSAGE
//
// and obfuscates PII fields in the message portion before it reaches the
// sink. Only the free-text message is filtered; level, timestamp, and logger
// name pass through untouched.
type textWriter struct {
	out     io.Writer
	service string
	name    string
	filter  *redact.Filter
}

func (tw *textWriter) Write(p []byte) (n int, err error) {
	var event map[string]any
	if err := json.Unmarshal(p, &event); err != nil {
		// If not JSON, just write as-is
		return tw.out.Write(p)
	}

	level, _ := event["level"].(string)
	timestamp, _ := event["time"].(string)
	message, _ := event["message"].(string)

	name := tw.name
	if n, ok := event["logger"].(string); ok && n != "" {
		name = n
	}

	if tw.filter != nil {
		message = tw.filter.Apply(message)
	}

	formatted := fmt.Sprintf("[%s] %s %s %s: %s\n",
		tw.service,
		name,
		strings.ToUpper(level),
		timestamp,
		message,
	)

	return tw.out.Write([]byte(formatted))
}

// piiWriter rewrites the message field of a zerolog JSON event through the
// redaction filter and forwards the event, still as JSON, to the next
// writer. It is chained in front of the JSON and console formats so PII is
// stripped regardless of layout.
type piiWriter struct {
	out    io.Writer
	filter *redact.Filter
}

func (pw *piiWriter) Write(p []byte) (n int, err error) {
	if pw.filter == nil {
		return pw.out.Write(p)
	}

	var event map[string]any
	if err := json.Unmarshal(p, &event); err != nil {
		return pw.out.Write(p)
	}

	if message, ok := event["message"].(string); ok {
		event["message"] = pw.filter.Apply(message)
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		return pw.out.Write(p)
	}

	return pw.out.Write(append(encoded, '\n'))
}
