package vimeo

import (
	"encoding/json"
	"fmt"

	"github.com/beevik/etree"
)

// Response formats with a parser. Any other format passes through raw.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// envelope fields stripped before the JSON payload is handed back.
const (
	envelopeStatField      = "stat"
	envelopeGeneratedField = "generated_in"
	envelopeErrField       = "err"
	statFail               = "fail"
)

// ParseResult processes a response body according to its format. Formats
// without a parser are returned raw, with only Body set.
func ParseResult(format string, body []byte) (*Result, error) {
	result := &Result{Format: format, Body: body}

	switch format {
	case FormatJSON:
		payload, err := parseJSON(body)
		if err != nil {
			return nil, err
		}

		result.Payload = payload

	case FormatXML:
		doc, err := parseXML(body)
		if err != nil {
			return nil, err
		}

		result.XML = doc
	}

	return result, nil
}

// parseJSON unwraps the {stat, generated_in, payload} envelope. A failure
// stat surfaces the embedded error as an *APIError; otherwise the envelope
// fields are stripped and a sole remaining key is unwrapped to its value.
func parseJSON(body []byte) (interface{}, error) {
	var envelope map[string]interface{}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing json response: %w", err)
	}

	if stat, _ := envelope[envelopeStatField].(string); stat == statFail {
		return nil, apiErrorFromEnvelope(envelope)
	}

	delete(envelope, envelopeStatField)
	delete(envelope, envelopeGeneratedField)

	// One key left is the content we want; an empty envelope (test.null)
	// or anything with several keys goes back to the caller as-is.
	if len(envelope) == 1 {
		for _, content := range envelope {
			return content, nil
		}
	}

	return envelope, nil
}

// apiErrorFromEnvelope pulls code and message out of a failure envelope.
func apiErrorFromEnvelope(envelope map[string]interface{}) *APIError {
	apiErr := &APIError{Message: "unknown API error"}

	errObj, ok := envelope[envelopeErrField].(map[string]interface{})
	if !ok {
		return apiErr
	}

	if code, ok := errObj["code"].(string); ok {
		apiErr.Code = code
	}

	if msg, ok := errObj["msg"].(string); ok {
		apiErr.Message = msg
	}

	if expl, ok := errObj["expl"].(string); ok {
		apiErr.Explanation = expl
	}

	return apiErr
}

// parseXML parses the body into an element tree.
func parseXML(body []byte) (*etree.Document, error) {
	doc := etree.NewDocument()

	err := doc.ReadFromBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parsing xml response: %w", err)
	}

	return doc, nil
}

// DecodePayload re-decodes a parsed JSON payload into a typed value. The
// typed resource clients use it to go from the loose envelope content to
// their concrete structs.
func DecodePayload(payload interface{}, v interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("re-encoding payload: %w", err)
	}

	err = json.Unmarshal(raw, v)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	return nil
}
