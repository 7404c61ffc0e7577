package slides

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
)

// outcomeKind enumerates the response shapes the generation service can
// answer with. The set is closed; classifyResponse maps every response to
// exactly one kind or fails with a wrapped ErrNoArtifact.
type outcomeKind int

const (
	// outcomeDirectURL: the response JSON carries a ready view URL.
	outcomeDirectURL outcomeKind = iota

	// outcomeFileBytes: the response body is the artifact itself.
	outcomeFileBytes

	// outcomeJobPending: the response names a job that must be polled until
	// completion before the artifact can be exported.
	outcomeJobPending

	// outcomeDeckExport: the response names a finished deck whose artifact
	// must be fetched from the export endpoint, without polling.
	outcomeDeckExport
)

// outcome is the classified result of a generation response.
type outcome struct {
	kind outcomeKind

	// url is set for outcomeDirectURL.
	url string

	// data and contentType are set for outcomeFileBytes.
	data        []byte
	contentType string

	// jobID is set for outcomeJobPending and outcomeDeckExport.
	jobID string

	// payload is the parsed JSON body for non-binary responses; used as the
	// raw response handed back to the caller.
	payload map[string]any
}

// binaryContentTypes marks content types that indicate the body is the deck
// artifact rather than JSON.
var binaryContentTypes = []string{
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.ms-powerpoint",
	"application/octet-stream",
}

func isBinaryContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, known := range binaryContentTypes {
		if strings.HasPrefix(ct, known) {
			return true
		}
	}
	return false
}

// extensionForContentType picks the storage-key extension for downloaded
// bytes: pdf when the content type indicates PDF, pptx otherwise.
func extensionForContentType(contentType string) string {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return "pdf"
	}
	return "pptx"
}

// classifyResponse discriminates the three response shapes of the generation
// service. A merely-unexpected shape never panics: binary content types and
// unparseable bodies classify as file bytes; JSON with neither a URL nor an
// identifier is the only failure case.
func classifyResponse(contentType string, body []byte) (outcome, error) {
	if isBinaryContentType(contentType) {
		return outcome{kind: outcomeFileBytes, data: body, contentType: contentType}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not JSON despite the content type; treat the body as the artifact.
		return outcome{kind: outcomeFileBytes, data: body, contentType: contentType}, nil
	}

	if url := firstString(payload, "url", "presentationUrl", "viewUrl"); url != "" {
		return outcome{kind: outcomeDirectURL, url: url, payload: payload}, nil
	}

	if deckID := firstString(payload, "deckId"); deckID != "" {
		return outcome{kind: outcomeDeckExport, jobID: deckID, payload: payload}, nil
	}

	if jobID := firstString(payload, "generationId", "id"); jobID != "" {
		return outcome{kind: outcomeJobPending, jobID: jobID, payload: payload}, nil
	}

	return outcome{}, fmt.Errorf("%w: response contained neither a URL nor a job identifier",
		generation.ErrNoArtifact)
}

// firstString returns the first non-empty string value among the given keys.
func firstString(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := payload[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
