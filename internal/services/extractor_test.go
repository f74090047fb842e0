package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmptyDocument(t *testing.T) {
	client := &stubMessageClient{}
	extractor := NewStructuredExtractor(client)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		profile, err := extractor.Extract(context.Background(), text)
		require.ErrorIs(t, err, ErrEmptyDocument)
		assert.Nil(t, profile)
	}

	// Blank input must not cost a model call.
	assert.Equal(t, 0, client.callCount())
}

func TestExtractParsesProfile(t *testing.T) {
	payload, err := json.Marshal(sampleProfile())
	require.NoError(t, err)

	client := &stubMessageClient{response: string(payload)}
	extractor := NewStructuredExtractor(client)

	profile, err := extractor.Extract(context.Background(), "John Doe\nSoftware Engineer\njohn@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "John Doe", profile.PersonalInformation.Name)
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL"}, profile.Skills)
	assert.True(t, profile.IsResume)

	req := client.lastRequest()
	assert.Equal(t, extractorModel, req.Model)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.Nil(t, req.Temperature)
}

func TestExtractRecoversFencedProfile(t *testing.T) {
	payload, err := json.Marshal(sampleProfile())
	require.NoError(t, err)

	client := &stubMessageClient{
		response: "Here is the parsed resume:\n```json\n" + string(payload) + "\n```",
	}
	extractor := NewStructuredExtractor(client)

	profile, err := extractor.Extract(context.Background(), "John Doe resume text")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.PersonalInformation.Name)
}

func TestExtractMalformedResponse(t *testing.T) {
	client := &stubMessageClient{response: "I could not parse this document, sorry."}
	extractor := NewStructuredExtractor(client)

	profile, err := extractor.Extract(context.Background(), "some resume text")
	require.Error(t, err)
	assert.Nil(t, profile)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "Could not parse JSON from Claude's response", extractionErr.Reason)
	assert.Equal(t, "I could not parse this document, sorry.", extractionErr.RawResponse)
}

func TestExtractTransportFailurePassesThrough(t *testing.T) {
	transportErr := &TransportError{Status: 529, Body: "overloaded", Err: errors.New("overloaded")}
	client := &stubMessageClient{err: transportErr}
	extractor := NewStructuredExtractor(client)

	profile, err := extractor.Extract(context.Background(), "some resume text")
	require.Error(t, err)
	assert.Nil(t, profile)

	var got *TransportError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 529, got.Status)
}
