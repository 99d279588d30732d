package guide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/clients/anthropic"
)

func TestGuideService_Ask_RendersMarkdown(t *testing.T) {
	mockClient := new(anthropic.MockGuideClient)
	mockClient.On("Ask", context.Background(), "What is the realm?").
		Return("**D'Last Sanctuary** is a realm of creators.", nil)

	service := NewGuideService(mockClient)

	answer, err := service.Ask(context.Background(), "What is the realm?")
	require.NoError(t, err)
	assert.Equal(t, "**D'Last Sanctuary** is a realm of creators.", answer.Response)
	assert.Contains(t, answer.HTML, "<strong>")
	assert.Contains(t, answer.HTML, "is a realm of creators.")
	mockClient.AssertExpectations(t)
}

func TestGuideService_Ask_SanitizesModelHTML(t *testing.T) {
	mockClient := new(anthropic.MockGuideClient)
	mockClient.On("Ask", context.Background(), "hi").
		Return(`Hello <script>alert("pwned")</script> traveler [link](javascript:alert(1))`, nil)

	service := NewGuideService(mockClient)

	answer, err := service.Ask(context.Background(), "hi")
	require.NoError(t, err)
	assert.NotContains(t, answer.HTML, "<script>")
	assert.NotContains(t, answer.HTML, "javascript:")
}

func TestGuideService_Ask_RejectsEmptyQuery(t *testing.T) {
	mockClient := new(anthropic.MockGuideClient)
	service := NewGuideService(mockClient)

	_, err := service.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	mockClient.AssertNotCalled(t, "Ask")
}
